package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_AuditCSV(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	require.NoError(t, svcs.Audit.Append(ctx, "alice", models.ActionCreate, "c1", "Acme", "Cliente 'Acme' criado."))

	data, filename, err := svcs.Export.ExportAuditCSV(ctx, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "auditoria_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, auditExportHeader, records[0])
	assert.Equal(t, "alice", records[1][1])
	assert.Equal(t, "Cliente 'Acme' criado.", records[1][4])
}

func TestExportService_AuditXLSX(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	require.NoError(t, svcs.Audit.Append(ctx, "alice", models.ActionDelete, "c1", "Acme", "Cliente 'Acme' e todos os seus contratos foram excluídos."))

	data, filename, err := svcs.Export.ExportAuditXLSX(ctx, "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	user, err := f.GetCellValue("Auditoria", "B2")
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	action, err := f.GetCellValue("Auditoria", "C2")
	require.NoError(t, err)
	assert.Equal(t, models.ActionDelete, action)
}

func TestExportService_ClientsCSV(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	seedClient(t, svcs, "Beta")
	seedClient(t, svcs, "Acme")

	data, _, err := svcs.Export.ExportClientsCSV(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Rows follow the company-name ordering of the client list
	assert.Equal(t, "Acme", records[1][0])
	assert.Equal(t, "Beta", records[2][0])
}
