package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportService renders the audit trail and client list as XLSX or CSV
type ExportService struct {
	auditSvc  *AuditService
	clientSvc *ClientService
}

// NewExportService creates a new export service
func NewExportService(auditSvc *AuditService, clientSvc *ClientService) *ExportService {
	return &ExportService{auditSvc: auditSvc, clientSvc: clientSvc}
}

var auditExportHeader = []string{"Data/Hora", "Usuário", "Ação", "Cliente", "Detalhes"}

// ExportAuditCSV writes the filtered audit view as CSV
func (s *ExportService) ExportAuditCSV(ctx context.Context, search string) ([]byte, string, error) {
	events, err := s.auditSvc.Query(ctx, search)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write(auditExportHeader)
	for _, e := range events {
		_ = writer.Write([]string{
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.User,
			e.Action,
			e.ClientName,
			e.Details,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("auditoria_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportAuditXLSX writes the filtered audit view as a spreadsheet
func (s *ExportService) ExportAuditXLSX(ctx context.Context, search string) ([]byte, string, error) {
	events, err := s.auditSvc.Query(ctx, search)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Auditoria"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for col, title := range auditExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, e := range events {
		values := []interface{}{
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.User,
			e.Action,
			e.ClientName,
			e.Details,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("auditoria_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

var clientExportHeader = []string{"Nome da Empresa", "Contratante", "E-mail", "Canal Datadog", "AM BW Soluções", "Observações"}

// ExportClientsCSV writes the client list as CSV
func (s *ExportService) ExportClientsCSV(ctx context.Context) ([]byte, string, error) {
	clients, err := s.clientSvc.List(ctx, "")
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write(clientExportHeader)
	for _, c := range clients {
		_ = writer.Write([]string{
			c.CompanyName,
			c.ContactPerson,
			c.ContactEmail,
			c.DatadogChannel,
			c.BWAccountManager,
			c.Notes,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("clientes_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportClientsXLSX writes the client list as a spreadsheet
func (s *ExportService) ExportClientsXLSX(ctx context.Context) ([]byte, string, error) {
	clients, err := s.clientSvc.List(ctx, "")
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Clientes"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for col, title := range clientExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, c := range clients {
		values := []interface{}{
			c.CompanyName,
			c.ContactPerson,
			c.ContactEmail,
			c.DatadogChannel,
			c.BWAccountManager,
			c.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("clientes_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
