package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ReportService generates the printable client record
type ReportService struct {
	clientSvc   *ClientService
	contractSvc *ContractService
}

// NewReportService creates a new report service
func NewReportService(clientSvc *ClientService, contractSvc *ContractService) *ReportService {
	return &ReportService{clientSvc: clientSvc, contractSvc: contractSvc}
}

// ClientRecordPDF builds a one-page record of a client with its contracts
// and services.
func (s *ReportService) ClientRecordPDF(ctx context.Context, clientID string) ([]byte, string, error) {
	client, err := s.clientSvc.FindByID(ctx, clientID)
	if err != nil {
		return nil, "", err
	}
	contracts, err := s.contractSvc.ContractsForClient(ctx, clientID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Ficha do Cliente"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	writeField := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 7, tr(displayValue(value)), "", "L", false)
	}

	writeField("Nome da Empresa:", client.CompanyName)
	writeField("Contratante:", client.ContactPerson)
	writeField("E-mail:", client.ContactEmail)
	writeField("Canal Datadog:", client.DatadogChannel)
	writeField("AM BW Soluções:", client.BWAccountManager)
	writeField("Observações:", client.Notes)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr("Contratos"))
	pdf.Ln(10)

	if len(contracts) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 7, tr("Nenhum contrato cadastrado."))
		pdf.Ln(8)
	}

	for _, contract := range contracts {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, tr(fmt.Sprintf("Contrato %s (%s)", contract.ContractNumber, contract.Status)))
		pdf.Ln(7)
		if contract.Notes != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, tr(contract.Notes), "", "L", false)
		}

		pdf.SetFont("Arial", "", 9)
		for _, svc := range contract.Services {
			line := fmt.Sprintf("  - %s | %s a %s | %s",
				svc.ServiceType,
				displayValue(derefString(svc.StartDate)),
				displayValue(derefString(svc.EndDate)),
				svc.Status)
			pdf.Cell(0, 6, tr(line))
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ficha_cliente_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
