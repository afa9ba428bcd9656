package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/services"
)

type AuditHandler struct {
	auditService  *services.AuditService
	exportService *services.ExportService
}

func NewAuditHandler(auditService *services.AuditService, exportService *services.ExportService) *AuditHandler {
	return &AuditHandler{auditService: auditService, exportService: exportService}
}

// @Summary List Audit Events
// @Description Get audit events newest first, optionally filtered
// @Tags Audits
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} map[string]interface{}
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	events, err := h.auditService.Query(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// @Summary Export Audit Events
// @Description Download the filtered audit view as XLSX or CSV
// @Tags Audits
// @Produce application/octet-stream
// @Param format query string false "xlsx or csv" default(xlsx)
// @Param q query string false "Search term"
// @Success 200 {file} binary
// @Router /audits/export [get]
func (h *AuditHandler) Export(c *gin.Context) {
	var (
		data     []byte
		filename string
		mime     string
		err      error
	)
	search := c.Query("q")
	switch c.DefaultQuery("format", "xlsx") {
	case "csv":
		data, filename, err = h.exportService.ExportAuditCSV(c.Request.Context(), search)
		mime = "text/csv"
	default:
		data, filename, err = h.exportService.ExportAuditXLSX(c.Request.Context(), search)
		mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mime, data)
}

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// @Summary Dashboard Summary
// @Description Portfolio counters and renewal buckets
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.Summary
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summarize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// @Summary Client Record PDF
// @Description One-page PDF of a client with contracts and services
// @Tags Reports
// @Produce application/pdf
// @Param client_id query string true "Client ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /reports/client_record_pdf [get]
func (h *ReportHandler) ClientRecordPDF(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id is required"})
		return
	}

	data, filename, err := h.reportService.ClientRecordPDF(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}

type AdminHandler struct {
	contractService *services.ContractService
}

func NewAdminHandler(contractService *services.ContractService) *AdminHandler {
	return &AdminHandler{contractService: contractService}
}

type MigrateLegacyRequest struct {
	Clients []models.LegacyClient `json:"clients"`
}

// @Summary Migrate Legacy Data
// @Description One-shot conversion of flat legacy client records into contracts and services
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body MigrateLegacyRequest true "Legacy client records"
// @Success 200 {object} map[string]int
// @Router /admin/migrate_legacy [post]
func (h *AdminHandler) MigrateLegacy(c *gin.Context) {
	var req MigrateLegacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	migrated, err := h.contractService.MigrateLegacyData(c.Request.Context(), req.Clients)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"migrated": migrated})
}

type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// @Summary Form Options
// @Description Fixed option lists used by the client and service forms
// @Tags Options
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /options [get]
func (h *OptionsHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses":            models.StatusOptions,
		"service_types":       models.ServiceTypeOptions,
		"support_types":       models.SupportTypeOptions,
		"licensing_providers": models.LicensingProviderOptions,
		"account_managers":    models.AccountManagerOptions,
		"datadog_channels":    models.DatadogChannelOptions,
	})
}
