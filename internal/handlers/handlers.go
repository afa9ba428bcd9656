package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bwsolucoes/carteira-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Client    *ClientHandler
	Contract  *ContractHandler
	Audit     *AuditHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
	Admin     *AdminHandler
	Options   *OptionsHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(),
		Auth:      NewAuthHandler(svcs.Auth),
		Client:    NewClientHandler(svcs.Client, svcs.Contract, svcs.Export),
		Contract:  NewContractHandler(svcs.Contract),
		Audit:     NewAuditHandler(svcs.Audit, svcs.Export),
		Dashboard: NewDashboardHandler(svcs.Dashboard),
		Report:    NewReportHandler(svcs.Report),
		Admin:     NewAdminHandler(svcs.Contract),
		Options:   NewOptionsHandler(),
	}
}

// respondError maps service errors onto HTTP statuses: validation failures
// become 422 with the message verbatim, missing records 404, anything else
// 500.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case err == services.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro não encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
