package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bwsolucoes/carteira-api/internal/middleware"
	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/services"
)

type ClientHandler struct {
	clientService   *services.ClientService
	contractService *services.ContractService
	exportService   *services.ExportService
}

func NewClientHandler(
	clientService *services.ClientService,
	contractService *services.ContractService,
	exportService *services.ExportService,
) *ClientHandler {
	return &ClientHandler{
		clientService:   clientService,
		contractService: contractService,
		exportService:   exportService,
	}
}

// @Summary List Clients
// @Description Get clients ordered by company name, optionally filtered
// @Tags Clients
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} map[string]interface{}
// @Router /clients [get]
func (h *ClientHandler) Index(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// @Summary Get Client
// @Description Get a client by ID
// @Tags Clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} map[string]string
// @Router /clients/{client_id} [get]
func (h *ClientHandler) Show(c *gin.Context) {
	client, err := h.clientService.FindByID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// @Summary Create Client
// @Description Create a new client
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body models.Client true "Client Data"
// @Success 201 {object} models.Client
// @Failure 422 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = ""

	saved, err := h.clientService.Save(c.Request.Context(), middleware.CurrentUser(c), &client)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": saved})
}

// @Summary Update Client
// @Description Update an existing client; changed fields are audited
// @Tags Clients
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param request body models.Client true "Client Data"
// @Success 200 {object} models.Client
// @Failure 422 {object} map[string]string
// @Router /clients/{client_id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = c.Param("client_id")

	saved, err := h.clientService.Save(c.Request.Context(), middleware.CurrentUser(c), &client)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": saved})
}

// @Summary Delete Client
// @Description Delete a client and cascade over its contracts and services
// @Tags Clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} map[string]string
// @Router /clients/{client_id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clientService.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("client_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente excluído"})
}

// @Summary List Client Contracts
// @Description Get the client's contracts with their services grouped
// @Tags Clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Router /clients/{client_id}/contracts [get]
func (h *ClientHandler) Contracts(c *gin.Context) {
	contracts, err := h.contractService.ContractsForClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

// @Summary Export Clients
// @Description Download the client list as XLSX or CSV
// @Tags Clients
// @Produce application/octet-stream
// @Param format query string false "xlsx or csv" default(xlsx)
// @Success 200 {file} binary
// @Router /clients/export [get]
func (h *ClientHandler) Export(c *gin.Context) {
	var (
		data     []byte
		filename string
		mime     string
		err      error
	)
	switch c.DefaultQuery("format", "xlsx") {
	case "csv":
		data, filename, err = h.exportService.ExportClientsCSV(c.Request.Context())
		mime = "text/csv"
	default:
		data, filename, err = h.exportService.ExportClientsXLSX(c.Request.Context())
		mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mime, data)
}
