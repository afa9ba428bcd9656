package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bwsolucoes/carteira-api/internal/middleware"
	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/services"
)

type ContractHandler struct {
	contractService *services.ContractService
}

func NewContractHandler(contractService *services.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// @Summary Create Contract
// @Description Create a contract for a client; new contracts start ativo
// @Tags Contracts
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param request body models.Contract true "Contract Data"
// @Success 201 {object} models.Contract
// @Failure 422 {object} map[string]string
// @Router /clients/{client_id}/contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	var contract models.Contract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract.ID = ""
	contract.ClientID = c.Param("client_id")

	saved, err := h.contractService.SaveContract(c.Request.Context(), middleware.CurrentUser(c), &contract)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contract": saved})
}

// @Summary Update Contract
// @Description Replace a contract's number, status and notes
// @Tags Contracts
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Param request body models.Contract true "Contract Data"
// @Success 200 {object} models.Contract
// @Failure 422 {object} map[string]string
// @Router /contracts/{contract_id} [put]
func (h *ContractHandler) Update(c *gin.Context) {
	var contract models.Contract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract.ID = c.Param("contract_id")

	saved, err := h.contractService.SaveContract(c.Request.Context(), middleware.CurrentUser(c), &contract)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": saved})
}

// @Summary Delete Contract
// @Description Delete a contract and every service attached to it
// @Tags Contracts
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} map[string]string
// @Router /contracts/{contract_id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	if err := h.contractService.DeleteContract(c.Request.Context(), middleware.CurrentUser(c), c.Param("contract_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contrato excluído"})
}

// @Summary Cancel Contract
// @Description Transition a contract to cancelado; cancelado is terminal
// @Tags Contracts
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} models.Contract
// @Failure 422 {object} map[string]string
// @Router /contracts/{contract_id}/cancel [post]
func (h *ContractHandler) Cancel(c *gin.Context) {
	contract, err := h.contractService.CancelContract(c.Request.Context(), middleware.CurrentUser(c), c.Param("contract_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": contract})
}

// @Summary Reactivate Contract
// @Description Transition an inativo contract back to ativo
// @Tags Contracts
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} models.Contract
// @Failure 422 {object} map[string]string
// @Router /contracts/{contract_id}/reactivate [post]
func (h *ContractHandler) Reactivate(c *gin.Context) {
	contract, err := h.contractService.ReactivateContract(c.Request.Context(), middleware.CurrentUser(c), c.Param("contract_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": contract})
}

// @Summary Add Service
// @Description Add a service to a contract
// @Tags Services
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Param request body models.Service true "Service Data"
// @Success 201 {object} models.Service
// @Failure 422 {object} map[string]string
// @Router /contracts/{contract_id}/services [post]
func (h *ContractHandler) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	service.ID = ""
	service.ContractID = c.Param("contract_id")

	saved, err := h.contractService.SaveService(c.Request.Context(), middleware.CurrentUser(c), &service)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": saved})
}

// @Summary Update Service
// @Description Replace a service; fields for other service types are cleared
// @Tags Services
// @Accept json
// @Produce json
// @Param service_id path string true "Service ID"
// @Param request body models.Service true "Service Data"
// @Success 200 {object} models.Service
// @Failure 422 {object} map[string]string
// @Router /services/{service_id} [put]
func (h *ContractHandler) UpdateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	service.ID = c.Param("service_id")

	saved, err := h.contractService.SaveService(c.Request.Context(), middleware.CurrentUser(c), &service)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": saved})
}

// @Summary Delete Service
// @Description Delete a single service
// @Tags Services
// @Produce json
// @Param service_id path string true "Service ID"
// @Success 200 {object} map[string]string
// @Router /services/{service_id} [delete]
func (h *ContractHandler) DeleteService(c *gin.Context) {
	if err := h.contractService.DeleteService(c.Request.Context(), middleware.CurrentUser(c), c.Param("service_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Serviço excluído"})
}
