package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lmonteiro91/aeroportal/internal/domain"
	"github.com/lmonteiro91/aeroportal/internal/service/baggage"
)

type BaggageHandler struct {
	service baggage.BaggageUseCase
}

type registerBaggageRequest struct {
	PassengerID int64   `json:"idPassageiro"`
	FlightID    int64   `json:"idVoo"`
	Weight      float64 `json:"peso"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewBaggageHandler(service baggage.BaggageUseCase) *BaggageHandler {
	return &BaggageHandler{service: service}
}

func (h *BaggageHandler) Register(router *gin.RouterGroup) {
	router.POST("/registrar-bagagem", h.register)
	router.PUT("/bagagem/:id/status", h.updateStatus)
}

func (h *BaggageHandler) register(c *gin.Context) {
	var req registerBaggageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados incompletos"})
		return
	}
	if req.PassengerID == 0 || req.FlightID == 0 || req.Weight == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados incompletos"})
		return
	}

	bag, err := h.service.Register(c.Request.Context(), baggage.RegisterInput{
		PassengerID: req.PassengerID,
		FlightID:    req.FlightID,
		Weight:      req.Weight,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bag)
}

func (h *BaggageHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Status não fornecido"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric ID cannot name any bag.
		respondError(c, domain.ErrBaggageNotFound)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Status atualizado com sucesso"})
}
