package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmonteiro91/aeroportal/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/voos", h.list)
}

func (h *FlightHandler) list(c *gin.Context) {
	voos, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, voos)
}
