package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmonteiro91/aeroportal/internal/service/lookup"
)

type LookupHandler struct {
	service lookup.LookupUseCase
}

type searchRequest struct {
	Codigo string `json:"codigo"`
	Tipo   string `json:"tipo"`
}

func NewLookupHandler(service lookup.LookupUseCase) *LookupHandler {
	return &LookupHandler{service: service}
}

func (h *LookupHandler) Register(router *gin.RouterGroup) {
	router.POST("/buscar-passageiro", h.search)
}

func (h *LookupHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Código não fornecido"})
		return
	}

	// The query parameter wins over the body, matching the /codigo page
	// which submits the mode in the URL.
	tipo := c.Query("tipo")
	if tipo == "" {
		tipo = req.Tipo
	}

	result, err := h.service.Search(c.Request.Context(), tipo, req.Codigo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
