package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmonteiro91/aeroportal/internal/domain"
)

// respondError translates a service error into the fixed Portuguese
// error bodies the portal frontend expects. Anything outside the known
// taxonomy is a 500 with a generic message; driver details never reach
// the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCodeRequired):
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Código não fornecido"})
	case errors.Is(err, domain.ErrInvalidLookupType):
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Tipo de busca inválido"})
	case errors.Is(err, domain.ErrPassengerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"erro": "Passageiro não encontrado"})
	case errors.Is(err, domain.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, gin.H{"erro": "Voo não encontrado"})
	case errors.Is(err, domain.ErrBaggageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"erro": "Bagagem não encontrada"})
	case errors.Is(err, domain.ErrUpdateFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Falha ao atualizar status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
	}
}
