package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmonteiro91/aeroportal/internal/service/lookup"
)

// PageHandler serves the portal's server-rendered views. They carry no
// data beyond the lookup mode; the pages fetch everything else through
// the JSON API.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Register(router *gin.Engine) {
	router.GET("/", h.splash)
	router.GET("/inicio", h.home)
	router.GET("/etiqueta", h.tag)
	router.GET("/codigo", h.code)
	router.GET("/resultado", h.result)
}

func (h *PageHandler) splash(c *gin.Context) {
	c.HTML(http.StatusOK, "splash.html", nil)
}

func (h *PageHandler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "inicio.html", nil)
}

func (h *PageHandler) tag(c *gin.Context) {
	c.HTML(http.StatusOK, "etiqueta.html", nil)
}

func (h *PageHandler) code(c *gin.Context) {
	tipo := c.DefaultQuery("tipo", lookup.DefaultMode)
	c.HTML(http.StatusOK, "codigo.html", gin.H{"tipo": tipo})
}

func (h *PageHandler) result(c *gin.Context) {
	c.HTML(http.StatusOK, "resultado.html", nil)
}
