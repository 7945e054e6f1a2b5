package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmonteiro91/aeroportal/api"
	"github.com/lmonteiro91/aeroportal/config"
	"github.com/lmonteiro91/aeroportal/internal/service/baggage"
	"github.com/lmonteiro91/aeroportal/internal/service/flights"
	"github.com/lmonteiro91/aeroportal/internal/service/lookup"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, lookupSvc lookup.LookupUseCase, baggageSvc baggage.BaggageUseCase, flightSvc flights.FlightUseCase) error {
	router := newRouter(cfg, lookupSvc, baggageSvc, flightSvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, lookupSvc lookup.LookupUseCase, baggageSvc baggage.BaggageUseCase, flightSvc flights.FlightUseCase) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.LoadHTMLGlob(filepath.Join(cfg.HTTP.TemplatesDir, "*.html"))
	router.Static("/static", cfg.HTTP.StaticDir)

	group := router.Group("/api")
	api.NewLookupHandler(lookupSvc).Register(group)
	api.NewBaggageHandler(baggageSvc).Register(group)
	api.NewFlightHandler(flightSvc).Register(group)

	api.NewPageHandler().Register(router)

	return router
}
