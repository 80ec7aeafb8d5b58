package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "solar_pipeline/docs"
	"solar_pipeline/internal/adapter/http/handlers"
	"solar_pipeline/internal/adapter/persistence"
	"solar_pipeline/internal/infrastructure/config"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/infrastructure/metrics"
	"solar_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router mounts under /v1.
type Handlers struct {
	Clients  *handlers.ClientHandler
	Products *handlers.ProductHandler
	Visits   *handlers.VisitHandler
	Pipeline *handlers.PipelineHandler
}

const shutdownTimeout = 10 * time.Second

// Run opens the stores, wires the use cases and serves until ctx is done
// or the listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	stores, err := persistence.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close()

	m := metrics.New(prometheus.NewRegistry())

	clientUseCase := usecase.NewClientUseCase(stores.Clients, stores.Products,
		usecase.WithPhoneRegion(cfg.PhoneRegion),
		usecase.WithLocation(cfg.ClientIDLocation),
		usecase.WithRecorder(m),
	)
	productUseCase := usecase.NewProductUseCase(stores.Products)
	visitUseCase := usecase.NewVisitUseCase(stores.Visits, stores.Clients)

	router := NewRouter(Handlers{
		Clients:  handlers.NewClientHandler(clientUseCase),
		Products: handlers.NewProductHandler(productUseCase),
		Visits:   handlers.NewVisitHandler(visitUseCase),
		Pipeline: handlers.NewPipelineHandler(clientUseCase, m),
	}, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, srv)
}

// serve runs srv until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	logger := logging.GetLogger()

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"addr": srv.Addr}).Info("http server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewRouter builds the gin engine with middlewares, swagger, /metrics and
// the /v1 routes.
func NewRouter(h Handlers, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, h.Pipeline)
	addClientRoutes(v1, h.Clients, h.Visits)
	addProductRoutes(v1, h.Products)
	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(requestLogger())
	router.Use(m.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.GetLogger().WithFields(logrus.Fields{"path": c.Request.URL.Path, "panic": recovered}).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logging.GetLogger().WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}).Info("request")
	}
}
