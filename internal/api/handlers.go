package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dalfonso89/shop-mock-api/internal/logger"
	"github.com/dalfonso89/shop-mock-api/internal/middleware"
	"github.com/dalfonso89/shop-mock-api/internal/models"
	"github.com/dalfonso89/shop-mock-api/internal/service"
)

// HandlerConfig contains all dependencies for the Handlers
type HandlerConfig struct {
	Logger           logger.Logger
	KeepAliveService *service.KeepAliveService
	PurchaseService  *service.PurchaseService
	RatesService     *service.RatesService
	PublicDir        string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	logger           logger.Logger
	keepAliveService *service.KeepAliveService
	purchaseService  *service.PurchaseService
	ratesService     *service.RatesService
	publicDir        string
}

// NewHandlers creates a new handlers instance with all dependencies
func NewHandlers(config HandlerConfig) *Handlers {
	return &Handlers{
		logger:           config.Logger,
		keepAliveService: config.KeepAliveService,
		purchaseService:  config.PurchaseService,
		ratesService:     config.RatesService,
		publicDir:        config.PublicDir,
	}
}

// SetupRoutes configures all the routes using Gin
func (handlers *Handlers) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(handlers.logger))
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/keep-alive", handlers.KeepAlive)
		api.POST("/purchase", handlers.Purchase)
		api.GET("/rates", handlers.GetRates)
	}

	if handlers.publicDir != "" {
		router.NoRoute(middleware.StaticAssets(handlers.publicDir))
	}

	return router
}

// KeepAlive handles liveness probes
func (handlers *Handlers) KeepAlive(context *gin.Context) {
	receivedAt := time.Now()

	response, err := handlers.keepAliveService.Ping(context.Request.Context(), receivedAt)
	if err != nil {
		handlers.handleServiceError(context, err)
		return
	}

	context.JSON(http.StatusOK, response)
}

// Purchase simulates accepting an order
func (handlers *Handlers) Purchase(context *gin.Context) {
	receivedAt := time.Now()

	request, err := bindPurchaseRequest(context)
	if err != nil {
		handlers.handleServiceError(context, err)
		return
	}

	response, err := handlers.purchaseService.Submit(context.Request.Context(), receivedAt, request)
	if err != nil {
		handlers.handleServiceError(context, err)
		return
	}

	context.JSON(http.StatusOK, response)
}

// GetRates returns the fixed USD-based rate table
func (handlers *Handlers) GetRates(context *gin.Context) {
	response, err := handlers.ratesService.GetRates(context.Request.Context())
	if err != nil {
		handlers.handleServiceError(context, err)
		return
	}

	context.JSON(http.StatusOK, response)
}

// bindPurchaseRequest decodes an optional JSON body. An empty body or a
// top-level array yields a request with every key absent; anything that is
// not a JSON object or array is rejected.
func bindPurchaseRequest(context *gin.Context) (models.PurchaseRequest, error) {
	var request models.PurchaseRequest

	body, err := context.GetRawData()
	if err != nil {
		return request, invalidBody(err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return request, nil
	}
	if !json.Valid(trimmed) {
		return request, invalidBody(errors.New("malformed JSON"))
	}

	switch trimmed[0] {
	case '{':
		if err := binding.JSON.BindBody(trimmed, &request); err != nil {
			return models.PurchaseRequest{}, invalidBody(err)
		}
		return request, nil
	case '[':
		return request, nil
	default:
		return request, invalidBody(errors.New("body must be a JSON object"))
	}
}

func invalidBody(cause error) error {
	return &service.ServiceError{
		Type:    service.ErrorTypeInvalidBody,
		Message: "invalid request body",
		Cause:   cause,
	}
}

// writeErrorResponse writes an error response using Gin context
func (handlers *Handlers) writeErrorResponse(context *gin.Context, statusCode int, errorMessage, errorDetails string) {
	errorResponse := models.ErrorResponse{
		Error:   errorMessage,
		Message: errorDetails,
		Code:    statusCode,
	}

	context.JSON(statusCode, errorResponse)
}

// handleServiceError maps service errors to HTTP responses
func (handlers *Handlers) handleServiceError(context *gin.Context, err error) {
	_ = context.Error(err)

	switch service.ClassifyError(err) {
	case service.ErrorTypeInvalidBody:
		handlers.writeErrorResponse(context, http.StatusBadRequest, "invalid request body", err.Error())
	case service.ErrorTypeContextCancelled:
		// client is gone; nothing useful can be written
		handlers.logger.WithError(err).Debugf("Abandoned %s %s", context.Request.Method, context.Request.URL.Path)
		context.Abort()
	default:
		handlers.logger.WithError(err).Errorf("Request failed: %s %s", context.Request.Method, context.Request.URL.Path)
		handlers.writeErrorResponse(context, http.StatusInternalServerError, "internal error", err.Error())
	}
}
