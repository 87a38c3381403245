package service

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/dalfonso89/shop-mock-api/internal/logger"
	"github.com/dalfonso89/shop-mock-api/internal/models"
)

var (
	defaultCurrency = json.RawMessage(`"USD"`)
	defaultTotal    = json.RawMessage(`0`)
)

// PurchaseService acknowledges purchases without processing any payment
type PurchaseService struct {
	simulator *LatencySimulator
	ids       *IDGenerator
	logger    logger.Logger
	now       func() time.Time
}

func NewPurchaseService(simulator *LatencySimulator, ids *IDGenerator, logger logger.Logger) *PurchaseService {
	return &PurchaseService{
		simulator: simulator,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit waits out the simulated processing delay, then echoes the request
// back with fresh identifiers. currency and total are returned verbatim;
// defaults apply only when the key was absent.
func (purchaseService *PurchaseService) Submit(requestContext context.Context, receivedAt time.Time, request models.PurchaseRequest) (models.PurchaseResponse, error) {
	if _, err := purchaseService.simulator.Wait(requestContext); err != nil {
		return models.PurchaseResponse{}, err
	}
	receivedInMs := elapsedMillis(receivedAt, purchaseService.now())

	currency := request.Currency
	if currency == nil {
		currency = defaultCurrency
	}
	total := request.Total
	if total == nil {
		total = defaultTotal
	}

	response := models.PurchaseResponse{
		Success:      true,
		ReceivedInMs: receivedInMs,
		Currency:     currency,
		Total:        total,
		ItemsCount:   countItems(request.Items),
		PurchaseID:   purchaseService.ids.PurchaseID(),
		RequestID:    purchaseService.ids.RequestID(),
	}

	purchaseService.logger.WithFields(logger.Fields{
		"purchase_id":    response.PurchaseID,
		"items_count":    response.ItemsCount,
		"received_in_ms": response.ReceivedInMs,
	}).Info("Purchase acknowledged")

	return response, nil
}

// countItems returns the length of raw when it is a JSON array, else 0
func countItems(raw json.RawMessage) int {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return 0
	}
	return len(items)
}
