package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dalfonso89/shop-mock-api/internal/logger"
	"github.com/dalfonso89/shop-mock-api/internal/models"
)

// BaseCurrency is the currency every rate is quoted against
const BaseCurrency = "USD"

// timestampLayout renders UTC times as ISO-8601 with millisecond precision
const timestampLayout = "2006-01-02T15:04:05.000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

type RatesService struct {
	provider RatesProvider
	logger   logger.Logger
	now      func() time.Time
}

func NewRatesService(provider RatesProvider, logger logger.Logger) *RatesService {
	return &RatesService{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// GetRates returns the provider's table stamped with the current time
func (ratesService *RatesService) GetRates(requestContext context.Context) (models.RatesResponse, error) {
	rates, err := ratesService.provider.GetRates(requestContext)
	if err != nil {
		return models.RatesResponse{}, fmt.Errorf("rates provider %s: %w", ratesService.provider.GetName(), err)
	}

	ratesService.logger.Debugf("Serving %d rates from provider: %s", len(rates), ratesService.provider.GetName())

	return models.RatesResponse{
		Base:      BaseCurrency,
		Timestamp: formatTimestamp(ratesService.now()),
		Rates:     rates,
	}, nil
}
