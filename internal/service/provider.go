package service

import (
	"context"
	"maps"
)

// RatesProvider supplies USD-based exchange rates
type RatesProvider interface {
	GetName() string
	GetRates(ctx context.Context) (map[string]float64, error)
}

// staticRates is the fixed table served by the mock
var staticRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"HKD": 7.80,
	"RMB": 7.10,
}

// StaticRatesProvider serves staticRates and never fails
type StaticRatesProvider struct{}

func NewStaticRatesProvider() *StaticRatesProvider {
	return &StaticRatesProvider{}
}

func (provider *StaticRatesProvider) GetName() string {
	return "static"
}

// GetRates returns a copy so callers cannot alter the shared table
func (provider *StaticRatesProvider) GetRates(ctx context.Context) (map[string]float64, error) {
	return maps.Clone(staticRates), nil
}
