package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalfonso89/shop-mock-api/internal/config"
	"github.com/dalfonso89/shop-mock-api/internal/testutils"
)

type failingProvider struct{}

func (failingProvider) GetName() string { return "failing" }

func (failingProvider) GetRates(ctx context.Context) (map[string]float64, error) {
	return nil, errors.New("unavailable")
}

func TestRatesService_GetRates(t *testing.T) {
	ratesService := NewRatesService(NewStaticRatesProvider(), testutils.MockLogger())
	ratesService.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 678_000_000, time.UTC) }

	response, err := ratesService.GetRates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "USD", response.Base)
	assert.Equal(t, "2024-03-01T12:30:45.678Z", response.Timestamp)
	assert.Equal(t, map[string]float64{
		"USD": 1,
		"EUR": 0.92,
		"HKD": 7.80,
		"RMB": 7.10,
	}, response.Rates)
}

func TestRatesService_TableIsNotShared(t *testing.T) {
	ratesService := NewRatesService(NewStaticRatesProvider(), testutils.MockLogger())

	first, err := ratesService.GetRates(context.Background())
	require.NoError(t, err)
	first.Rates["EUR"] = 100

	second, err := ratesService.GetRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.92, second.Rates["EUR"])
}

func TestRatesService_ProviderError(t *testing.T) {
	ratesService := NewRatesService(failingProvider{}, testutils.MockLogger())

	_, err := ratesService.GetRates(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
}

func TestKeepAliveService_Ping(t *testing.T) {
	keepAliveService := NewKeepAliveService(NewLatencySimulator(config.DelayRange{}))
	receivedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	keepAliveService.now = func() time.Time { return receivedAt.Add(42 * time.Millisecond) }

	response, err := keepAliveService.Ping(context.Background(), receivedAt)

	require.NoError(t, err)
	assert.True(t, response.OK)
	assert.Equal(t, int64(42), response.LatencyMs)
	assert.Equal(t, "2024-03-01T12:00:00.042Z", response.Timestamp)
}

func TestKeepAliveService_DefaultRange(t *testing.T) {
	keepAliveService := NewKeepAliveService(NewLatencySimulator(testutils.DefaultLatencyConfig().KeepAliveDelay))
	receivedAt := time.Now()

	response, err := keepAliveService.Ping(context.Background(), receivedAt)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, response.LatencyMs, int64(0))
	assert.Less(t, response.LatencyMs, int64(400))

	ts, err := time.Parse(time.RFC3339Nano, response.Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(receivedAt.Truncate(time.Millisecond)))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, ErrorTypeUnknown},
		{"service error", &ServiceError{Type: ErrorTypeInvalidBody, Message: "bad"}, ErrorTypeInvalidBody},
		{"wrapped service error", errors.Join(errors.New("outer"), &ServiceError{Type: ErrorTypeContextCancelled}), ErrorTypeContextCancelled},
		{"bare context error", context.DeadlineExceeded, ErrorTypeContextCancelled},
		{"plain error", errors.New("boom"), ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyError(tt.err))
		})
	}
}
