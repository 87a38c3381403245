package service

import (
	"context"
	"time"

	"github.com/dalfonso89/shop-mock-api/internal/models"
)

// KeepAliveService answers liveness probes after a short simulated delay
type KeepAliveService struct {
	simulator *LatencySimulator
	now       func() time.Time
}

func NewKeepAliveService(simulator *LatencySimulator) *KeepAliveService {
	return &KeepAliveService{
		simulator: simulator,
		now:       time.Now,
	}
}

// Ping waits out the simulated delay and reports the latency observed
// since receivedAt.
func (keepAliveService *KeepAliveService) Ping(requestContext context.Context, receivedAt time.Time) (models.KeepAliveResponse, error) {
	if _, err := keepAliveService.simulator.Wait(requestContext); err != nil {
		return models.KeepAliveResponse{}, err
	}

	now := keepAliveService.now()
	return models.KeepAliveResponse{
		OK:        true,
		Timestamp: formatTimestamp(now),
		LatencyMs: elapsedMillis(receivedAt, now),
	}, nil
}

func elapsedMillis(from, to time.Time) int64 {
	elapsed := to.Sub(from).Milliseconds()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
