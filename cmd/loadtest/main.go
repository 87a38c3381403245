package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const purchaseBody = `{"items": ["a","b","c"], "currency": "EUR", "total": 42.5}`

// LoadTestConfig holds configuration for load testing
type LoadTestConfig struct {
	BaseURL         string
	Endpoints       []string
	ConcurrentUsers int
	RequestsPerUser int
	Timeout         time.Duration
	RampUpDuration  time.Duration
	ThinkTime       time.Duration
}

// LoadTestResult holds the result of a single request
type LoadTestResult struct {
	Endpoint     string
	StatusCode   int
	Duration     time.Duration
	ReceivedInMs int64
	Success      bool
	Error        error
}

// LoadTestSummary holds the per-endpoint summary of load test results
type LoadTestSummary struct {
	Endpoint            string
	TotalRequests       int
	SuccessfulRequests  int
	FailedRequests      int
	AverageResponseTime time.Duration
	MinResponseTime     time.Duration
	MaxResponseTime     time.Duration
	ErrorRate           float64
	ResponseTime95th    time.Duration
	ResponseTime99th    time.Duration
	MinReceivedInMs     int64
	MaxReceivedInMs     int64
}

func main() {
	var config LoadTestConfig
	var endpoints string

	flag.StringVar(&config.BaseURL, "url", "http://localhost:3000", "Base URL of the shop API")
	flag.StringVar(&endpoints, "endpoints", "keep-alive,purchase,rates", "Comma-separated endpoints to exercise")
	flag.IntVar(&config.ConcurrentUsers, "users", 10, "Number of concurrent users")
	flag.IntVar(&config.RequestsPerUser, "requests", 20, "Number of requests per user")
	flag.DurationVar(&config.Timeout, "timeout", 10*time.Second, "Request timeout")
	flag.DurationVar(&config.RampUpDuration, "rampup", time.Second, "Ramp-up duration")
	flag.DurationVar(&config.ThinkTime, "think", 50*time.Millisecond, "Think time between requests")
	flag.Parse()

	for _, endpoint := range strings.Split(endpoints, ",") {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			config.Endpoints = append(config.Endpoints, endpoint)
		}
	}
	if len(config.Endpoints) == 0 || config.ConcurrentUsers < 1 {
		fmt.Fprintln(os.Stderr, "need at least one endpoint and one user")
		os.Exit(2)
	}

	fmt.Printf("Starting load test...\n")
	fmt.Printf("Base URL: %s\n", config.BaseURL)
	fmt.Printf("Endpoints: %s\n", strings.Join(config.Endpoints, ", "))
	fmt.Printf("Concurrent Users: %d\n", config.ConcurrentUsers)
	fmt.Printf("Requests per User: %d\n", config.RequestsPerUser)
	fmt.Println()

	start := time.Now()
	results, err := runLoadTest(context.Background(), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load test aborted: %v\n", err)
		os.Exit(1)
	}
	totalDuration := time.Since(start)

	fmt.Println("=== Load Test Results ===")
	fmt.Printf("Total Duration: %v\n", totalDuration)
	fmt.Printf("Requests per Second: %.2f\n", float64(len(results))/totalDuration.Seconds())

	for _, summary := range summarize(results) {
		printSummary(summary)
	}
}

// runLoadTest fans users out with an errgroup; each user cycles through the
// configured endpoints. Only a canceled context aborts the run.
func runLoadTest(ctx context.Context, config LoadTestConfig) ([]LoadTestResult, error) {
	client := &http.Client{Timeout: config.Timeout}
	group, groupCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make([]LoadTestResult, 0, config.ConcurrentUsers*config.RequestsPerUser)
	rampUpDelay := config.RampUpDuration / time.Duration(config.ConcurrentUsers)

	for userID := 0; userID < config.ConcurrentUsers; userID++ {
		uid := userID
		group.Go(func() error {
			if err := sleep(groupCtx, time.Duration(uid)*rampUpDelay); err != nil {
				return err
			}

			for reqID := 0; reqID < config.RequestsPerUser; reqID++ {
				endpoint := config.Endpoints[(uid+reqID)%len(config.Endpoints)]
				result := makeRequest(groupCtx, client, config.BaseURL, endpoint)

				mu.Lock()
				results = append(results, result)
				mu.Unlock()

				if err := sleep(groupCtx, config.ThinkTime); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func makeRequest(ctx context.Context, client *http.Client, baseURL, endpoint string) LoadTestResult {
	url := strings.TrimRight(baseURL, "/") + "/api/" + endpoint
	result := LoadTestResult{Endpoint: endpoint}

	method, body := http.MethodGet, io.Reader(nil)
	if endpoint == "purchase" {
		method, body = http.MethodPost, strings.NewReader(purchaseBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		result.Error = err
		return result
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		result.Duration = time.Since(start)
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	var payload struct {
		ReceivedInMs int64 `json:"receivedInMs"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)
	result.Duration = time.Since(start)
	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300 && decodeErr == nil
	result.ReceivedInMs = payload.ReceivedInMs
	if decodeErr != nil {
		result.Error = decodeErr
	}

	return result
}

func summarize(results []LoadTestResult) []LoadTestSummary {
	byEndpoint := make(map[string][]LoadTestResult)
	var order []string
	for _, result := range results {
		if _, ok := byEndpoint[result.Endpoint]; !ok {
			order = append(order, result.Endpoint)
		}
		byEndpoint[result.Endpoint] = append(byEndpoint[result.Endpoint], result)
	}
	sort.Strings(order)

	summaries := make([]LoadTestSummary, 0, len(order))
	for _, endpoint := range order {
		summaries = append(summaries, processResults(endpoint, byEndpoint[endpoint]))
	}
	return summaries
}

func processResults(endpoint string, results []LoadTestResult) LoadTestSummary {
	summary := LoadTestSummary{Endpoint: endpoint, TotalRequests: len(results)}
	if len(results) == 0 {
		return summary
	}

	responseTimes := make([]time.Duration, 0, len(results))
	var totalResponseTime time.Duration
	first := true

	for _, result := range results {
		responseTimes = append(responseTimes, result.Duration)
		totalResponseTime += result.Duration

		if !result.Success {
			summary.FailedRequests++
			continue
		}
		summary.SuccessfulRequests++

		if first || result.ReceivedInMs < summary.MinReceivedInMs {
			summary.MinReceivedInMs = result.ReceivedInMs
		}
		if first || result.ReceivedInMs > summary.MaxReceivedInMs {
			summary.MaxReceivedInMs = result.ReceivedInMs
		}
		first = false
	}

	sort.Slice(responseTimes, func(i, j int) bool { return responseTimes[i] < responseTimes[j] })

	summary.MinResponseTime = responseTimes[0]
	summary.MaxResponseTime = responseTimes[len(responseTimes)-1]
	summary.AverageResponseTime = totalResponseTime / time.Duration(len(responseTimes))
	summary.ErrorRate = float64(summary.FailedRequests) / float64(summary.TotalRequests) * 100
	summary.ResponseTime95th = calculatePercentile(responseTimes, 95)
	summary.ResponseTime99th = calculatePercentile(responseTimes, 99)

	return summary
}

// calculatePercentile expects times sorted ascending
func calculatePercentile(times []time.Duration, percentile int) time.Duration {
	if len(times) == 0 {
		return 0
	}

	index := int(float64(len(times)) * float64(percentile) / 100.0)
	if index >= len(times) {
		index = len(times) - 1
	}

	return times[index]
}

func printSummary(summary LoadTestSummary) {
	fmt.Printf("\n--- /api/%s ---\n", summary.Endpoint)
	fmt.Printf("Total Requests: %d\n", summary.TotalRequests)
	fmt.Printf("Failed Requests: %d (%.2f%%)\n", summary.FailedRequests, summary.ErrorRate)
	fmt.Printf("Average Response Time: %v\n", summary.AverageResponseTime)
	fmt.Printf("Min/Max Response Time: %v / %v\n", summary.MinResponseTime, summary.MaxResponseTime)
	fmt.Printf("95th/99th Percentile: %v / %v\n", summary.ResponseTime95th, summary.ResponseTime99th)

	if summary.ErrorRate > 5.0 {
		fmt.Printf("⚠️  High error rate: %.2f%% (target: < 5%%)\n", summary.ErrorRate)
	}

	if summary.Endpoint == "purchase" && summary.SuccessfulRequests > 0 {
		fmt.Printf("receivedInMs range: %d..%d\n", summary.MinReceivedInMs, summary.MaxReceivedInMs)
		if summary.MinReceivedInMs < 150 {
			fmt.Printf("⚠️  Purchase answered faster than the simulated minimum of 150ms\n")
		} else {
			fmt.Printf("✅ Purchase latency respects the simulated minimum\n")
		}
	}
}
