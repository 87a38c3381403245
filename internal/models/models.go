package models

import "encoding/json"

// KeepAliveResponse is returned by GET /api/keep-alive
type KeepAliveResponse struct {
	OK        bool   `json:"ok"`
	Timestamp string `json:"ts"`
	LatencyMs int64  `json:"latencyMs"`
}

// PurchaseRequest is the optional body of POST /api/purchase.
// Fields stay raw so currency and total can be echoed exactly as sent;
// a nil field means the key was absent.
type PurchaseRequest struct {
	Items    json.RawMessage `json:"items"`
	Currency json.RawMessage `json:"currency"`
	Total    json.RawMessage `json:"total"`
}

// PurchaseResponse acknowledges a simulated purchase
type PurchaseResponse struct {
	Success      bool            `json:"success"`
	ReceivedInMs int64           `json:"receivedInMs"`
	Currency     json.RawMessage `json:"currency"`
	Total        json.RawMessage `json:"total"`
	ItemsCount   int             `json:"itemsCount"`
	RequestID    string          `json:"requestId"`
	PurchaseID   string          `json:"purchaseId"`
}

// RatesResponse is returned by GET /api/rates
type RatesResponse struct {
	Base      string             `json:"base"`
	Timestamp string             `json:"ts"`
	Rates     map[string]float64 `json:"rates"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
