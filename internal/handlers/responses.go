package handlers

import (
	"time"

	"github.com/scrapriq/dashboard/internal/dashboard"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse reports the outcome of a backend connectivity probe.
type StatusResponse struct {
	Connected bool      `json:"connected"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	LatencyMs int64     `json:"latency_ms"`
	CheckedAt time.Time `json:"checked_at"`
}

// NewStatusResponse builds a StatusResponse from a probed View.
func NewStatusResponse(v *dashboard.View) *StatusResponse {
	return &StatusResponse{
		Connected: v.Connected,
		Status:    v.Status,
		Error:     v.Error,
		LatencyMs: v.Latency.Milliseconds(),
		CheckedAt: v.CheckedAt,
	}
}
