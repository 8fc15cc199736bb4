package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies a replayable request: the endpoint path plus the
// caller-supplied key.
type IdempotencyKey struct {
	Resource string
	Key      string
}

type IdempotencyState string

const (
	IdempotencyStateProcessing IdempotencyState = "processing"
	IdempotencyStateCompleted  IdempotencyState = "completed"
)

// IdempotencyRecord is the cached outcome of a keyed request. While a request
// is in flight only State and CreatedAt are set; on success the response
// payload and the request body hash are recorded for replay and conflict
// detection.
type IdempotencyRecord struct {
	State           IdempotencyState `json:"state"`
	RequestBodyHash string           `json:"request_body_hash,omitempty"`
	Response        json.RawMessage  `json:"response,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
