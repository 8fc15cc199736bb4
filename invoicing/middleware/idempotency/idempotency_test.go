package idempotency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/middleware"

	"encore.app/invoicing/model"
)

func newRequest(path string, headers http.Header, payload interface{}) middleware.Request {
	return middleware.NewRequest(context.Background(), &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	})
}

func TestRequestKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{keyHeader: []string{"create-7f3a"}},
			expectedKey: "create-7f3a",
		},
		{
			name:        "multiple_values_takes_first",
			headers:     http.Header{keyHeader: []string{"first", "second"}},
			expectedKey: "first",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_value",
			headers:       http.Header{keyHeader: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := newRequest("/v1/invoices", tc.headers, nil)

			key, err := requestKey(req)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, model.IdempotencyKey{Resource: "/v1/invoices", Key: tc.expectedKey}, key)
		})
	}
}

func TestRequestBodyHash(t *testing.T) {
	type payload struct {
		PayeeID int32 `json:"payee_id"`
	}

	t.Run("nil_payload", func(t *testing.T) {
		req := newRequest("/v1/invoices", nil, nil)
		assert.Empty(t, requestBodyHash(req))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := requestBodyHash(newRequest("/v1/invoices", nil, &payload{PayeeID: 7}))
		b := requestBodyHash(newRequest("/v1/invoices", nil, &payload{PayeeID: 7}))
		assert.NotEmpty(t, a)
		assert.Equal(t, a, b)
	})

	t.Run("differs_per_body", func(t *testing.T) {
		a := requestBodyHash(newRequest("/v1/invoices", nil, &payload{PayeeID: 7}))
		b := requestBodyHash(newRequest("/v1/invoices", nil, &payload{PayeeID: 8}))
		assert.NotEqual(t, a, b)
	})
}

func TestReplayConflictAndConcurrency(t *testing.T) {
	key := model.IdempotencyKey{Resource: "/v1/invoices", Key: "create-7f3a"}
	req := newRequest("/v1/invoices", nil, nil)
	nextNotCalled := func(middleware.Request) middleware.Response {
		t.Fatal("next should not run")
		return middleware.Response{}
	}

	t.Run("body_mismatch_is_conflict", func(t *testing.T) {
		record := model.IdempotencyRecord{
			State:           model.IdempotencyStateCompleted,
			RequestBodyHash: "aaaa",
		}
		resp := replay(req, nextNotCalled, record, key, "bbbb")
		assert.NotNil(t, resp.Err)
		assert.Contains(t, resp.Err.Error(), "idempotency key conflict")
	})

	t.Run("in_flight_request_is_aborted", func(t *testing.T) {
		record := model.IdempotencyRecord{State: model.IdempotencyStateProcessing}
		resp := replay(req, nextNotCalled, record, key, "")
		assert.NotNil(t, resp.Err)
		assert.Contains(t, resp.Err.Error(), "already being processed")
	})

	t.Run("unknown_state_runs_request", func(t *testing.T) {
		ran := false
		next := func(middleware.Request) middleware.Response {
			ran = true
			return middleware.Response{}
		}
		record := model.IdempotencyRecord{State: "corrupt"}
		resp := replay(req, next, record, key, "")
		assert.True(t, ran)
		assert.Nil(t, resp.Err)
	})
}
