package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/invoicing/model"
)

const keyHeader = "X-Idempotency-Key"

// Middleware makes tagged mutation endpoints replay-safe: the same key plus
// the same request body returns the recorded response instead of running the
// endpoint again. The same key with a different body is a conflict.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := requestKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}
	bodyHash := requestBodyHash(req)

	record, getErr := IdempotencyCache.Get(req.Context(), key)
	if getErr != nil {
		if errors.Is(getErr, cache.Miss) {
			return runAndRecord(req, next, key, bodyHash)
		}
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return replay(req, next, record, key, bodyHash)
}

func requestKey(req middleware.Request) (model.IdempotencyKey, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = headers.Get(keyHeader)
	}
	if key == "" {
		return model.IdempotencyKey{}, &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return model.IdempotencyKey{Resource: req.Data().Path, Key: key}, nil
}

func requestBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// runAndRecord marks the key as in flight, runs the endpoint, and records the
// outcome. A failed request clears the key so the caller can retry.
func runAndRecord(req middleware.Request, next middleware.Next, key model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := IdempotencyCache.Set(req.Context(), key, model.IdempotencyRecord{
		State:     model.IdempotencyStateProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"},
		}
	}

	response := next(req)
	if response.Err != nil {
		clearRecord(req.Context(), key)
		return response
	}

	recordCompletion(req.Context(), key, bodyHash, response)
	return response
}

func replay(req middleware.Request, next middleware.Next, record model.IdempotencyRecord, key model.IdempotencyKey, bodyHash string) middleware.Response {
	if bodyHash != "" && record.RequestBodyHash != "" && bodyHash != record.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch record.State {
	case model.IdempotencyStateProcessing:
		rlog.Info("concurrent request detected", "key", key.Key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}

	case model.IdempotencyStateCompleted:
		if payload := decodeRecordedResponse(req, record); payload != nil {
			rlog.Info("returning recorded response", "key", key.Key)
			return middleware.Response{Payload: payload}
		}
		// Recorded response is unusable; run the request again.
		return next(req)

	default:
		rlog.Warn("unknown idempotency record state", "key", key.Key, "state", record.State)
		return next(req)
	}
}

// decodeRecordedResponse rebuilds the endpoint's response type from the
// recorded JSON. Returns nil when nothing usable was recorded.
func decodeRecordedResponse(req middleware.Request, record model.IdempotencyRecord) any {
	if len(record.Response) == 0 {
		return nil
	}
	responseType := req.Data().API.ResponseType
	if responseType == nil {
		return nil
	}

	payload := reflect.New(responseType.Elem()).Interface()
	if err := json.Unmarshal(record.Response, payload); err != nil {
		rlog.Error("failed to decode recorded response", "error", err)
		return nil
	}
	return payload
}

func clearRecord(ctx context.Context, key model.IdempotencyKey) {
	if _, err := IdempotencyCache.Delete(ctx, key); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

func recordCompletion(ctx context.Context, key model.IdempotencyKey, bodyHash string, response middleware.Response) {
	record := model.IdempotencyRecord{
		State:           model.IdempotencyStateCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for caching", "error", err)
			return
		}
		record.Response = payloadBytes
	}

	if err := IdempotencyCache.Set(ctx, key, record); err != nil {
		rlog.Error("failed to record completed request", "error", err)
	}
}
