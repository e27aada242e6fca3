package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/grp1-tf-cp2/todo-lambda/internal/logger"
	"github.com/grp1-tf-cp2/todo-lambda/internal/storage"
)

// The object served by this function. Not configurable.
const (
	Bucket = "grp1-tf-cp2-bucket"
	Key    = "todo-data.json"
)

var errInvalidUTF8 = errors.New("object is not valid UTF-8")

// Response is the envelope returned to the Lambda runtime.
// Body holds the decoded document itself, not a JSON string, so it does not
// follow the API Gateway proxy convention of a string body.
type Response struct {
	StatusCode int `json:"statusCode"`
	Body       any `json:"body"`
}

type TodoHandler struct {
	storage storage.Storage
}

func NewTodoHandler(stor storage.Storage) *TodoHandler {
	return &TodoHandler{storage: stor}
}

// Handle fetches the todo document and returns it with status 200.
// The event is accepted for the runtime's signature and never read.
// Any storage or decode failure is returned as-is and fails the invocation.
func (h *TodoHandler) Handle(ctx context.Context, _ json.RawMessage) (Response, error) {
	requestID := logger.RequestID(ctx)

	data, err := h.storage.GetObject(ctx, Bucket, Key)
	if err != nil {
		return Response{}, fmt.Errorf("get object s3://%s/%s: %w", Bucket, Key, err)
	}

	body, err := decodeDocument(data)
	if err != nil {
		logger.Errorf("[TodoHandler] request=%s failed to decode s3://%s/%s: %v", requestID, Bucket, Key, err)
		return Response{}, fmt.Errorf("decode s3://%s/%s: %w", Bucket, Key, err)
	}

	logger.Debugf("[TodoHandler] request=%s served s3://%s/%s (%d bytes)", requestID, Bucket, Key, len(data))
	return Response{StatusCode: http.StatusOK, Body: body}, nil
}

// decodeDocument parses exactly one JSON value of any kind.
// Numbers are kept as json.Number so they round-trip unchanged.
func decodeDocument(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return value, nil
}
