package core

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func RequestBody[TRequest any](r *http.Request) (TRequest, error) {
	var request TRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	return request, err
}

// ErrorBody is the JSON shape for plain error responses. Raw error values
// marshal to an empty object, so transport code wraps them in this instead.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrBody(err error) ErrorBody {
	return ErrorBody{Error: err.Error()}
}

type ResponseOption func(http.ResponseWriter, *http.Request)

func WithHeader(header, value string) ResponseOption {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add(header, value)
	}
}

func WriteOK(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusOK, body)
}

func WriteCreated(w http.ResponseWriter, r *http.Request, location string, body interface{}) {
	WriteResponse(w, r, http.StatusCreated, body, WithHeader("Location", location))
}

func WriteBadRequest(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusBadRequest, body)
}

func WriteUnauthorized(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusUnauthorized, body)
}

func WriteNotFound(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusNotFound, body)
}

func WriteInternalServerError(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusInternalServerError, body)
}

// WriteCommandError maps a handler failure to its HTTP status. Anything
// that is not a CommandError is treated as an internal failure.
func WriteCommandError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	var body interface{} = ErrBody(err)

	if commandErr, ok := err.(CommandError); ok {
		statusCode = commandErr.StatusCode

		// Error payloads other than validation results marshal to an
		// empty object, so flatten them to their message.
		if payloadErr, ok := commandErr.Payload.(error); ok {
			if _, ok := payloadErr.(ValidationError); !ok {
				commandErr.Payload = payloadErr.Error()
			}
		}
		body = commandErr
	}

	WriteResponse(w, r, statusCode, body)
}

func WriteResponse(
	w http.ResponseWriter,
	r *http.Request,
	statusCode int,
	body interface{},
	opts ...ResponseOption,
) {
	for _, opt := range opts {
		opt(w, r)
	}

	if body != nil {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(statusCode)
	writeBodyIfPresent(r.Context(), w, body)
}

func writeBodyIfPresent(ctx context.Context, w http.ResponseWriter, body interface{}) {
	if body == nil {
		return
	}

	responseBytes, err := json.Marshal(body)
	if err != nil {
		LogError(ctx, "failed to serialize response body", zap.Error(err))
		return
	}

	if _, err := w.Write(responseBytes); err != nil {
		LogError(ctx, "failed to write response", zap.Error(err))
	}
}
