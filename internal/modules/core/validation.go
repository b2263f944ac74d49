package core

import (
	"context"
	"strings"

	"github.com/eskrenkovic/mediator-go"
)

// Validator is implemented by commands and queries that want to be
// checked before their handler runs.
type Validator interface {
	Validate() error
}

// FieldError points at a single offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every violation found in one request so the caller
// sees all of them at once instead of fixing them one round-trip at a time.
type FieldErrors []FieldError

func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// AsError returns nil when no rule was violated.
func (e FieldErrors) AsError() error {
	if len(e) == 0 {
		return nil
	}

	return ValidationError{Errors: e}
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e ValidationError) Error() string {
	var b strings.Builder
	for i, fieldErr := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fieldErr.Field)
		b.WriteString(": ")
		b.WriteString(fieldErr.Message)
	}
	return b.String()
}

var _ mediator.PipelineBehavior = (*RequestValidationBehavior)(nil)

// RequestValidationBehavior short-circuits dispatch for invalid requests.
// The request handler never sees a request that failed validation.
type RequestValidationBehavior struct{}

func (b *RequestValidationBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	if request, ok := request.(Validator); ok {
		if err := request.Validate(); err != nil {
			return nil, NewCommandError(400, err, WithReason("request validation failed"))
		}
	}

	return next(ctx, request)
}
