package core

import "fmt"

type Unit struct{}

// CommandError is the envelope handlers use to surface failures to the
// transport layer together with the HTTP status they map to.
type CommandError struct {
	Payload    interface{} `json:"payload,omitempty"`
	StatusCode int         `json:"statusCode"`
	Reason     *string     `json:"reason,omitempty"`
}

type CommandErrorOption func(*CommandError)

func WithReason(reason string) CommandErrorOption {
	return func(e *CommandError) {
		e.Reason = &reason
	}
}

func NewCommandError(statusCode int, payload interface{}, opts ...CommandErrorOption) CommandError {
	e := CommandError{
		StatusCode: statusCode,
		Payload:    payload,
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func (e CommandError) Error() string {
	reason := ""
	if e.Reason != nil {
		reason = *e.Reason
	}

	return fmt.Sprintf("status: %d reason: %s payload: %+v", e.StatusCode, reason, e.Payload)
}
