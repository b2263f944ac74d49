package core

import (
	"context"
	"fmt"

	"github.com/eskrenkovic/mediator-go"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger installs the process-wide logger used by helpers that have no
// other way to report failures. Called once from the composition root.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func LogError(ctx context.Context, msg string, fields ...zap.Field) {
	if correlationID, ok := ctx.Value(CorrelationIDContextKey).(string); ok && correlationID != "" {
		fields = append(fields, zap.String("correlation_id", correlationID))
	}
	logger.Error(msg, fields...)
}

var _ mediator.PipelineBehavior = (*RequestLoggingBehavior)(nil)

type RequestLoggingBehavior struct {
	Logger *zap.Logger
}

func (b *RequestLoggingBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	var logFields []zap.Field

	if correlationID, ok := ctx.Value(CorrelationIDContextKey).(string); ok && correlationID != "" {
		logFields = append(logFields, zap.String("correlation_id", correlationID))
	}

	logFields = append(logFields, zap.String("request_type", typeName(request)))

	b.Logger.Info("processing request", logFields...)

	return next(ctx, request)
}

var _ mediator.PipelineBehavior = (*HandlerErrorLoggingBehavior)(nil)

type HandlerErrorLoggingBehavior struct {
	Logger *zap.Logger
}

func (b *HandlerErrorLoggingBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	response, err := next(ctx, request)
	if err != nil {
		b.Logger.Error(
			"handler returned error",
			zap.String("request_type", typeName(request)),
			zap.Error(err),
		)
	}

	return response, err
}

func typeName(request interface{}) string {
	if request == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", request)
}
