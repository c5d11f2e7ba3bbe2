package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Status values recorded on spans and metrics.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorTyper is implemented by errors that carry a machine-readable type
// suitable as a low-cardinality metric attribute.
type ErrorTyper interface {
	ErrorType() string
}

// Operation tracks the span and timing of a single instrumented call.
type Operation struct {
	Component string
	Name      string
	StartTime time.Time

	span    trace.Span
	metrics *Metrics
}

// StartOperation starts a span named component.name and returns the
// derived context. If metrics is nil, metric recording is skipped.
func StartOperation(ctx context.Context, component, name string, metrics *Metrics, attrs ...attribute.KeyValue) (context.Context, *Operation) {
	ctx, span := StartSpan(ctx, component+"."+name)
	span.SetAttributes(
		attribute.String(AttrComponent, component),
		attribute.String(AttrOperationName, name),
	)
	span.SetAttributes(attrs...)

	return ctx, &Operation{
		Component: component,
		Name:      name,
		StartTime: time.Now(),
		span:      span,
		metrics:   metrics,
	}
}

// Span returns the operation's span.
func (o *Operation) Span() trace.Span { return o.span }

// End closes the span and records the outcome. A nil err counts as success.
func (o *Operation) End(ctx context.Context, err error) {
	duration := time.Since(o.StartTime)
	status := StatusOK

	if err != nil {
		status = StatusError
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	}
	o.span.SetAttributes(attribute.String(AttrStatus, status))
	o.span.End()

	if o.metrics == nil {
		return
	}
	o.metrics.RecordOperation(ctx, o.Component, o.Name, status, duration)
	if err != nil {
		o.metrics.RecordError(ctx, errorType(err), o.Component)
	}
}

// Duration returns the elapsed time since operation start.
func (o *Operation) Duration() time.Duration {
	return time.Since(o.StartTime)
}

func errorType(err error) string {
	var typer ErrorTyper
	if errors.As(err, &typer) {
		return typer.ErrorType()
	}
	return "unknown"
}
