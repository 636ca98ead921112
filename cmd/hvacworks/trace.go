package main

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

// traced runs fn within a span, recording its error if any.
func traced(name string, fn func() error) (err error) {
	_, span := otel.Tracer(instrumentationName).Start(context.Background(), name)
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, "hvacworks error")
			span.RecordError(err)
		}
		span.End()
	}()
	return fn()
}
