package otel_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mykuliah/infras/otel"
	"mykuliah/shared/clock"
	"mykuliah/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpan(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.booking.Create")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func attributeValue(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int64
		wantStatus codes.Code
	}{
		{
			name:       "conflict is recorded without error status",
			err:        fmt.Errorf("failed to create booking: %w", failure.Conflict("time slot already booked")),
			wantCode:   409,
			wantStatus: codes.Unset,
		},
		{
			name:       "plain error marks the span",
			err:        errors.New("store unavailable"),
			wantCode:   500,
			wantStatus: codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := recordSpan(t, func(scope otel.Scope) {
				scope.TraceError(tt.err)
			})

			code, ok := attributeValue(span, "failure.code")
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, code.AsInt64())
			assert.Equal(t, tt.wantStatus, span.Status().Code)
			require.Len(t, span.Events(), 1)
			assert.Equal(t, "exception", span.Events()[0].Name)
		})
	}
}

func TestScope_TraceIfErrorNil(t *testing.T) {
	span := recordSpan(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
		scope.TraceError(nil)
	})

	assert.Empty(t, span.Events())
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestScope_SetAttributes(t *testing.T) {
	span := recordSpan(t, func(scope otel.Scope) {
		scope.SetAttribute("booking.start", clock.TimeOfDay(9*60))
		scope.SetAttributes(map[string]any{
			"booking.room_id":    "A201",
			"booking.count":      3,
			"gemini.temperature": float32(0.5),
			"assistant.fallback": true,
			"booking.categories": []string{"Dewan", "Bilik"},
		})
	})

	start, _ := attributeValue(span, "booking.start")
	assert.Equal(t, "09:00", start.AsString())

	room, _ := attributeValue(span, "booking.room_id")
	assert.Equal(t, "A201", room.AsString())

	count, _ := attributeValue(span, "booking.count")
	assert.Equal(t, int64(3), count.AsInt64())

	temperature, _ := attributeValue(span, "gemini.temperature")
	assert.InDelta(t, 0.5, temperature.AsFloat64(), 0.0001)

	fallback, _ := attributeValue(span, "assistant.fallback")
	assert.True(t, fallback.AsBool())

	categories, _ := attributeValue(span, "booking.categories")
	assert.Equal(t, []string{"Dewan", "Bilik"}, categories.AsStringSlice())
}
