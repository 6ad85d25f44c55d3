package otel_test

import (
	"context"
	"errors"
	"testing"

	"mykuliah/config"
	"mykuliah/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "mykuliah-test"

	o := otel.New(cfg)
	require.NotNil(t, o)

	ctx, scope := o.NewScope(context.Background(), "service", "service.Test")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"str":   "value",
		"int":   1,
		"int64": int64(2),
		"float": 1.5,
		"bool":  true,
		"slice": []string{"a"},
		"other": struct{}{},
	})
	scope.AddEvent("event")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.NoError(t, o.Shutdown(context.Background()))
}
