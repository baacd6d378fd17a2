package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IPampurin/sort-benchmark/pkg/configuration"
)

func TestInitDisabled(t *testing.T) {

	shutdown, err := Init(context.Background(), &configuration.ConfTracing{ServiceName: "test"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer().Start(context.Background(), "noop")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid(), "без endpoint спаны не должны записываться")
}
