package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/den/internal/adapters/telemetry"
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
)

func TestRecorder_Record(t *testing.T) {
	recorder := telemetry.New()

	ctx, vertex := recorder.Record(context.Background(), "FETCH zlib-1.2.8-0")
	require.NotNil(t, vertex)

	attached, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, attached)

	_, err := vertex.Stdout().Write([]byte("downloading\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelInfo, "4242 bytes")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_CompleteWithError(t *testing.T) {
	recorder := telemetry.New()

	_, vertex := recorder.Record(context.Background(), "LINK zlib-1.2.8-0")
	vertex.Complete(errors.New("link failed"))

	require.NoError(t, recorder.Close())
}

func TestRecorder_Cached(t *testing.T) {
	recorder := telemetry.New()

	_, vertex := recorder.Record(context.Background(), "FETCH readline-6.2-2")
	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestNoOpTelemetry(t *testing.T) {
	tel := telemetry.NewNoOpTelemetry()

	ctx, vertex := tel.Record(context.Background(), "anything")
	require.NotNil(t, vertex)

	_, ok := ports.VertexFromContext(ctx)
	assert.True(t, ok)

	n, err := vertex.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	vertex.Log(domain.LogLevelWarn, "ignored")
	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, tel.Close())
}
