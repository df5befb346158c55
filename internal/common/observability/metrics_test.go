package observability

import (
	"context"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_RecordsEndedSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	obs := New("modalcopy-test", WithRegisterer(promclient.NewRegistry()), WithSpanProcessor(recorder))
	defer obs.Shutdown()

	_, span := obs.StartSpan(context.Background(), "POST /api/copy/generate", attribute.String("http.method", "POST"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "POST /api/copy/generate", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("http.method", "POST"))
}

func TestRecordRequest_ExportsToRegistry(t *testing.T) {
	reg := promclient.NewRegistry()
	obs := New("modalcopy-test", WithRegisterer(reg))
	defer obs.Shutdown()

	ctx := context.Background()
	obs.RecordRequestProcessed(ctx, "/api/copy/generate", "200")
	obs.RecordRequestDuration(ctx, 12*time.Millisecond, "/api/copy/generate")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "requests_processed_total")
	assert.Contains(t, names, "requests_duration_milliseconds")
	for _, name := range names {
		assert.NotContains(t, name, ".", "metric family %q is not a legacy prometheus name", name)
	}
}

func TestNilObservability_IsSafe(t *testing.T) {
	var obs *Observability
	assert.NotPanics(t, func() {
		ctx, span := obs.StartSpan(context.Background(), "noop")
		span.End()
		obs.RecordRequestProcessed(ctx, "/", "200")
		obs.RecordRequestDuration(ctx, time.Millisecond, "/")
		obs.Shutdown()
	})
}
