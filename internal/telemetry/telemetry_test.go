package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

// restoreProvider puts the global tracer provider back after a test.
func restoreProvider(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestTracerWithoutSetup(t *testing.T) {
	// The global provider is a no-op until Setup runs; spans must still work.
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("expected an invalid span context from the default provider")
	}
}

func TestSetupDisabled(t *testing.T) {
	restoreProvider(t)
	ctx := context.Background()

	shutdown, err := Setup(ctx, Options{})
	if err != nil {
		t.Fatal(err)
	}
	_, span := Tracer("world").Start(ctx, "world.generate_rooms")
	span.End()
	if span.IsRecording() {
		t.Error("disabled telemetry recorded a span")
	}
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	restoreProvider(t)
	ctx := context.Background()

	shutdown, err := Setup(ctx, Options{Enabled: true, Endpoint: "http://127.0.0.1:4318"})
	if err != nil {
		t.Fatal(err)
	}
	_, span := Tracer("layout").Start(ctx, "layout.generate")
	if !span.IsRecording() || !span.SpanContext().IsValid() {
		t.Error("enabled telemetry did not record")
	}
	// Nothing was ended, so shutdown has nothing to send.
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown: %v", err)
	}
	span.End()
}

func TestSampler(t *testing.T) {
	for _, ratio := range []float64{0, -1, 1, 2} {
		if got := sampler(ratio).Description(); got != "AlwaysOnSampler" {
			t.Errorf("sampler(%v) = %s, want AlwaysOnSampler", ratio, got)
		}
	}
	if got := sampler(0.25).Description(); got == "AlwaysOnSampler" {
		t.Error("sampler(0.25) samples everything")
	}
}
