package tracing

import (
	"context"
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("OTEL_ENVIRONMENT", "")
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg := DefaultConfig()

	if cfg.ServiceName != "wikipedia-edit-tracker" {
		t.Errorf("Expected ServiceName 'wikipedia-edit-tracker', got %q", cfg.ServiceName)
	}
	if cfg.ServiceVersion != "1.0.0" {
		t.Errorf("Expected ServiceVersion '1.0.0', got %q", cfg.ServiceVersion)
	}
	if cfg.Environment != "development" {
		t.Errorf("Expected Environment 'development', got %q", cfg.Environment)
	}
	if cfg.Enabled {
		t.Error("Expected Enabled to be false by default")
	}
	if cfg.OTLPEndpoint != "" {
		t.Errorf("Expected OTLPEndpoint to be empty, got %q", cfg.OTLPEndpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("Expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
}

func TestDefaultConfig_WithEnvVars(t *testing.T) {
	t.Setenv("OTEL_ENVIRONMENT", "production")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg := DefaultConfig()

	if cfg.Environment != "production" {
		t.Errorf("Expected Environment 'production', got %q", cfg.Environment)
	}
	if !cfg.Enabled {
		t.Error("Expected Enabled to be true")
	}
	if cfg.OTLPEndpoint != "localhost:4318" {
		t.Errorf("Expected OTLPEndpoint 'localhost:4318', got %q", cfg.OTLPEndpoint)
	}
}

func TestSetup_Disabled(t *testing.T) {
	cfg := Config{Enabled: false}

	shutdown, err := Setup(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if shutdown == nil {
		t.Fatal("Setup() should return a no-op shutdown function when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("no-op shutdown returned error: %v", err)
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test.operation")
	defer span.End()

	if ctx == nil {
		t.Fatal("StartSpan returned nil context")
	}
	if span == nil {
		t.Fatal("StartSpan returned nil span")
	}
}

func TestAddPageAttributes(t *testing.T) {
	_, span := StartSpan(context.Background(), "test.attributes")
	defer span.End()

	// Must not panic, with or without a recording span
	AddPageAttributes(span, "Test Page", 30)
	AddPageAttributes(span, "", 0)
}

func TestRecordError(t *testing.T) {
	_, span := StartSpan(context.Background(), "test.error")
	defer span.End()

	RecordError(span, errors.New("boom"))
	RecordError(span, nil)
}
