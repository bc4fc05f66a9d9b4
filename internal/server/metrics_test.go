package server

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNewMetricsRegistersCollectors(t *testing.T) {
	m := NewMetrics()
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
	if m.Registry() == nil {
		t.Fatal("Registry() returned nil")
	}
}

func TestObserveOperation(t *testing.T) {
	m := NewMetrics()
	m.ObserveOperation("mul", 0.002, 128, "")
	m.ObserveOperation("div", 0.001, 64, "division_by_zero")

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"bigcalc_operations_total",
		"bigcalc_operation_duration_seconds",
		"bigcalc_digits_processed_total",
		"bigcalc_operation_errors_total",
		`operation="mul"`,
		`operation="div"`,
		`kind="division_by_zero"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected exposition text to contain %q, got:\n%s", want, out)
		}
	}
}

func TestSetMemorySnapshot(t *testing.T) {
	m := NewMetrics()
	m.SetMemorySnapshot(1024, 10)

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "bigcalc_heap_alloc_bytes 1024") {
		t.Errorf("expected heap_alloc_bytes gauge, got:\n%s", out)
	}
	if !strings.Contains(out, "bigcalc_heap_objects 10") {
		t.Errorf("expected heap_objects gauge, got:\n%s", out)
	}
}

func TestObserveOperationDurationBucketing(t *testing.T) {
	m := NewMetrics()
	start := time.Now()
	m.ObserveOperation("factorial", time.Since(start).Seconds(), 0, "")

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	if !strings.Contains(buf.String(), `operation="factorial"`) {
		t.Errorf("expected factorial operation label in output")
	}
}
