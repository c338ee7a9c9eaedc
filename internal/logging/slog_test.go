package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewJSONLogger_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf)

	log.Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Fatalf("expected msg field in output, got: %q", out)
	}
	if !strings.Contains(out, `"k":"v"`) {
		t.Fatalf("expected key-value pair in output, got: %q", out)
	}
}

func TestWith_PropagatesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf).With("component", "api")

	log.Warn(context.Background(), "slow response")

	if !strings.Contains(buf.String(), `"component":"api"`) {
		t.Fatalf("expected child logger field, got: %q", buf.String())
	}
}
