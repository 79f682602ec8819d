package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/civicmap/internal/models"
)

func TestMultiLoggerFansOut(t *testing.T) {
	a := &bytes.Buffer{}
	b := &bytes.Buffer{}
	ml := NewMultiLogger(NewConsoleLogger(a, "debug"), nil, NewConsoleLogger(b, "debug"))
	ml.Add(nil)
	ml.Add(NewNoOpLogger())

	ml.LogInfo("started")
	ml.LogMatch(&models.Result{})

	for name, buf := range map[string]*bytes.Buffer{"a": a, "b": b} {
		out := buf.String()
		if !strings.Contains(out, "[INFO] started") {
			t.Errorf("%s: missing info line in %q", name, out)
		}
		if !strings.Contains(out, "no archetype matched") {
			t.Errorf("%s: missing match line in %q", name, out)
		}
	}
	if len(ml.loggers) != 3 {
		t.Errorf("expected 3 loggers, got %d", len(ml.loggers))
	}
}
