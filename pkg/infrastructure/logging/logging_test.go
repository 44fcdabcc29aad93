package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLoggerTo(&buf, tt.verbose)

			l.Info("loaded %d work orders", 12)
			l.Error("failed: %s", "boom")
			l.Debug("window %v hours", 24)

			out := buf.String()
			assert.Contains(t, out, "INFO: loaded 12 work orders")
			assert.Contains(t, out, "ERROR: failed: boom")
			if tt.wantDebug {
				assert.Contains(t, out, "DEBUG: window 24 hours")
			} else {
				assert.NotContains(t, out, "DEBUG")
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("nothing to see")
	l.Debug("still nothing")
}
