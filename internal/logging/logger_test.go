// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbose bool
		debug   bool
	}{
		{false, false},
		{true, true},
	}

	for _, tt := range tests {
		core := NewLogger(tt.verbose).Desugar().Core()

		if got := core.Enabled(zap.DebugLevel); got != tt.debug {
			t.Errorf("verbose=%v: Debug enabled = %v, want %v", tt.verbose, got, tt.debug)
		}
		if !core.Enabled(zap.InfoLevel) {
			t.Errorf("verbose=%v: Info disabled", tt.verbose)
		}
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	l := Nop()
	if l.Desugar().Core().Enabled(zap.ErrorLevel) {
		t.Error("Nop logger is enabled")
	}
	l.Infow("ignored", "key", 1)
}
