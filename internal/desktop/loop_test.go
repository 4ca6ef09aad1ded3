package desktop

import (
	"context"
	"testing"
)

func TestKeepRunning(t *testing.T) {
	live := context.Background()
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		close bool
		want  bool
	}{
		{"running", live, false, true},
		{"window closed", live, true, false},
		{"interrupted", cancelled, false, false},
		{"both", cancelled, true, false},
	}
	for _, tt := range tests {
		if got := keepRunning(tt.ctx, tt.close); got != tt.want {
			t.Errorf("%s: keepRunning = %v, want %v", tt.name, got, tt.want)
		}
	}
}
