package styles

import (
	"testing"

	"github.com/justinpbarnett/buildwall/internal/build"
)

func TestBuildStatusColor(t *testing.T) {
	tests := []struct {
		status build.Status
		want   string
	}{
		{build.StatusBuilding, StatusRunning.Dark},
		{build.StatusPassed, StatusSuccess.Dark},
		{build.StatusFailed, StatusError.Dark},
		{build.StatusBroken, StatusWarning.Dark},
		{build.StatusQueued, StatusPending.Dark},
		{build.StatusUnknown, TextDim.Dark},
	}
	for _, tt := range tests {
		if got := BuildStatusColor(tt.status).Dark; got != tt.want {
			t.Errorf("BuildStatusColor(%s) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestBuildStatusIconSingleCell(t *testing.T) {
	for _, s := range []build.Status{build.StatusBuilding, build.StatusPassed, build.StatusFailed, build.StatusBroken, build.StatusQueued, build.StatusFixed, build.StatusUnknown} {
		if BuildStatusIcon(s) == "" {
			t.Errorf("BuildStatusIcon(%s) is empty", s)
		}
	}
}
