package model

import "testing"

func TestSessionState_IsBusy(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected bool
	}{
		{StateIdle, false},
		{StateFetching, true},
		{StateFetched, false},
		{StateDownloading, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsBusy(); got != tt.expected {
				t.Errorf("IsBusy() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSessionState_HasPlaylist(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected bool
	}{
		{StateIdle, false},
		{StateFetching, false},
		{StateFetched, true},
		{StateDownloading, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.HasPlaylist(); got != tt.expected {
				t.Errorf("HasPlaylist() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStatusKind_IsTerminal(t *testing.T) {
	tests := []struct {
		kind     StatusKind
		expected bool
	}{
		{StatusInfo, false},
		{StatusSkip, false},
		{StatusComplete, true},
		{StatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsTerminal(); got != tt.expected {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.expected)
			}
		})
	}
}
