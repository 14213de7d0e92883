package auth

import (
	"testing"
)

func TestNewPollID(t *testing.T) {
	id := NewPollID()
	if len(id) != 8 {
		t.Fatalf("Expected 8-char id, got %q", id)
	}
	for _, c := range id {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Errorf("Non-hex character %q in id %q", c, id)
		}
	}
}

func TestNewPollIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewPollID()
		if seen[id] {
			t.Fatalf("Duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		adminID int64
		want    bool
	}{
		{name: "matching id", userID: 42, adminID: 42, want: true},
		{name: "different id", userID: 7, adminID: 42, want: false},
		{name: "unconfigured admin", userID: 0, adminID: 0, want: false},
		{name: "zero user against real admin", userID: 0, adminID: 42, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAdmin(tt.userID, tt.adminID); got != tt.want {
				t.Errorf("IsAdmin(%d, %d) = %v, want %v", tt.userID, tt.adminID, got, tt.want)
			}
		})
	}
}
