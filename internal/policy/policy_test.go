package policy

import "testing"

func TestSpeedLimitKnownLocations(t *testing.T) {
	if got := SpeedLimit("MG_Road_01"); got != 50 {
		t.Fatalf("expected 50 for MG_Road_01, got %d", got)
	}
	if got := SpeedLimit("Outer_Ring_2"); got != 80 {
		t.Fatalf("expected 80 for Outer_Ring_2, got %d", got)
	}
	if got := SpeedLimit("School_Zone_A"); got != 30 {
		t.Fatalf("expected 30 for School_Zone_A, got %d", got)
	}
	if got := SpeedLimit("Highway_7"); got != 100 {
		t.Fatalf("expected 100 for Highway_7, got %d", got)
	}
}

func TestSpeedLimitUnknownLocation(t *testing.T) {
	if got := SpeedLimit("Nowhere_99"); got != DefaultSpeedLimit {
		t.Fatalf("expected default %d for unknown location, got %d", DefaultSpeedLimit, got)
	}
	if got := SpeedLimit(""); got != DefaultSpeedLimit {
		t.Fatalf("expected default %d for empty location, got %d", DefaultSpeedLimit, got)
	}
}
