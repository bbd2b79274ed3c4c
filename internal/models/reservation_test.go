package models

import "testing"

func TestSlotMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"midnight", "00:00", 0, false},
		{"morning", "09:30", 570, false},
		{"evening", "19:00", 1140, false},
		{"end of day", "23:59", 1439, false},
		{"missing separator", "1900", 0, true},
		{"non-numeric hours", "aa:00", 0, true},
		{"non-numeric minutes", "19:bb", 0, true},
		{"empty string", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlotMinutes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SlotMinutes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("SlotMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlotsOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     string
		want                           bool
	}{
		{"identical slots", "18:00", "20:00", "18:00", "20:00", true},
		{"partial overlap at end", "18:00", "20:00", "19:00", "21:00", true},
		{"partial overlap at start", "19:00", "21:00", "18:00", "20:00", true},
		{"contained slot", "18:00", "22:00", "19:00", "20:00", true},
		{"containing slot", "19:00", "20:00", "18:00", "22:00", true},
		{"abutting end to start", "18:00", "19:00", "19:00", "20:00", false},
		{"abutting start to end", "19:00", "20:00", "18:00", "19:00", false},
		{"disjoint slots", "10:00", "11:00", "19:00", "20:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlotsOverlap(tt.startA, tt.endA, tt.startB, tt.endB)
			if err != nil {
				t.Fatalf("SlotsOverlap() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SlotsOverlap(%q, %q, %q, %q) = %v, want %v",
					tt.startA, tt.endA, tt.startB, tt.endB, got, tt.want)
			}
		})
	}
}

func TestSlotsOverlapInvalidTime(t *testing.T) {
	if _, err := SlotsOverlap("18-00", "19:00", "19:00", "20:00"); err == nil {
		t.Error("SlotsOverlap() expected error for malformed time, got nil")
	}
}
