package colour

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRampGet(t *testing.T) {
	ramp := GenerateRamp("#6366F1", 6, 0.5, 0.5)

	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{name: "first", index: 0, wantErr: false},
		{name: "last", index: 5, wantErr: false},
		{name: "negative", index: -1, wantErr: true},
		{name: "past end", index: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop, err := ramp.Get(tt.index)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			}
			if !tt.wantErr && stop != ramp[tt.index] {
				t.Errorf("Get(%d) = %+v, want %+v", tt.index, stop, ramp[tt.index])
			}
		})
	}
}

func TestRampDarkFirst(t *testing.T) {
	ramp := GenerateRamp("#6366F1", 8, 0.5, 0.5)
	if !ramp.DarkFirst() {
		t.Error("generated ramp should run dark to light")
	}

	reversed := make(Ramp, len(ramp))
	for i, s := range ramp {
		reversed[len(ramp)-1-i] = s
	}
	if reversed.DarkFirst() {
		t.Error("reversed ramp should run light to dark")
	}
}

func TestRampLabel(t *testing.T) {
	ramp := GenerateRamp("#6366F1", 12, 0.5, 0.5)
	if got := ramp.Label(0); got != "100" {
		t.Errorf("Label(0) = %s, want 100", got)
	}
	if got := ramp.Label(11); got != "1200" {
		t.Errorf("Label(11) = %s, want 1200", got)
	}
}

func TestRampToJSON(t *testing.T) {
	ramp := GenerateRamp("#6366F1", 4, 0.5, 0.5)
	data, err := ramp.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded struct {
		Count int    `json:"count"`
		Stops []Stop `json:"stops"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	if decoded.Count != 4 || len(decoded.Stops) != 4 {
		t.Errorf("decoded count=%d stops=%d, want 4", decoded.Count, len(decoded.Stops))
	}
	if decoded.Stops[0].Hex != ramp[0].Hex {
		t.Errorf("decoded first hex = %s, want %s", decoded.Stops[0].Hex, ramp[0].Hex)
	}
}

func TestRampString(t *testing.T) {
	if got := (Ramp{}).String(); got != "Empty ramp" {
		t.Errorf("String() on empty ramp = %q", got)
	}

	ramp := GenerateRamp("#6366F1", 4, 0.5, 0.5)
	out := ramp.String()
	for _, hex := range ramp.Hexes() {
		if !strings.Contains(out, hex) {
			t.Errorf("String() missing %s:\n%s", hex, out)
		}
	}
}

func TestRampAll(t *testing.T) {
	ramp := GenerateRamp("#6366F1", 5, 0.5, 0.5)
	count := 0
	for i, s := range ramp.All() {
		if s != ramp[i] {
			t.Errorf("All() yielded %+v at %d, want %+v", s, i, ramp[i])
		}
		count++
		if i == 2 {
			break
		}
	}
	if count != 3 {
		t.Errorf("All() yielded %d stops before break, want 3", count)
	}
}
