package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Stop is one entry of a ramp. Hex and OKLCH describe the same colour; a stop is
// replaced rather than edited.
type Stop struct {
	Hex   string `json:"hex" yaml:"hex"`
	OKLCH OKLCH  `json:"oklch" yaml:"oklch"`
}

// NewStop builds a stop from an OKLCH colour, normalising its hue and deriving the hex.
func NewStop(o OKLCH) Stop {
	o.H = NormaliseHue(o.H)
	return Stop{Hex: OKLCHToHex(o), OKLCH: o}
}

// Ramp is an ordered sequence of colour stops.
type Ramp []Stop

// Len returns the number of stops in the ramp.
func (r Ramp) Len() int {
	return len(r)
}

// Get returns the stop at the specified index.
// Returns an error if the index is out of bounds.
func (r Ramp) Get(index int) (Stop, error) {
	if index < 0 || index >= len(r) {
		return Stop{}, fmt.Errorf("index out of bounds: %d (ramp has %d stops)", index, len(r))
	}
	return r[index], nil
}

// Hexes returns the hex strings of every stop in order.
func (r Ramp) Hexes() []string {
	hexes := make([]string, len(r))
	for i, s := range r {
		hexes[i] = s.Hex
	}
	return hexes
}

// DarkFirst reports whether the ramp runs from dark to light.
// Generated ramps always do; hand-built ramps may not.
func (r Ramp) DarkFirst() bool {
	if len(r) < 2 {
		return true
	}
	return Luminance(r[0].Hex) <= Luminance(r[len(r)-1].Hex)
}

// Label returns the conventional scale name for index i (100, 200, ...).
func (r Ramp) Label(i int) string {
	return fmt.Sprintf("%d", (i+1)*100)
}

// All returns an iterator over all stops in the ramp.
func (r Ramp) All() func(func(int, Stop) bool) {
	return func(yield func(int, Stop) bool) {
		for i, s := range r {
			if !yield(i, s) {
				return
			}
		}
	}
}

// ToJSON converts the ramp to indented JSON.
func (r Ramp) ToJSON() ([]byte, error) {
	return json.MarshalIndent(struct {
		Count int    `json:"count"`
		Stops []Stop `json:"stops"`
	}{Count: len(r), Stops: r}, "", "  ")
}

// String returns a human-readable string representation of the ramp.
func (r Ramp) String() string {
	if len(r) == 0 {
		return "Empty ramp"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ramp with %d stops:\n", len(r))
	for i, s := range r {
		fmt.Fprintf(&b, "  %5s: %s %s\n", r.Label(i), s.Hex, s.OKLCH)
	}
	return b.String()
}
