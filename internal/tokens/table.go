package tokens

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/ramptone/internal/colour"
)

// Table validation errors.
var (
	ErrEmptyName         = errors.New("token name is empty")
	ErrDuplicateToken    = errors.New("duplicate token")
	ErrUnresolvedRef     = errors.New("reference to a token not declared earlier")
	ErrSentinelReference = errors.New("reference needs a ramp index but the token may resolve to black or white")
	ErrInvalidRatio      = errors.New("contrast ratio must be between 1 and 21")
	ErrInvalidColour     = errors.New("invalid colour")
	ErrInvalidTarget     = errors.New("contrast target needs exactly one of colour or token")
	ErrNilStrategy       = errors.New("strategy is nil")
)

// Spec names a token and the strategy that places it on the ramp.
type Spec struct {
	Name     string
	Strategy Strategy
}

// Table is a validated, ordered list of token specs. Every reference points at
// a token declared before it, so tokens resolve in declaration order.
type Table struct {
	specs []Spec
}

// NewTable validates specs and returns a table resolving them in the given order.
func NewTable(specs ...Spec) (*Table, error) {
	// maySentinel records, per declared token, whether it can resolve to
	// SpecialBlack or SpecialWhite.
	maySentinel := make(map[string]bool, len(specs))

	for _, spec := range specs {
		if spec.Name == "" {
			return nil, ErrEmptyName
		}
		if spec.Strategy == nil {
			return nil, fmt.Errorf("%w: token %q", ErrNilStrategy, spec.Name)
		}
		if _, exists := maySentinel[spec.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, spec.Name)
		}

		for _, ref := range spec.Strategy.references() {
			sentinel, declared := maySentinel[ref.token]
			if !declared {
				return nil, fmt.Errorf("%w: token %q references %q", ErrUnresolvedRef, spec.Name, ref.token)
			}
			if ref.needsIndex && sentinel {
				return nil, fmt.Errorf("%w: token %q references %q", ErrSentinelReference, spec.Name, ref.token)
			}
		}

		if err := validateParams(spec.Strategy); err != nil {
			return nil, fmt.Errorf("token %q: %w", spec.Name, err)
		}

		switch s := spec.Strategy.(type) {
		case ContentOnPrimary:
			maySentinel[spec.Name] = true
		case UseSameIndex:
			maySentinel[spec.Name] = maySentinel[s.Reference]
		default:
			maySentinel[spec.Name] = false
		}
	}

	return &Table{specs: append([]Spec(nil), specs...)}, nil
}

// MustTable is like NewTable but panics on an invalid table. It is meant for
// tables declared in code.
func MustTable(specs ...Spec) *Table {
	t, err := NewTable(specs...)
	if err != nil {
		panic(fmt.Sprintf("invalid token table: %v", err))
	}
	return t
}

func validateParams(s Strategy) error {
	switch s := s.(type) {
	case LightestWithContrast:
		return validateContrast(s.Target, s.Ratio)
	case DarkestWithContrast:
		return validateContrast(s.Target, s.Ratio)
	case BorderAccessible:
		return validateContrast(s.Target, s.Ratio)
	case DisabledContent:
		lo, hi := s.band()
		if lo < 1 || hi < lo || hi > colour.ContrastRatioMax {
			return fmt.Errorf("%w: band [%v, %v]", ErrInvalidRatio, lo, hi)
		}
	case ContentOnPrimary:
		preferred, minimum := s.thresholds()
		if err := validateRatio(preferred); err != nil {
			return err
		}
		return validateRatio(minimum)
	}
	return nil
}

func validateContrast(t Target, ratio float64) error {
	if (t.Color == "") == (t.Token == "") {
		return ErrInvalidTarget
	}
	if t.Color != "" && !colour.ValidHex(t.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColour, t.Color)
	}
	return validateRatio(ratio)
}

func validateRatio(ratio float64) error {
	if ratio < 1 || ratio > colour.ContrastRatioMax {
		return fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	return nil
}

// Specs returns a copy of the table's specs in resolution order.
func (t *Table) Specs() []Spec {
	return append([]Spec(nil), t.specs...)
}

// Names returns the token names in resolution order.
func (t *Table) Names() []string {
	names := make([]string, len(t.specs))
	for i, s := range t.specs {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int {
	return len(t.specs)
}
