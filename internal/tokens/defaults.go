package tokens

import "github.com/jmylchreest/ramptone/internal/colour"

// Brand token names.
const (
	BrandBackgroundPrimary  = "brandBackgroundPrimary"
	BrandBackgroundHover    = "brandBackgroundHover"
	BrandContentOnPrimary   = "brandContentOnPrimary"
	BrandBackgroundSubtle   = "brandBackgroundSubtle"
	BrandContentPrimary     = "brandContentPrimary"
	BrandContentInverse     = "brandContentInverse"
	BrandBorderAccessible   = "brandBorderAccessible"
	BrandBackgroundDisabled = "brandBackgroundDisabled"
	BrandContentDisabled    = "brandContentDisabled"
	BrandFocusRing          = "brandFocusRing"
)

// defaultTable is validated when the package loads.
var defaultTable = MustTable(
	// The fill closest to the seed colour anchors everything else.
	Spec{BrandBackgroundPrimary, ClosestBaseColor{}},
	// Generated ramps run dark to light, so -1 is one step darker.
	Spec{BrandBackgroundHover, ShiftStep{Reference: BrandBackgroundPrimary, Offset: -1}},
	Spec{BrandContentOnPrimary, ContentOnPrimary{Background: BrandBackgroundPrimary}},
	Spec{BrandBackgroundSubtle, LightestWithContrast{Target: Against(colour.White), Ratio: 1.1}},
	Spec{BrandContentPrimary, LightestWithContrast{Target: Against(colour.White), Ratio: colour.ContrastAA}},
	Spec{BrandContentInverse, DarkestWithContrast{Target: Against(colour.Black), Ratio: colour.ContrastAA}},
	Spec{BrandBorderAccessible, BorderAccessible{
		Reference: BrandBackgroundPrimary,
		Target:    Against(colour.White),
		Ratio:     colour.ContrastAALarge,
	}},
	Spec{BrandBackgroundDisabled, UseSameIndex{Reference: BrandBackgroundSubtle}},
	Spec{BrandContentDisabled, DisabledContent{
		Background: BrandBackgroundDisabled,
		Fallback:   BrandBorderAccessible,
	}},
	Spec{BrandFocusRing, LightestWithContrast{
		Target: AgainstToken(BrandBackgroundSubtle),
		Ratio:  colour.ContrastAALarge,
	}},
)

// DefaultTable returns the built-in brand token table.
func DefaultTable() *Table {
	return defaultTable
}
