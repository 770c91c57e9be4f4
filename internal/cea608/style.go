package cea608

// Color is one of the seven CEA-608 text colors. The numeric value matches
// the 3-bit color field used by preamble and mid-row codes.
type Color int

const (
	ColorWhite Color = iota
	ColorGreen
	ColorBlue
	ColorCyan
	ColorRed
	ColorYellow
	ColorMagenta
)

var colorNames = map[Color]string{
	ColorWhite:   "white",
	ColorGreen:   "green",
	ColorBlue:    "blue",
	ColorCyan:    "cyan",
	ColorRed:     "red",
	ColorYellow:  "yellow",
	ColorMagenta: "magenta",
}

// ColorByCode looks up a color by its wire code. The second return is false
// for codes outside the palette (code 7 selects italics, not a color).
func ColorByCode(code int) (Color, bool) {
	if code < 0 || code > int(ColorMagenta) {
		return ColorWhite, false
	}
	return Color(code), true
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "white"
}

// CharStyle is the per-character attribute set. A fresh decoder starts every
// caption with DefaultStyle; commands mutate a copy held by the cursor.
type CharStyle struct {
	Color     Color
	Italics   bool
	Underline bool
	Flash     bool
}

// DefaultStyle is white text with no attributes.
func DefaultStyle() CharStyle {
	return CharStyle{Color: ColorWhite}
}
