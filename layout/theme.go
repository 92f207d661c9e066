package layout

import "fatura-backend/invoice"

// Palette is the color pair a theme applies: Background fills the table
// header band, Accent colors the grand-total emphasis text. Themes are
// purely cosmetic; they never affect computed values or which fields
// render.
type Palette struct {
	Name       invoice.ThemeColor
	Background string // hex, e.g. "#1f2937"
	Accent     string // hex
}

var palettes = map[invoice.ThemeColor]Palette{
	invoice.ThemeGray:   {Name: invoice.ThemeGray, Background: "#1f2937", Accent: "#111827"},
	invoice.ThemeRed:    {Name: invoice.ThemeRed, Background: "#b91c1c", Accent: "#b91c1c"},
	invoice.ThemeBlue:   {Name: invoice.ThemeBlue, Background: "#1d4ed8", Accent: "#1d4ed8"},
	invoice.ThemeOrange: {Name: invoice.ThemeOrange, Background: "#ea580c", Accent: "#ea580c"},
	invoice.ThemeYellow: {Name: invoice.ThemeYellow, Background: "#f59e0b", Accent: "#d97706"},
	invoice.ThemeGreen:  {Name: invoice.ThemeGreen, Background: "#047857", Accent: "#047857"},
}

// ThemeFor resolves a theme name to its palette. Unknown or missing
// names fall back to gray.
func ThemeFor(name invoice.ThemeColor) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[invoice.ThemeGray]
}
