package viz

// PaletteSize is the number of colors cycled through by Color
const PaletteSize = 8

// Palette is the fixed chart color cycle.
var Palette = [PaletteSize]string{
	"#4f8fff",
	"#8b5cf6",
	"#06b6d4",
	"#f97316",
	"#10b981",
	"#ec4899",
	"#f59e0b",
	"#6366f1",
}

// Color returns the palette entry for row index i (i >= 0).
func Color(i int) string {
	return Palette[i%PaletteSize]
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = Color(i)
	}
	return colors
}
