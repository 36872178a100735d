package wheel

import "fmt"

// Palette is the fixed segment fill order, cycled by segment index
var Palette = [...]string{
	"#e63946",
	"#f1faee",
	"#a8dadc",
	"#457b9d",
	"#1d3557",
	"#ffb703",
}

// LabelInk is the text color drawn over segments
const LabelInk = "#000000"

// ColorFor returns the palette color for segment index i
func ColorFor(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// PlaceholderLabel names segment i of an empty wheel, 1-based
func PlaceholderLabel(i int) string {
	return fmt.Sprintf("Student %d", i+1)
}
