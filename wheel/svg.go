package wheel

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// WriteSVG renders segments as a standalone SVG document with radial labels
func WriteSVG(w io.Writer, segments []Segment, diameter float64) error {
	bw := bufio.NewWriter(w)
	size := num(diameter)
	fontSize := num(max(12, diameter*0.04))

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		size, size, size, size)
	bw.WriteString("  <g>\n")
	for _, s := range segments {
		fmt.Fprintf(bw, `    <path d="%s" fill="%s" stroke="#fff" stroke-width="2"/>`+"\n",
			s.Geometry.PathData, s.Color)
	}
	for _, s := range segments {
		a := s.Geometry.LabelAnchor
		fmt.Fprintf(bw,
			`    <text x="%s" y="%s" fill="%s" font-size="%s" font-weight="bold" text-anchor="middle" dominant-baseline="middle" transform="rotate(%s, %s, %s)">%s</text>`+"\n",
			num(a.X), num(a.Y), LabelInk, fontSize,
			num(s.Geometry.LabelRotation), num(a.X), num(a.Y), escape(s.Label))
	}
	bw.WriteString("  </g>\n</svg>\n")
	return bw.Flush()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
