package badge

import (
	"fmt"
	"io"
)

// writeQRPath emits a single SVG <path> element covering every set module of
// m, scaled to fill a width-by-width box anchored at (xOffset, yOffset). A
// one-module border is reserved on all four sides, so each module square has
// side width/(size+2). Modules are walked row-major and each set module
// yields its own closed subpath; adjacent modules are not merged.
func writeQRPath(w io.Writer, m Matrix, xOffset, yOffset, width float64) error {
	if _, err := io.WriteString(w, `<path d="`); err != nil {
		return err
	}

	const border = 1
	n := m.Size()
	scale := width / float64(n+2*border)
	drawX := xOffset + border*scale
	drawY := yOffset + border*scale

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.Module(x, y) {
				continue
			}
			_, err := fmt.Fprintf(w, "M%.3f,%.3fh%.3fv%.3fh-%.3fz",
				drawX+scale*float64(x),
				drawY+scale*float64(y),
				scale, scale, scale)
			if err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, `"/>`)
	return err
}
