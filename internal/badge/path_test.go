package badge

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteQRPathGeometry(t *testing.T) {
	// 4x4 matrix with modules set at (0,0), (1,2) and (3,3).
	m := bitmapMatrix{
		{true, false, false, false},
		{false, false, false, false},
		{false, true, false, false},
		{false, false, false, true},
	}

	var buf bytes.Buffer
	require.NoError(t, writeQRPath(&buf, m, 5, 7, 60))

	// scale = 60/(4+2) = 10; draw origin = (5+10, 7+10). Row-major emission
	// order, one closed subpath per set module.
	want := `<path d="` +
		`M15.000,17.000h10.000v10.000h-10.000z` +
		`M25.000,37.000h10.000v10.000h-10.000z` +
		`M45.000,47.000h10.000v10.000h-10.000z` +
		`"/>`
	assert.Equal(t, want, buf.String())
}

func TestWriteQRPathEmptyMatrix(t *testing.T) {
	m := bitmapMatrix{
		{false, false},
		{false, false},
	}

	var buf bytes.Buffer
	require.NoError(t, writeQRPath(&buf, m, 0, 0, 100))
	assert.Equal(t, `<path d=""/>`, buf.String())
}

// TestWriteQRPathModuleCount checks that the number of emitted subpaths
// equals the number of set modules, and that every square has the same side
// length width/(n+2).
func TestWriteQRPathModuleCount(t *testing.T) {
	n := 29
	m := make(bitmapMatrix, n)
	setModules := 0
	for y := range m {
		m[y] = make([]bool, n)
		for x := range m[y] {
			if (x*31+y*17)%3 == 0 {
				m[y][x] = true
				setModules++
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, writeQRPath(&buf, m, 10, 74, 165))
	out := buf.String()

	assert.Equal(t, setModules, strings.Count(out, "M"))
	assert.Equal(t, setModules, strings.Count(out, "z"))

	side := fmt.Sprintf("%.3f", 165.0/float64(n+2))
	assert.Equal(t, setModules, strings.Count(out, "h"+side+"v"+side+"h-"+side+"z"))
}

// TestWriteQRPathFitsRegion checks the one-module margin: the rightmost and
// bottommost squares end one scale unit inside the requested box.
func TestWriteQRPathFitsRegion(t *testing.T) {
	n := 3
	m := make(bitmapMatrix, n)
	for y := range m {
		m[y] = make([]bool, n)
		for x := range m[y] {
			m[y][x] = true
		}
	}

	const xOffset, yOffset, width = 10.0, 74.0, 165.0
	scale := width / float64(n+2)

	var buf bytes.Buffer
	require.NoError(t, writeQRPath(&buf, m, xOffset, yOffset, width))

	// Anchor of the last module (n-1, n-1).
	lastX := xOffset + scale + scale*float64(n-1)
	lastY := yOffset + scale + scale*float64(n-1)
	assert.Contains(t, buf.String(), fmt.Sprintf("M%.3f,%.3f", lastX, lastY))

	// Its far edge plus the reserved border lands exactly on the box edge.
	assert.InDelta(t, xOffset+width, lastX+scale+scale, 1e-9)
	assert.InDelta(t, yOffset+width, lastY+scale+scale, 1e-9)
}

func TestWriteQRPathIdempotent(t *testing.T) {
	m := bitmapMatrix{
		{true, false, true},
		{false, true, false},
		{true, false, true},
	}

	var a, b bytes.Buffer
	require.NoError(t, writeQRPath(&a, m, 10, 74, 165))
	require.NoError(t, writeQRPath(&b, m, 10, 74, 165))
	assert.Equal(t, a.Bytes(), b.Bytes())
}
