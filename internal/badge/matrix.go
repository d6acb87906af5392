package badge

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Matrix is a square QR module grid produced by an external encoder. Module
// reports whether the cell at column x, row y is set; both run over [0, Size).
type Matrix interface {
	Size() int
	Module(x, y int) bool
}

// bitmapMatrix adapts the [row][col] bitmap returned by skip2/go-qrcode.
type bitmapMatrix [][]bool

func (m bitmapMatrix) Size() int { return len(m) }

func (m bitmapMatrix) Module(x, y int) bool { return m[y][x] }

// EncodeMatrix encodes text into a QR module matrix at error correction
// level Q. The encoder's own quiet zone is disabled; the path emitter
// reserves its own one-module border.
func EncodeMatrix(text string) (Matrix, error) {
	q, err := qrcode.New(text, qrcode.High)
	if err != nil {
		return nil, fmt.Errorf("encode QR matrix: %w", err)
	}
	q.DisableBorder = true
	return bitmapMatrix(q.Bitmap()), nil
}
