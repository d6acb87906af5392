// Package badge renders HomeKit pairing badges: an SVG card combining the
// human-readable 8-digit pairing code with a scannable QR encoding of the
// setup payload.
package badge

import (
	"fmt"
	"io"

	"hapbadge/internal/setup"
)

// Render writes a complete pairing badge for p to w. The pairing code is
// derived and range-checked and the QR matrix is encoded before the first
// byte is written, so a failing payload never produces partial markup.
func Render(w io.Writer, p setup.Payload) error {
	code, err := p.SetupCode()
	if err != nil {
		return fmt.Errorf("render badge: %w", err)
	}
	if !code.Valid() {
		return fmt.Errorf("render badge: %w: %d", setup.ErrCodeOutOfRange, code)
	}

	matrix, err := EncodeMatrix(p.String())
	if err != nil {
		return fmt.Errorf("render badge: %w", err)
	}

	for _, part := range []string{svgHeader, svgOpen, svgStyle, cardOutline, houseEmblem} {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}

	first, second := code.Groups()
	if _, err := fmt.Fprintf(w, codeText, first, second); err != nil {
		return err
	}

	if _, err := io.WriteString(w, qrBackingRect); err != nil {
		return err
	}
	if err := writeQRPath(w, matrix, qrRegionX, qrRegionY, qrRegionWidth); err != nil {
		return err
	}

	_, err = io.WriteString(w, svgClose)
	return err
}
