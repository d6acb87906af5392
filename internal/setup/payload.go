// Package setup implements HomeKit setup payload parsing and pairing code
// derivation. A setup payload is a 20 character URI of the form
// "X-HM://SSSSSSSSSIIII": the "X-HM://" scheme, a 9 character base-36
// segment carrying the setup code and transport flags, and a 4 character
// setup ID.
package setup

import (
	"errors"
	"fmt"
)

const (
	// PayloadPrefix is the literal scheme every setup payload starts with.
	PayloadPrefix = "X-HM://"

	// PayloadLength is the exact length of a well-formed setup payload.
	PayloadLength = 20

	// segmentLength is the length of the base-36 numeral segment.
	segmentLength = 9

	// codeMask keeps the low 27 bits of the decoded segment, which hold
	// the setup code. The upper bits carry category and transport flags.
	codeMask = 0x7FFFFFF

	// MaxSetupCode is the largest valid pairing code (8 decimal digits).
	MaxSetupCode = 99999999
)

// ErrCodeOutOfRange reports a masked setup code above MaxSetupCode. Such a
// code cannot be displayed in the badge's fixed 8-digit field and is never
// clamped.
var ErrCodeOutOfRange = errors.New("setup code exceeds the limits of a valid setup code")

// Payload is a validated setup payload string. The zero value is not valid;
// obtain one through ParsePayload or ComposePayload.
type Payload struct {
	raw string
}

// ParsePayload checks the shape of a candidate setup payload. It reports
// false for anything that is not exactly 20 characters starting with
// "X-HM://"; a malformed candidate is treated as absent, not as an error.
func ParsePayload(raw string) (Payload, bool) {
	if len(raw) != PayloadLength {
		return Payload{}, false
	}
	if raw[:len(PayloadPrefix)] != PayloadPrefix {
		return Payload{}, false
	}
	return Payload{raw: raw}, true
}

// String returns the payload URI.
func (p Payload) String() string { return p.raw }

// NumeralSegment returns the 9 character base-36 segment after the scheme.
func (p Payload) NumeralSegment() string {
	return p.raw[len(PayloadPrefix) : len(PayloadPrefix)+segmentLength]
}

// SetupID returns the 4 trailing characters. They identify the accessory in
// service discovery and are not interpreted here.
func (p Payload) SetupID() string {
	return p.raw[len(PayloadPrefix)+segmentLength:]
}

// SetupCode decodes the numeral segment and masks it down to the embedded
// pairing code. Segment bytes outside 0-9A-Z yield an ErrInvalidDigit error.
func (p Payload) SetupCode() (SetupCode, error) {
	v, err := decodeBase36(p.NumeralSegment())
	if err != nil {
		return 0, fmt.Errorf("numeral segment: %w", err)
	}
	return SetupCode(v & codeMask), nil
}

// SetupCode is a pairing code derived from a setup payload. Valid codes are
// in [0, MaxSetupCode]; the mask bounds them to [0, 134217727], so a decoded
// code may still be out of range and must be checked before display.
type SetupCode uint64

// Valid reports whether the code fits the 8 decimal digit display field.
func (c SetupCode) Valid() bool { return c <= MaxSetupCode }

// String formats the code as exactly 8 decimal digits, zero-padded, so the
// badge's two 4-digit groups are always fully populated.
func (c SetupCode) String() string {
	return fmt.Sprintf("%08d", uint64(c))
}

// Groups splits the formatted code into its two 4-digit display halves.
func (c SetupCode) Groups() (string, string) {
	s := c.String()
	return s[:4], s[4:]
}
