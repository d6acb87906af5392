package setup

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// PayloadFlags marks the transports an accessory supports for pairing.
type PayloadFlags uint8

const (
	FlagNFC PayloadFlags = 1 << 0
	FlagIP  PayloadFlags = 1 << 1
	FlagBLE PayloadFlags = 1 << 2

	flagsShift    = 27
	categoryShift = 31
)

// ComposePayload builds a well-formed setup payload from its parts: the
// pairing code, transport flags, accessory category, and a 4 character
// alphanumeric setup ID. The result round-trips through SetupCode.
func ComposePayload(code SetupCode, flags PayloadFlags, category uint8, setupID string) (Payload, error) {
	if !code.Valid() {
		return Payload{}, fmt.Errorf("compose payload: %w: %d", ErrCodeOutOfRange, code)
	}
	if len(setupID) != PayloadLength-len(PayloadPrefix)-segmentLength {
		return Payload{}, fmt.Errorf("compose payload: setup ID must be 4 characters, got %q", setupID)
	}
	for i := 0; i < len(setupID); i++ {
		if _, err := digitValue(setupID[i]); err != nil {
			return Payload{}, fmt.Errorf("compose payload: setup ID: %w", err)
		}
	}

	value := uint64(category)<<categoryShift | uint64(flags)<<flagsShift | uint64(code)
	return Payload{raw: PayloadPrefix + encodeBase36(value, segmentLength) + setupID}, nil
}

// RandomPayload composes a payload with a random pairing code and setup ID.
// The IP transport flag is set and the accessory category is "other". Useful
// for local demos; production payloads come from accessory provisioning.
func RandomPayload() (Payload, error) {
	var buf [12]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Payload{}, fmt.Errorf("random payload: %w", err)
	}

	code := SetupCode(binary.BigEndian.Uint64(buf[:8]) % (MaxSetupCode + 1))

	id := make([]byte, 4)
	for i := range id {
		id[i] = base36Alphabet[int(buf[8+i])%len(base36Alphabet)]
	}

	return ComposePayload(code, FlagIP, 1, string(id))
}
