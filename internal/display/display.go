// Package display holds the accessory's current setup display state: the
// setup payload and setup code published by the pairing subsystem, or
// nothing once the accessory is paired.
package display

import (
	"sync"

	"github.com/google/uuid"

	"hapbadge/internal/setup"
)

// SetupDisplay is a threadsafe holder for the currently published setup
// payload and code. Updates fully replace the previous state; a cleared
// display reports both as absent.
type SetupDisplay struct {
	mu         sync.RWMutex
	payload    setup.Payload
	payloadSet bool
	code       string
	codeSet    bool
	revision   string
}

// NewSetupDisplay creates an empty setup display.
func NewSetupDisplay() *SetupDisplay {
	return &SetupDisplay{}
}

// SetPayload publishes a new setup payload.
func (d *SetupDisplay) SetPayload(p setup.Payload) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.payload = p
	d.payloadSet = true
	d.revision = uuid.NewString()
}

// SetCode publishes the setup code string shown on character displays.
func (d *SetupDisplay) SetCode(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.code = code
	d.codeSet = true
	d.revision = uuid.NewString()
}

// Clear invalidates both payload and code, typically after pairing completes.
func (d *SetupDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.payload = setup.Payload{}
	d.payloadSet = false
	d.code = ""
	d.codeSet = false
	d.revision = uuid.NewString()
}

// Payload returns the published payload and whether one is set.
func (d *SetupDisplay) Payload() (setup.Payload, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.payload, d.payloadSet
}

// Code returns the published setup code string and whether one is set.
func (d *SetupDisplay) Code() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.code, d.codeSet
}

// Revision identifies the current display state. It changes on every update
// and is used as the ETag for badge responses.
func (d *SetupDisplay) Revision() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.revision
}
