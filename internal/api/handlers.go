package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"hapbadge/internal/badge"
	"hapbadge/internal/display"
	"hapbadge/internal/utils"
)

// notPairedMessage is served when the pairing subsystem has published no
// setup payload, which usually means the accessory is already paired.
const notPairedMessage = "No setup payload is set. Already paired?"

// PairingBadgeHandler serves the SVG pairing badge for the currently
// published setup payload. The badge is rendered into a buffer first so a
// payload with an out-of-range code yields a clean 500 instead of a
// truncated document.
func PairingBadgeHandler(d *display.SetupDisplay, logger *utils.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := d.Payload()
		if !ok {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			fmt.Fprintln(w, notPairedMessage)
			return
		}

		var buf bytes.Buffer
		if err := badge.Render(&buf, payload); err != nil {
			logger.Error("render pairing badge: %v", err)
			http.Error(w, "could not render pairing badge", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("ETag", `"`+d.Revision()+`"`)
		w.Write(buf.Bytes())
	}
}

// PairingCodeHandler returns the pairing code for the current payload as
// JSON, for clients that cannot display the badge.
func PairingCodeHandler(d *display.SetupDisplay, logger *utils.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := d.Payload()
		if !ok {
			http.Error(w, notPairedMessage, http.StatusNotFound)
			return
		}

		code, err := payload.SetupCode()
		if err != nil || !code.Valid() {
			logger.Error("derive pairing code: %v (code %d)", err, code)
			http.Error(w, "could not derive pairing code", http.StatusInternalServerError)
			return
		}

		first, second := code.Groups()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"code": first + "-" + second,
		})
	}
}

// HealthHandler reports service liveness
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "OK")
}
