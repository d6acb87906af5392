// Package api exposes the pairing badge over HTTP. It is delivery glue only:
// badge rendering and code derivation live in internal/badge and
// internal/setup.
package api

import (
	"github.com/gorilla/mux"

	"hapbadge/internal/display"
	"hapbadge/internal/utils"
)

// NewRouter builds the HTTP routes for the pairing badge service.
func NewRouter(d *display.SetupDisplay, logger *utils.Logger) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", HealthHandler).Methods("GET")
	r.HandleFunc("/homekit/pairing", PairingBadgeHandler(d, logger)).Methods("GET")
	r.HandleFunc("/homekit/code", PairingCodeHandler(d, logger)).Methods("GET")
	return r
}
