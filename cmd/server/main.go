package main

import (
	"log"
	"net/http"
	"os"

	"hapbadge/internal/api"
	"hapbadge/internal/display"
	"hapbadge/internal/setup"
	"hapbadge/internal/utils"
)

func main() {
	logger := utils.NewLogger(os.Stderr)

	d := display.NewSetupDisplay()
	if raw := os.Getenv("HAP_SETUP_PAYLOAD"); raw != "" {
		payload, ok := setup.ParsePayload(raw)
		if !ok {
			log.Fatalf("HAP_SETUP_PAYLOAD is not a valid setup payload: %q", raw)
		}
		d.SetPayload(payload)
		if code, err := payload.SetupCode(); err == nil && code.Valid() {
			d.SetCode(code.String())
			logger.Info("setup code for display: %s", code)
		}
	}

	addr := os.Getenv("HAP_BADGE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := api.NewRouter(d, logger)
	log.Println("Server running on " + addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
