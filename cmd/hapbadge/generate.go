package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hapbadge/internal/setup"
)

var (
	generateCode     int64
	generateCategory uint8
	generateFlags    []string
	generateSetupID  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compose a setup payload for testing",
	Long: `Compose a well-formed setup payload from a pairing code, transport flags,
accessory category and setup ID. Unset parts are picked at random.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := parseTransportFlags(transportFlagNames())
		if err != nil {
			return err
		}

		payload, err := composePayload(flags)
		if err != nil {
			return err
		}

		code, err := payload.SetupCode()
		if err != nil {
			return err
		}
		first, second := code.Groups()
		fmt.Printf("%s\t%s-%s\n", payload, first, second)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64Var(&generateCode, "code", -1, "pairing code (0-99999999, default random)")
	generateCmd.Flags().Uint8Var(&generateCategory, "category", 0, "accessory category (default from config)")
	generateCmd.Flags().StringSliceVar(&generateFlags, "flag", nil, "transport flags: ip, ble, nfc (default from config)")
	generateCmd.Flags().StringVar(&generateSetupID, "setup-id", "", "4 character setup ID (default random)")
}

// transportFlagNames resolves the flag names from the command line or config.
func transportFlagNames() []string {
	if len(generateFlags) > 0 {
		return generateFlags
	}
	return cfg.GetStringSlice(cfgKeyFlags)
}

// parseTransportFlags maps flag names to payload flag bits.
func parseTransportFlags(names []string) (setup.PayloadFlags, error) {
	var flags setup.PayloadFlags
	for _, name := range names {
		switch name {
		case "ip":
			flags |= setup.FlagIP
		case "ble":
			flags |= setup.FlagBLE
		case "nfc":
			flags |= setup.FlagNFC
		default:
			return 0, fmt.Errorf("unknown transport flag %q (want ip, ble or nfc)", name)
		}
	}
	return flags, nil
}

// composePayload builds the payload from the resolved parameters, filling
// unset ones from a random payload.
func composePayload(flags setup.PayloadFlags) (setup.Payload, error) {
	random, err := setup.RandomPayload()
	if err != nil {
		return setup.Payload{}, err
	}

	code, err := random.SetupCode()
	if err != nil {
		return setup.Payload{}, err
	}
	if generateCode >= 0 {
		code = setup.SetupCode(generateCode)
	}

	category := generateCategory
	if category == 0 {
		category = uint8(cfg.GetUint(cfgKeyCategory))
	}

	setupID := generateSetupID
	if setupID == "" {
		setupID = random.SetupID()
	}

	return setup.ComposePayload(code, flags, category, setupID)
}
