package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hapbadge/internal/setup"
)

var codeCmd = &cobra.Command{
	Use:   "code <payload>",
	Short: "Print the pairing code embedded in a setup payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, ok := setup.ParsePayload(args[0])
		if !ok {
			return fmt.Errorf("not a setup payload: %q", args[0])
		}

		code, err := payload.SetupCode()
		if err != nil {
			return err
		}
		if !code.Valid() {
			return fmt.Errorf("%w: %d", setup.ErrCodeOutOfRange, code)
		}

		first, second := code.Groups()
		fmt.Printf("%s-%s\n", first, second)
		return nil
	},
}
