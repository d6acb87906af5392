package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hapbadge/internal/badge"
	"hapbadge/internal/setup"
)

var badgeOutput string

var badgeCmd = &cobra.Command{
	Use:   "badge <payload>",
	Short: "Render the SVG pairing badge for a setup payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, ok := setup.ParsePayload(args[0])
		if !ok {
			return fmt.Errorf("not a setup payload: %q", args[0])
		}

		var buf bytes.Buffer
		if err := badge.Render(&buf, payload); err != nil {
			return err
		}

		output := badgeOutput
		if output == "" {
			output = cfg.GetString(cfgKeyOutput)
		}
		if output == "-" {
			_, err := os.Stdout.Write(buf.Bytes())
			return err
		}
		return os.WriteFile(output, buf.Bytes(), 0o644)
	},
}

func init() {
	badgeCmd.Flags().StringVarP(&badgeOutput, "output", "o", "", "output file (default from config, \"-\" for stdout)")
}
