package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <blob>",
		Short: "Validate blob structure",
		Long: `The validate command checks a device tree blob for structural
integrity: header sanity, token grammar, node balance, and the terminal
END marker. The whole structure block is walked.

Example:
  fdtctl validate board.dtb
  fdtctl validate board.dtb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	blobPath := args[0]

	printVerbose("Validating blob: %s\n", blobPath)

	t, err := openTree(blobPath)
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer t.Close()

	if err := t.Validate(); err != nil {
		if jsonOut {
			_ = printJSON(map[string]interface{}{
				"file":  blobPath,
				"valid": false,
				"error": err.Error(),
			})
		} else {
			printInfo("INVALID: %v\n", err)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":  blobPath,
			"valid": true,
		})
	}
	printInfo("OK: %s\n", blobPath)
	return nil
}
