package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
)

var (
	getHex    bool
	getString bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getHex, "hex", false, "Print the value as a hex dump")
	cmd.Flags().BoolVar(&getString, "string", false, "Print the value as a string")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <blob> <node-path> <property>",
		Short: "Get a property value from a node",
		Long: `The get command retrieves and displays a property from the node at the
given slash-separated path. The property bytes are printed as-is; their
interpretation is specific to each property.

Example:
  fdtctl get board.dtb / compatible --string
  fdtctl get board.dtb /soc/uart@10000000 reg --hex`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	blobPath := args[0]
	nodePath := args[1]
	propName := args[2]

	printVerbose("Opening blob: %s\n", blobPath)

	t, err := openTree(blobPath)
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer t.Close()

	node := t.Find(nodePath)
	if !node.Valid() {
		return fmt.Errorf("node not found: %s", nodePath)
	}

	value, found := node.Property(propName)
	if !found {
		return fmt.Errorf("property not found: %s", propName)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"node":     nodePath,
			"property": propName,
			"length":   len(value),
			"hex":      hex.EncodeToString(value),
		})
	}

	switch {
	case getHex:
		printInfo("%s", hex.Dump(value))
	case getString:
		printInfo("%s\n", renderStrings(value))
	default:
		if looksLikeStrings(value) {
			printInfo("%s\n", renderStrings(value))
		} else {
			printInfo("%s", hex.Dump(value))
		}
	}
	printVerbose("(%d bytes)\n", len(value))

	return nil
}

// looksLikeStrings reports whether value is one or more printable
// null-terminated strings, the common encoding for compatible/model/status.
func looksLikeStrings(value []byte) bool {
	if len(value) == 0 {
		return true
	}
	for _, b := range value {
		if b != 0 && (b > unicode.MaxASCII || !unicode.IsPrint(rune(b))) {
			return false
		}
	}
	return value[len(value)-1] == 0
}

// renderStrings joins a property's null-separated string list for display.
func renderStrings(value []byte) string {
	parts := strings.Split(strings.TrimRight(string(value), "\x00"), "\x00")
	return strings.Join(parts, ", ")
}
