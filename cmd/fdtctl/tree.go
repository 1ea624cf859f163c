package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var treePath string

func init() {
	cmd := newTreeCmd()
	cmd.Flags().StringVar(&treePath, "path", "/", "Subtree to print")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <blob>",
		Short: "Print the node hierarchy",
		Long: `The tree command renders the node and property hierarchy of a blob as
indented text, in document order. Property values are shown by size;
use the get command to read them.

Example:
  fdtctl tree board.dtb
  fdtctl tree board.dtb --path /soc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	blobPath := args[0]

	printVerbose("Opening blob: %s\n", blobPath)

	t, err := openTree(blobPath)
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer t.Close()

	node := t.Find(treePath)
	if !node.Valid() {
		return fmt.Errorf("node not found: %s", treePath)
	}
	return node.Print(os.Stdout)
}
