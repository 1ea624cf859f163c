package main

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <blob>",
		Short: "Validate a blob header and report basic metadata",
		Long: `The info command validates a device tree blob and displays header
fields, structure statistics, and a content fingerprint.

Example:
  fdtctl info board.dtb
  fdtctl info board.dtb.gz --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	blobPath := args[0]

	printVerbose("Opening blob: %s\n", blobPath)

	t, err := openTree(blobPath)
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer t.Close()

	hdr := t.Header()
	stats, statsErr := t.Stats()
	digest := xxhash.Sum64(t.Bytes())

	if jsonOut {
		out := map[string]interface{}{
			"file":              blobPath,
			"total_size":        hdr.TotalSize(),
			"version":           hdr.Version(),
			"last_comp_version": hdr.LastCompVersion(),
			"boot_cpuid_phys":   hdr.BootCPUIDPhys(),
			"off_dt_struct":     hdr.OffDTStruct(),
			"off_dt_strings":    hdr.OffDTStrings(),
			"off_mem_rsvmap":    hdr.OffMemRsvmap(),
			"size_dt_struct":    hdr.SizeDTStruct(),
			"size_dt_strings":   hdr.SizeDTStrings(),
			"xxhash64":          fmt.Sprintf("%016x", digest),
		}
		if statsErr == nil {
			out["nodes"] = stats.Nodes
			out["properties"] = stats.Properties
			out["max_depth"] = stats.MaxDepth
		} else {
			out["structure_error"] = statsErr.Error()
		}
		return printJSON(out)
	}

	printInfo("\nBlob Information:\n")
	printInfo("  File: %s\n", blobPath)
	printInfo("  Total size: %d bytes\n", hdr.TotalSize())
	printInfo("  Version: %d (last compatible: %d)\n", hdr.Version(), hdr.LastCompVersion())
	printInfo("  Boot CPU: %d\n", hdr.BootCPUIDPhys())
	printInfo("  Structure block: offset %d, %d bytes\n", hdr.OffDTStruct(), hdr.SizeDTStruct())
	printInfo("  String block: offset %d, %d bytes\n", hdr.OffDTStrings(), hdr.SizeDTStrings())
	printInfo("  Memory rsvmap: offset %d\n", hdr.OffMemRsvmap())
	printInfo("  xxhash64: %016x\n", digest)

	if statsErr != nil {
		printInfo("\nStructure: INVALID (%v)\n", statsErr)
		return statsErr
	}
	printInfo("\nStructure:\n")
	printInfo("  Nodes: %d\n", stats.Nodes)
	printInfo("  Properties: %d\n", stats.Properties)
	printInfo("  Max depth: %d\n", stats.MaxDepth)

	return nil
}
