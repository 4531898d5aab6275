package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bft-labs/memload/pkg/bundle"
	"github.com/bft-labs/memload/pkg/ingest"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <bundle>",
		Short: "List the assemblies stored in a bundle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bundle.ReadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "domain %d, %d assemblies, %d bytes\n\n", b.Domain, len(b.Assemblies), b.TotalBytes())

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSTORED\tIMAGE\tXALZ\tDIGEST")
			for _, asm := range b.Assemblies {
				size := len(asm.Image)
				xalz := "-"
				if hdr, err := ingest.ParseXALZHeader(asm.Image); err == nil {
					size = int(hdr.UncompressedLength)
					xalz = fmt.Sprintf("#%d", hdr.DescriptorIndex)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
					asm.Name, len(asm.Image), size, xalz, bundle.ShortDigest(asm.Image))
			}
			return tw.Flush()
		},
	}
}
