package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/memload/pkg/bundle"
	"github.com/bft-labs/memload/pkg/ingest"
	logAdapter "github.com/bft-labs/memload/pkg/log"
)

func newPackCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pack <dir>",
		Short: "Pack the assemblies in a directory into a bundle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bundle.PackDir(cmd.Context(), args[0], a.cfg.DomainID())
			if err != nil {
				return fmt.Errorf("pack %s: %w", args[0], err)
			}
			if len(b.Assemblies) == 0 {
				return fmt.Errorf("pack %s: no assemblies found", args[0])
			}

			raw := b.TotalBytes()
			if a.cfg.XALZ {
				if err := compressImages(b); err != nil {
					return err
				}
			}

			if err := bundle.WriteFile(out, b, a.cfg.BundleCompression()); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			a.logger.Info("bundle written",
				logAdapter.String("path", out),
				logAdapter.Domain(b.Domain),
				logAdapter.Int("assemblies", len(b.Assemblies)),
				logAdapter.Bytes("image_bytes", raw),
				logAdapter.Bytes("stored_bytes", b.TotalBytes()),
				logAdapter.String("compression", a.cfg.Compression),
				logAdapter.Bool("xalz", a.cfg.XALZ))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "assemblies.mlb", "bundle file to write")
	cmd.Flags().StringVar(&a.cfg.Compression, "compression", a.cfg.Compression, "bundle framing (none, zstd)")
	cmd.Flags().BoolVar(&a.cfg.XALZ, "xalz", a.cfg.XALZ, "store each image LZ4-compressed with an XALZ header")
	return cmd
}

// compressImages replaces every image that LZ4 can shrink with its XALZ
// form. The descriptor index is the image's position in the bundle.
func compressImages(b *bundle.Bundle) error {
	for i := range b.Assemblies {
		packed, err := ingest.CompressXALZ(b.Assemblies[i].Image, uint32(i))
		if errors.Is(err, ingest.ErrIncompressible) {
			continue
		}
		if err != nil {
			return fmt.Errorf("compress %s: %w", b.Assemblies[i].Name, err)
		}
		b.Assemblies[i].Image = packed
	}
	return nil
}
