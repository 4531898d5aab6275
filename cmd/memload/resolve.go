package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bft-labs/memload/internal/adapters/peimage"
	"github.com/bft-labs/memload/pkg/bundle"
	"github.com/bft-labs/memload/pkg/memload"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <bundle> <name>...",
		Short: "Register a bundle and resolve assemblies from it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bundle.ReadFile(args[0])
			if err != nil {
				return err
			}

			reg, err := memload.NewReflective(peimage.NewFacility(), a.registryOptions()...)
			if err != nil {
				return err
			}
			if err := reg.RegisterBundle(b); err != nil {
				return err
			}
			defer reg.Release(b.Domain)

			out := cmd.OutOrStdout()
			d := memload.DomainRef(b.Domain)

			var missing []string
			for _, name := range args[1:] {
				asm, found, err := reg.Resolve(d, memload.StaticName(name))
				if err != nil {
					return fmt.Errorf("resolve %s: %w", name, err)
				}
				if !found {
					missing = append(missing, name)
					fmt.Fprintf(out, "%s\tnot found\n", name)
					continue
				}
				native := asm.(*peimage.Assembly)
				fmt.Fprintf(out, "%s\tloaded #%d\t%d bytes\t%s\n", name, native.Seq, native.Size, native.Digest[:16])
			}

			if len(missing) > 0 {
				return fmt.Errorf("not in bundle: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}
