package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/memload/internal/adapters/peimage"
	"github.com/bft-labs/memload/internal/watcher"
	logAdapter "github.com/bft-labs/memload/pkg/log"
	"github.com/bft-labs/memload/pkg/memload"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <bundle>",
		Short: "Keep a bundle registered, re-registering it whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := memload.NewReflective(peimage.NewFacility(), a.registryOptions()...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watcher.New(args[0], reg,
				watcher.WithLogger(a.logger),
				watcher.WithDebounce(a.cfg.Debounce))

			runErr := w.Run(ctx)

			for _, id := range reg.Domains() {
				reg.Release(id)
			}
			if runErr == nil {
				a.logger.Info("stopped", logAdapter.String("path", args[0]))
			}
			return runErr
		},
	}

	cmd.Flags().DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "delay before re-registering a changed bundle")
	return cmd
}
