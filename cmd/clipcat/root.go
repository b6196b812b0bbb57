package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/clipcat/cmd/clipcat/commands"
	"github.com/walteh/clipcat/cmd/clipcat/opts"
	"github.com/walteh/clipcat/pkg/clipboard"
	"github.com/walteh/clipcat/pkg/config"
	"github.com/walteh/clipcat/pkg/userlog"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	return &opts.RootOpts{
		Config:    cfg,
		Clipboard: clipboard.NewSystem(),
		UserLog:   userlog.New(*zerolog.Ctx(ctx)),
	}, nil
}

// newRootCmd wires the root command, shared flags and subcommands
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "clipcat",
		Short: "Copy file trees and git diffs to the clipboard",
		// main reports failures through userlog; cobra stays quiet.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := zerolog.DefaultContextLogger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			built, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			*rootOpts = *built
			return nil
		},
	}

	addRootFlags(cmd)

	cmd.AddCommand(commands.NewFilesCmd(rootOpts))
	cmd.AddCommand(commands.NewDiffCmd(rootOpts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".clipcat.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// newVersionCmd prints build information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), FormatVersion())
			return nil
		},
	}
}
