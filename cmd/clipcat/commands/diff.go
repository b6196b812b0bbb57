package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/clipcat/cmd/clipcat/opts"
	"github.com/walteh/clipcat/pkg/gitdiff"
	"gitlab.com/tozd/go/errors"
)

// NewDiffCmd creates the diff command: capture git diff, copy it
func NewDiffCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		staged  bool
		cached  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Copy the output of git diff to the clipboard",
		Long: `Diff runs git diff in the current directory with the pager disabled
and copies the output to the clipboard. With --staged (or --cached) only
changes already added to the index are captured. When there are no changes
nothing is written to the clipboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "diff").Logger().WithContext(cmd.Context())

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Errorf("getting working directory: %w", err)
			}

			if !gitdiff.IsRepository(ctx, cwd) {
				return errors.New("not a git repository")
			}

			staged = staged || cached

			out, err := gitdiff.Capture(ctx, cwd, staged)
			if err != nil {
				return errors.Errorf("capturing diff: %w", err)
			}

			if strings.TrimSpace(out) == "" {
				opts.UserLog.Info("No changes found.")
				return nil
			}

			if verbose {
				fmt.Fprint(cmd.OutOrStdout(), out)
			}

			if err := opts.Clipboard.Copy(ctx, out); err != nil {
				return errors.Errorf("copying to clipboard: %w", err)
			}

			label := "git diff"
			if staged {
				label = "git diff --cached"
			}
			opts.UserLog.Copied(fmt.Sprintf("Copied `%s` to clipboard.", label))
			return nil
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "capture staged (cached) changes only")
	cmd.Flags().BoolVar(&cached, "cached", false, "alias for --staged")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the diff to stdout")

	return cmd
}
