package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/clipcat/cmd/clipcat/opts"
	"github.com/walteh/clipcat/pkg/collect"
	"github.com/walteh/clipcat/pkg/filter"
	"github.com/walteh/clipcat/pkg/render"
	"gitlab.com/tozd/go/errors"
)

// NewFilesCmd creates the files command: walk, filter, concatenate, copy
func NewFilesCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		recursive  bool
		includes   []string
		excludes   []string
		extensions []string
		preview    bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "files [directory]",
		Short: "Concatenate matching files and copy them to the clipboard",
		Long: `Files walks a directory (recursively with -r), filters files by
basename globs (-f), exclude patterns (-x) and extensions (-e), and copies
the concatenated contents to the clipboard. Each file is prefixed with its
relative path; files are separated by a blank line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "files").Logger().WithContext(cmd.Context())

			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			baseDir, err := filepath.Abs(dir)
			if err != nil {
				return errors.Errorf("resolving directory: %w", err)
			}

			// Config supplies defaults; flags win where both are set.
			// Excludes accumulate so a config-level ignore list always holds.
			cfg := opts.Config
			if len(includes) == 0 {
				includes = cfg.Include
			}
			if len(extensions) == 0 {
				extensions = cfg.Extensions
			}
			excludes = append(excludes, cfg.Exclude...)
			recursive = recursive || cfg.Recursive
			verbose = verbose || cfg.Verbose

			f, err := filter.New(filter.Options{
				Includes:   includes,
				Excludes:   excludes,
				Extensions: extensions,
			})
			if err != nil {
				return errors.Errorf("building filter: %w", err)
			}

			paths, err := collect.Files(ctx, baseDir, collect.Options{
				Recursive: recursive,
				Filter:    f,
			})
			if err != nil {
				return errors.Errorf("collecting files: %w", err)
			}

			if preview {
				opts.UserLog.Matches(paths)
				return nil
			}

			doc := render.Document(ctx, baseDir, paths)

			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), doc)
			}

			if err := opts.Clipboard.Copy(ctx, doc); err != nil {
				return errors.Errorf("copying to clipboard: %w", err)
			}

			opts.UserLog.Copied(fmt.Sprintf("Copied %d file(s) (%d bytes) to clipboard.", len(paths), len(doc)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recursively search subdirectories")
	cmd.Flags().StringArrayVarP(&includes, "file", "f", nil, "include glob patterns matched against basenames (e.g. *.go)")
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "x", nil, "exclude glob patterns or directory names (e.g. node_modules)")
	cmd.Flags().StringArrayVarP(&extensions, "extension", "e", nil, "include files by extension (e.g. .go)")
	cmd.Flags().BoolVar(&preview, "preview", false, "only print the list of matched files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the assembled output to stdout")

	return cmd
}
