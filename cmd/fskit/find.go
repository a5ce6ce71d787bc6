package main

import (
	"fmt"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fskit/pkg/fskit"
	"github.com/arthur-debert/fskit/pkg/fskit/filesystem"
	"github.com/arthur-debert/fskit/pkg/fskit/filter"
)

type findOptions struct {
	names      []string
	prefixes   []string
	suffixes   []string
	globs      []string
	regex      string
	minSize    string
	maxSize    string
	entryType  string
	hiddenOnly bool
	noHidden   bool
	ignoreFile string
	long       bool
}

func newFindCommand() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find [root]",
		Short: "Walk a tree and print the entries all filters accept",
		Long: `Find walks the tree rooted at the given directory (default ".") and
prints every entry the combined filters accept, one path per line
relative to the root. With no filter flags, every entry is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			logger := fskit.NewLogger(os.Stderr, fskit.VerbosityLevel(verbosity))

			composite, err := buildFilter(opts)
			if err != nil {
				return err
			}
			logger.Debug().Str("root", root).Stringer("filter", composite).Msg("walking")

			matches, err := fskit.Find(root, composite)
			if err != nil {
				return fmt.Errorf("find failed: %w", err)
			}
			logger.Info().Int("matches", len(matches)).Msg("walk finished")

			fsys := filesystem.NewOSFileSystem(root)
			out := cmd.OutOrStdout()
			for _, match := range matches {
				if opts.long {
					info, err := fsys.Stat(match)
					if err != nil {
						return fmt.Errorf("stat %s: %w", match, err)
					}
					fmt.Fprintf(out, "%s\t%s\n", humanize.Bytes(uint64(info.Size())), match)
				} else {
					fmt.Fprintln(out, match)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&opts.names, "name", nil, "match an exact base name (repeatable)")
	cmd.Flags().StringSliceVar(&opts.prefixes, "prefix", nil, "match a base name prefix (repeatable)")
	cmd.Flags().StringSliceVar(&opts.suffixes, "suffix", nil, "match a base name suffix (repeatable)")
	cmd.Flags().StringSliceVar(&opts.globs, "glob", nil, "match a doublestar glob (repeatable)")
	cmd.Flags().StringVar(&opts.regex, "regex", "", "match paths against a regular expression")
	cmd.Flags().StringVar(&opts.minSize, "min-size", "", "minimum size, e.g. 10K or 1.5MiB")
	cmd.Flags().StringVar(&opts.maxSize, "max-size", "", "maximum size, e.g. 1MB")
	cmd.Flags().StringVarP(&opts.entryType, "type", "t", "", "entry type: f for files, d for directories")
	cmd.Flags().BoolVar(&opts.hiddenOnly, "hidden", false, "match only hidden entries")
	cmd.Flags().BoolVar(&opts.noHidden, "no-hidden", false, "skip hidden entries and their subtrees")
	cmd.Flags().StringVar(&opts.ignoreFile, "ignore-file", "", "exclude entries a gitignore-style file ignores")
	cmd.Flags().BoolVarP(&opts.long, "long", "l", false, "print sizes alongside paths")

	return cmd
}

// buildFilter translates the command's flags into one composite filter.
// An empty composite matches nothing, so a run with no filter flags seeds
// the list with True to mean everything.
func buildFilter(opts *findOptions) (*filter.And, error) {
	var filters []filter.Filter

	// Cheap structural checks go first, gitignore matching last.
	if opts.noHidden {
		filters = append(filters, filter.SkipHidden)
	}
	if opts.hiddenOnly {
		filters = append(filters, filter.Hidden)
	}
	if len(opts.names) > 0 {
		filters = append(filters, filter.Name(opts.names...))
	}
	if len(opts.prefixes) > 0 {
		filters = append(filters, filter.Prefix(opts.prefixes...))
	}
	if len(opts.suffixes) > 0 {
		filters = append(filters, filter.Suffix(opts.suffixes...))
	}
	if len(opts.globs) > 0 {
		globs, err := filter.Glob(opts.globs...)
		if err != nil {
			return nil, err
		}
		filters = append(filters, globs)
	}
	if opts.regex != "" {
		regex, err := filter.Regex(opts.regex)
		if err != nil {
			return nil, err
		}
		filters = append(filters, regex)
	}
	switch opts.entryType {
	case "":
	case "f":
		filters = append(filters, filter.Files)
	case "d":
		filters = append(filters, filter.Dirs)
	default:
		return nil, fmt.Errorf("unknown entry type %q: want f or d", opts.entryType)
	}
	if opts.minSize != "" || opts.maxSize != "" {
		minBytes, maxBytes, err := parseSizeRange(opts.minSize, opts.maxSize)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter.Size(minBytes, maxBytes))
	}
	if opts.ignoreFile != "" {
		ignore, err := filter.NewIgnoreFile(opts.ignoreFile)
		if err != nil {
			return nil, err
		}
		filters = append(filters, ignore)
	}

	if len(filters) == 0 {
		filters = append(filters, filter.True)
	}
	return filter.AndOf(filters), nil
}

// parseSizeRange reads human-readable sizes like 64K, 1.5MB or 2GiB. An
// empty maximum leaves the range unbounded above. Sizes beyond the int64
// range are rejected.
func parseSizeRange(minStr, maxStr string) (int64, int64, error) {
	minBytes := int64(0)
	maxBytes := int64(-1)
	if minStr != "" {
		n, err := humanize.ParseBytes(minStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid minimum size %q: %w", minStr, err)
		}
		if n > math.MaxInt64 {
			return 0, 0, fmt.Errorf("minimum size %q exceeds the supported range", minStr)
		}
		minBytes = int64(n)
	}
	if maxStr != "" {
		n, err := humanize.ParseBytes(maxStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid maximum size %q: %w", maxStr, err)
		}
		if n > math.MaxInt64 {
			return 0, 0, fmt.Errorf("maximum size %q exceeds the supported range", maxStr)
		}
		maxBytes = int64(n)
	}
	if maxBytes >= 0 && minBytes > maxBytes {
		return 0, 0, fmt.Errorf("minimum size %s exceeds maximum %s", minStr, maxStr)
	}
	return minBytes, maxBytes, nil
}
