package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

// listOutputs returns the STL files under dir grouped by variant folder, sorted.
func listOutputs(dir string) (map[string][]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	groups := make(map[string][]string)
	for _, m := range matches {
		variant, file, ok := strings.Cut(m, "/")
		if !ok {
			variant, file = ".", m
		}
		groups[variant] = append(groups[variant], file)
	}
	for _, files := range groups {
		sort.Strings(files)
	}
	return groups, nil
}

func newListCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List generated STL files per instrument",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := o.cfg.OutputDir
			if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(o.out, "No output in %s\n", dir)
				return nil
			}

			groups, err := listOutputs(dir)
			if err != nil {
				return err
			}

			variants := make([]string, 0, len(groups))
			for v := range groups {
				variants = append(variants, v)
			}
			sort.Strings(variants)

			for _, v := range variants {
				fmt.Fprintf(o.out, "%s (%d files)\n", v, len(groups[v]))
				for _, f := range groups[v] {
					fmt.Fprintf(o.out, "  %s\n", path.Join(v, f))
				}
			}
			return nil
		},
	}
}
