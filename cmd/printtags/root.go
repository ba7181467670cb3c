package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/simonhull/fileref"
	"github.com/simonhull/fileref/host"
)

func newRootCmd(info fileref.VersionInfo) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Version:           info.Version,
		Use:               "printtags FILE...",
		Short:             "Print the tags of audio files",
		Long:              "Print the tags of audio files, one KEY = value line per tag value.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger, args)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}} (commit %s, %s)\n",
		info.GitCommit, info.GoVersion))

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log why a file could not be opened")

	return rootCmd
}

func run(ctx context.Context, stdout, stderr io.Writer, logger *slog.Logger, paths []string) error {
	objs := make([]host.Object, len(paths))
	for i, path := range paths {
		objs[i] = host.NewStr(path)
	}

	b := fileref.New(host.Default(), fileref.WithLogger(logger))
	refs, err := b.MakeMany(ctx, objs...)
	if err != nil {
		return err
	}
	defer func() {
		for _, ref := range refs {
			if ref != nil {
				ref.Close()
			}
		}
	}()

	failed := 0
	printed := 0
	for i, ref := range refs {
		if ref == nil {
			_, _ = fmt.Fprintf(stderr, "printtags: cannot open %s\n", paths[i])
			failed++
			continue
		}

		if len(paths) > 1 {
			if printed > 0 {
				_, _ = fmt.Fprintln(stdout)
			}
			_, _ = fmt.Fprintf(stdout, "==> %s <==\n", paths[i])
		}
		if err := printTags(stdout, ref); err != nil {
			return err
		}
		printed++
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be opened", failed, len(paths))
	}
	return nil
}

// printTags writes every tag value of ref, keys sorted and padded to the
// longest key.
func printTags(w io.Writer, ref *fileref.FileRef) error {
	file, err := ref.File()
	if err != nil {
		return err
	}

	tags := maps.Collect(file.Tags.All())
	keys := slices.Sorted(maps.Keys(tags))

	width := 0
	for _, key := range keys {
		width = max(width, utf8.RuneCountInString(key))
	}

	for _, key := range keys {
		for _, value := range tags[key] {
			if _, err := fmt.Fprintf(w, "%-*s = %s\n", width, key, value); err != nil {
				return err
			}
		}
	}
	return nil
}
