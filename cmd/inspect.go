package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/icecofin/internal/core/domain"
	"github.com/kamal-hamza/icecofin/pkg/ui"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect [descriptor]",
	Aliases: []string{"show"},
	Short:   "Display the contents of a descriptor",
	Long: `Display a descriptor written by icecofin.

Without an argument, descriptors in the current directory are offered in
a fuzzy finder. The source file is not read again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		paths, err := inspectService.Candidates(ctx, ".")
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintln(out, ui.FormatWarning("No descriptors found in the current directory."))
			return nil
		}

		idx, err := fuzzyfinder.Find(
			paths,
			func(i int) string { return filepath.Base(paths[i]) },
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				d, err := inspectService.Load(ctx, paths[i])
				if err != nil {
					return err.Error()
				}
				return fmt.Sprintf("File: %s\nSize: %d bytes\nModified: %s\n\nSHA-512:\n%s",
					d.OriginalFilename, d.OriginalSizeBytes, d.ModifiedTime, d.DigestHex)
			}),
		)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			return err
		}
		path = paths[idx]
	}

	d, err := inspectService.Load(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.FormatTitle(path))
	fmt.Fprintln(out)
	fmt.Fprint(out, ui.RenderKeyValues(descriptorRows(d)))
	return nil
}

// descriptorRows lists the fields in serialized order
func descriptorRows(d *domain.Descriptor) []ui.KeyValue {
	return []ui.KeyValue{
		{Key: "version", Value: d.Version},
		{Key: "original_filename", Value: d.OriginalFilename},
		{Key: "original_size_bytes", Value: strconv.FormatInt(d.OriginalSizeBytes, 10)},
		{Key: "file_extension", Value: d.FileExtension},
		{Key: "created_time", Value: d.CreatedTime},
		{Key: "modified_time", Value: d.ModifiedTime},
		{Key: "header_hex", Value: d.HeaderHex},
		{Key: "digest_hex", Value: d.DigestHex},
		{Key: "note", Value: d.Note},
	}
}
