package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/icecofin/internal/core/services"
	"github.com/kamal-hamza/icecofin/pkg/ui"
)

var (
	watchQuiet bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [file...]",
	Short: "Re-freeze files whenever they change",
	Long: `Freeze each file once, then keep its descriptor up to date.

The parent directory of every file is watched, so editors that save by
writing a temporary file and renaming it are picked up too. Bursts of
changes are debounced (watch_debounce_ms in the config, default 500ms).

Use --quiet to only report failures.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Only report failures")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if !watchQuiet {
		fmt.Fprintln(out, ui.FormatFreeze(fmt.Sprintf("Watching %d file(s)...", len(args))))
		fmt.Fprintln(out, ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Fprintln(out)
	}

	req := services.WatchRequest{
		Sources:  args,
		Debounce: time.Duration(appConfig.WatchDebounceMS) * time.Millisecond,
	}

	err := watchService.Watch(ctx, req, func(ev services.WatchEvent) {
		if ev.Err != nil {
			fmt.Fprintln(errOut, ui.FormatError(ev.Err.Error()))
			return
		}
		if !watchQuiet {
			fmt.Fprintln(out, ui.FormatSuccess("Frozen → "+ev.Response.Destination))
		}
	})
	if err != nil {
		return err
	}

	if !watchQuiet {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.FormatMuted("Watcher stopped"))
	}
	return nil
}
