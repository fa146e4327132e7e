package cmd

import (
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/icecofin/internal/core/services"
	"github.com/kamal-hamza/icecofin/pkg/appdir"
)

// GetPreferredEditor returns the editor command from env or default
func GetPreferredEditor() string {
	if env := os.Getenv("VISUAL"); env != "" {
		return env
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vi"
}

// resolveConfigPath returns --config when given, otherwise the per-user location
func resolveConfigPath() (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	return appdir.ConfigPath()
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// newProgressFunc renders a byte progress bar on w while a file is hashed
func newProgressFunc(w io.Writer) services.ProgressFunc {
	return func(size int64, name string) io.Writer {
		if size <= 0 {
			return nil
		}
		return progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(name),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}
}
