package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/icecofin/internal/adapters/filetimes"
	"github.com/kamal-hamza/icecofin/internal/adapters/repository"
	"github.com/kamal-hamza/icecofin/internal/core/services"
	"github.com/kamal-hamza/icecofin/pkg/config"
	"github.com/kamal-hamza/icecofin/pkg/ui"
)

const unavailableNote = "Decompression unavailable until year ~10^24."

var (
	appConfig      *config.Config
	appConfigPath  string
	appLogger      *slog.Logger
	descriptorRepo *repository.JSONDescriptorRepository

	// Services
	freezeService  *services.FreezeService
	watchService   *services.WatchService
	inspectService *services.InspectService

	// Flags
	outputPath   string
	copyDigest   bool
	showProgress bool
	verbose      bool
	configFlag   string
)

// rootCmd freezes a single file when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "icecofin [file]",
	Short: "ICE COFIN - Irreversible Compression Engine",
	Long: ui.StyleTitle.Render("ICE COFIN") + " - Irreversible Compression Engine\n\n" +
		"Freezes a file into a small JSON descriptor: its name, size, timestamps,\n" +
		"the first 512 bits and a SHA-512 digest. The original is left untouched\n" +
		"and nothing can be reconstructed from the descriptor.\n\n" +
		"Examples:\n" +
		"  icecofin notes.txt              # writes notes.txt.icecofin\n" +
		"  icecofin report.pdf -o r.json   # writes r.json\n\n" +
		"A file named like a subcommand (config, watch, inspect, version, help,\n" +
		"completion) is frozen with \"icecofin -- config\" or \"icecofin ./config\".",
	Args:              cobra.ExactArgs(1),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
	RunE:              runFreeze,
}

// Execute runs the root command and exits with its status
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps any error to "Error: <message>" and status 1
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args on a nil slice
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output descriptor path (default: <file>.icecofin)")
	rootCmd.Flags().BoolVar(&copyDigest, "copy", false, "Copy the SHA-512 digest to the clipboard")
	rootCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar while hashing")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file path")
}

// initializeApp loads config and wires repositories and services
func initializeApp(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	// Only the config commands need a location; a freeze runs on defaults without one
	path, pathErr := resolveConfigPath()
	if pathErr != nil && isConfigCommand(cmd) {
		return pathErr
	}
	appConfigPath = path

	if pathErr == nil {
		// The config commands keep defaults so a broken file can be repaired
		loaded, err := config.Load(path)
		switch {
		case err == nil:
			cfg = loaded
		case !isConfigCommand(cmd):
			return err
		}
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	appLogger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(appLogger)

	if pathErr != nil {
		appLogger.Debug("config location unavailable, using defaults", "error", pathErr)
	}

	// Initialize repositories
	descriptorRepo = repository.NewJSONDescriptorRepository()
	times := filetimes.New(appLogger)

	// Initialize services
	opts := []services.FreezeOption{
		services.WithSuffix(cfg.Suffix),
		services.WithLogger(appLogger),
	}
	if showProgress || cfg.ShowProgress {
		opts = append(opts, services.WithProgress(newProgressFunc(cmd.ErrOrStderr())))
	}

	freezeService = services.NewFreezeService(descriptorRepo, times, opts...)
	watchService = services.NewWatchService(freezeService, appLogger)
	inspectService = services.NewInspectService(descriptorRepo, descriptorRepo, cfg.Suffix)

	return nil
}

func runFreeze(cmd *cobra.Command, args []string) error {
	req := services.FreezeRequest{
		Source:      args[0],
		Destination: outputPath,
	}

	resp, err := freezeService.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.For(out, ui.StyleSuccess).Render("Frozen → "+resp.Destination))
	fmt.Fprintln(out, ui.For(out, ui.StyleMuted).Render(unavailableNote))

	// Clipboard is best effort and never changes the exit status
	if copyDigest || appConfig.CopyDigest {
		if err := clipboard.WriteAll(resp.Descriptor.DigestHex); err != nil {
			appLogger.Debug("clipboard write failed", "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatMuted("(Clipboard access failed, digest not copied)"))
		}
	}

	return nil
}
