package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/icecofin/pkg/config"
	"github.com/kamal-hamza/icecofin/pkg/ui"
)

var (
	configForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active icecofin configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), appConfigPath)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	source := appConfigPath
	if _, err := os.Stat(appConfigPath); os.IsNotExist(err) {
		source = appConfigPath + " (not created, using defaults)"
	}

	fmt.Fprintln(out, ui.RenderKeyValue("Config", source))
	fmt.Fprintln(out)
	fmt.Fprint(out, ui.RenderKeyValues([]ui.KeyValue{
		{Key: "suffix", Value: appConfig.Suffix},
		{Key: "color_theme", Value: appConfig.ColorTheme},
		{Key: "copy_digest", Value: strconv.FormatBool(appConfig.CopyDigest)},
		{Key: "show_progress", Value: strconv.FormatBool(appConfig.ShowProgress)},
		{Key: "watch_debounce_ms", Value: strconv.Itoa(appConfig.WatchDebounceMS)},
		{Key: "log_level", Value: appConfig.LogLevel},
	}))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(appConfigPath); err == nil && !configForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", appConfigPath)
	}

	if err := config.DefaultConfig().Save(appConfigPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess("Config written: "+appConfigPath))
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(appConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found at %s (run 'icecofin config init')", appConfigPath)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatInfo("Opening config: "+appConfigPath))

	c := exec.Command(GetPreferredEditor(), appConfigPath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
