// Command hdrsnap is the CLI entrypoint for the HDR-aware screen-capture
// core (§6 "Interface to host"). The tray/hotkey host, installer, and
// global keyboard hook that would normally trigger these operations are
// out of scope (§1); this command is the minimal stand-in a developer or
// script can invoke directly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdrsnap/hdrsnap/internal/config"
	"github.com/hdrsnap/hdrsnap/internal/logging"
)

var (
	version = "0.1.0"
	cfgFile string
)

var log = logging.L("main")

var rootCmd = &cobra.Command{
	Use:   "hdrsnap",
	Short: "HDR-aware Windows screen capture",
	Long: `hdrsnap captures the Windows desktop framebuffer in its native
format (SDR BGRA8 or HDR scRGB RGBA16F) and tone-maps it into a faithful
SDR PNG, instead of misreading an HDR desktop as if it were SDR.`,
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture the desktop, a region, or a window",
}

var captureFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Capture the entire virtual desktop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCapture(cmd, captureFull)
	},
}

var captureRegionCmd = &cobra.Command{
	Use:   "region",
	Short: "Capture a user-selected rectangle",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCapture(cmd, captureRegion)
	},
}

var captureWindowCmd = &cobra.Command{
	Use:   "window",
	Short: "Capture a user-picked window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCapture(cmd, captureWindow)
	},
}

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "Print the primary monitor's paper-white level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMonitors()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hdrsnap v%s\n", version)
	},
}

var (
	flagClipboard bool
	flagSaveDir   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is %APPDATA%/hdrsnap/config.yaml)")

	captureCmd.PersistentFlags().BoolVar(&flagClipboard, "clipboard", false, "copy the result to the clipboard instead of saving a file")
	captureCmd.PersistentFlags().StringVar(&flagSaveDir, "save-dir", "", "directory to save the PNG in (overrides config)")

	captureCmd.AddCommand(captureFullCmd, captureRegionCmd, captureWindowCmd)
	rootCmd.AddCommand(captureCmd, monitorsCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.LogFormat, cfg.LogLevel)
	if flagSaveDir != "" {
		cfg.SaveDirectory = flagSaveDir
	}
	return cfg, nil
}
