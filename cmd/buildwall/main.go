package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/buildwall/internal/build"
	"github.com/justinpbarnett/buildwall/internal/config"
	"github.com/justinpbarnett/buildwall/internal/settings"
	"github.com/justinpbarnett/buildwall/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	demoSeed   uint64
)

var rootCmd = &cobra.Command{
	Use:   "buildwall",
	Short: "buildwall - a terminal wall of CI build statuses",
	Long: `buildwall shows the latest CI builds as a grid of tiles, newest first.
Click or press Enter on a tile to focus it; Esc goes back to all builds.

Builds come from a snapshot file (YAML or JSON) that your CI tooling keeps
up to date, or from a built-in demo feed.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWall()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./buildwall.yaml, then ~/.config/buildwall/config.yaml)")
	rootCmd.Flags().Uint64Var(&demoSeed, "seed", 0, "seed for the demo source (0 picks one from the clock)")
	rootCmd.AddCommand(versionCmd, updateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func newSource(cfg *config.Config) build.Source {
	if cfg.Source.Kind == config.SourceFile {
		return build.NewFileSource(cfg.Source.Path)
	}
	seed := demoSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return build.NewDemoSource(seed, nil)
}

func runWall() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if path := os.Getenv("BUILDWALL_LOG"); path != "" {
		f, err := tea.LogToFile(path, "buildwall")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	settingsPath, err := cfg.ResolveSettingsPath()
	if err != nil {
		log.Printf("warning: %v (settings will not be saved)", err)
		settingsPath = ""
	}
	prefs := settings.Open(settingsPath)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(ui.NewApp(cfg, newSource(cfg), prefs), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
