// Package cli implements the marketpub command line.
//
// Commands are package-level cobra commands registered in init. Services
// are injected once by main through SetServices; tests replace the
// package variables directly.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driving"
	"github.com/verdantledger/marketpub/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Injected services.
var (
	publisher       driving.Publisher
	snapshotService driving.SnapshotService
	driftService    driving.DriftService
	historyService  driving.HistoryService
	settingsService driving.SettingsService

	// settingsLoader builds the settings service once --config is known.
	settingsLoader func(configPath string) (driving.SettingsService, error)
)

// Persistent flags.
var (
	verbose    bool
	configPath string
)

// DefaultConfigPath is the project config file read when --config is not given.
const DefaultConfigPath = "marketpub.toml"

// Services bundles everything the commands depend on.
type Services struct {
	Publisher driving.Publisher
	Snapshot  driving.SnapshotService
	Drift     driving.DriftService
	History   driving.HistoryService
	// Settings loads settings from the config file named by --config.
	Settings func(configPath string) (driving.SettingsService, error)
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	publisher = s.Publisher
	snapshotService = s.Snapshot
	driftService = s.Drift
	historyService = s.History
	settingsLoader = s.Settings
}

var rootCmd = &cobra.Command{
	Use:   "marketpub",
	Short: "Validate, publish and audit the market data artifact",
	Long: `marketpub validates hand-authored market content, stamps it with a
generation time and publishes it as the JSON artifact the website fetches.
The previous artifact is always backed up first.

It can also snapshot what the live site is serving and compare that
snapshot with the published artifact.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline steps to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", DefaultConfigPath, "project config file (TOML, optional)")
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if settingsLoader == nil {
		return nil
	}
	svc, err := settingsLoader(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	settingsService = svc
	logger.Debug("Loaded config from %s", configPath)
	return nil
}

// Execute runs the root command and prints any error to stderr.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

// loadSettings returns the resolved settings for this invocation.
func loadSettings() (*domain.PipelineSettings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// commandContext returns the command's context, or Background when run
// without one (as in tests calling Execute directly).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
