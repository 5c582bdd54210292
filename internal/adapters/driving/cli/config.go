package cli

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved settings",
	Long: `Prints the paths and snapshot settings this project resolves to,
after applying the config file over the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	if settings.Source != "" {
		cmd.Printf("Config file: %s\n", settings.Source)
	} else {
		cmd.Println("Config file: none (defaults)")
	}
	cmd.Println()

	cmd.Println("[Paths]")
	cmd.Printf("  Content:   %s\n", settings.Paths.Content)
	cmd.Printf("  Artifact:  %s\n", settings.Paths.Artifact)
	cmd.Printf("  Backups:   %s\n", settings.Paths.Backups)
	cmd.Printf("  Snapshots: %s\n", settings.Paths.Snapshots)
	cmd.Println()

	cmd.Println("[Snapshot]")
	cmd.Printf("  Base URL:      %s\n", settings.Snapshot.BaseURL)
	if env, ok := lookupEnv(BaseURLEnv); ok && env != "" {
		cmd.Printf("                 (overridden by $%s=%s)\n", BaseURLEnv, env)
	}
	cmd.Printf("  Resource path: %s\n", settings.Snapshot.ResourcePath)
	return nil
}
