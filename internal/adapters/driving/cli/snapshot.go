package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

// BaseURLEnv names the environment variable holding the live site's base URL.
const BaseURLEnv = "SNAPSHOT_BASE_URL"

// lookupEnv is swapped in tests.
var lookupEnv = os.LookupEnv

var (
	snapshotBaseURL  string
	snapshotResource string
	snapshotDir      string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save a dated copy of what the live site serves",
	Long: `Fetches the market resource from the live site once, with caching
disabled, and saves the response pretty-printed under the snapshot
directory. Existing snapshots are never touched.

The base URL is taken from --base-url, then $` + BaseURLEnv + `, then
snapshot.base_url in the config file, and finally defaults to
` + domain.DefaultBaseURL + `.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotBaseURL, "base-url", "", "live site base URL")
	snapshotCmd.Flags().StringVar(&snapshotResource, "resource", "", "resource path on the live site (default "+domain.DefaultResourcePath+")")
	snapshotCmd.Flags().StringVar(&snapshotDir, "dir", "", "snapshot directory (default from config)")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	envURL, _ := lookupEnv(BaseURLEnv)
	cfg := domain.SnapshotConfig{
		BaseURL:      firstNonEmpty(snapshotBaseURL, envURL, settings.Snapshot.BaseURL),
		ResourcePath: firstNonEmpty(snapshotResource, settings.Snapshot.ResourcePath),
		SnapshotDir:  firstNonEmpty(snapshotDir, settings.Paths.Snapshots),
	}

	result, err := snapshotService.Capture(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	cmd.Printf("%s %s\n", styled(cmd.OutOrStdout(), okStyle, "Saved snapshot"), result.Path)
	cmd.Printf("  from: %s (%d bytes)\n", result.URL, result.Bytes)
	return nil
}
