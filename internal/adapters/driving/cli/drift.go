package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

// errDrift is returned by --fail-on-drift when the artifact and snapshot differ.
var errDrift = errors.New("published artifact differs from the latest snapshot")

var (
	driftIncludeGeneratedAt bool
	driftFailOnDrift        bool
)

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Compare the published artifact with the latest snapshot",
	Long: `Diffs the published artifact against the newest snapshot of the live
site. Lines starting with "-" are only in the artifact, lines starting
with "+" only in the snapshot. generated_at is ignored unless
--include-generated-at is set. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runDrift,
}

func init() {
	driftCmd.Flags().BoolVar(&driftIncludeGeneratedAt, "include-generated-at", false, "also compare generated_at")
	driftCmd.Flags().BoolVar(&driftFailOnDrift, "fail-on-drift", false, "exit non-zero when differences are found")
	rootCmd.AddCommand(driftCmd)
}

func runDrift(cmd *cobra.Command, _ []string) error {
	if driftService == nil {
		return errors.New("drift service not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	report, err := driftService.Compare(commandContext(cmd), domain.DriftRequest{
		ArtifactPath:       settings.Paths.Artifact,
		SnapshotDir:        settings.Paths.Snapshots,
		IncludeGeneratedAt: driftIncludeGeneratedAt,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if report.InSync() {
		cmd.Printf("%s %s matches %s\n", styled(out, okStyle, "In sync:"), report.ArtifactPath, report.SnapshotPath)
		return nil
	}

	cmd.Printf("Drift between %s (-) and %s (+):\n", report.ArtifactPath, report.SnapshotPath)
	cmd.Print(colorDiff(out, report.Diff))
	if driftFailOnDrift {
		return errDrift
	}
	return nil
}
