package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

var (
	exportContent  string
	exportArtifact string
	exportBackups  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Validate and publish the market artifact",
	Long: `Validates the authored market content and publishes it as the JSON
artifact served by the website.

Every schema violation is reported at once and nothing is written when
any are found. Otherwise the current artifact is copied into the backup
directory, generated_at is set to the current time, and the artifact is
replaced. An advisory lock in the backup directory keeps concurrent
publishes apart.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportContent, "content", "", "authored content file (default from config)")
	exportCmd.Flags().StringVar(&exportArtifact, "artifact", "", "artifact to publish (default from config)")
	exportCmd.Flags().StringVar(&exportBackups, "backups", "", "backup directory (default: _backups beside the artifact)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if publisher == nil {
		return errors.New("publisher not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	req := domain.PublishRequest{
		ContentPath:  firstNonEmpty(exportContent, settings.Paths.Content),
		ArtifactPath: firstNonEmpty(exportArtifact, settings.Paths.Artifact),
		BackupDir:    firstNonEmpty(exportBackups, settings.Paths.Backups),
	}
	// A custom artifact without an explicit backup dir keeps backups beside it.
	if exportArtifact != "" && exportBackups == "" {
		req.BackupDir = domain.DefaultBackupDir(req.ArtifactPath)
	}

	result, err := publisher.Publish(commandContext(cmd), req)
	if err != nil {
		return contentError(cmd, req.ContentPath, err)
	}

	out := cmd.OutOrStdout()
	cmd.Printf("%s %s (generated_at %s)\n", styled(out, okStyle, "Published"), result.ArtifactPath, result.GeneratedAt)
	cmd.Printf("  kpis: %d, series: %d, refs: %d\n", result.KPIs, result.Series, result.Refs)
	if result.BackupPath != "" {
		cmd.Printf("  backup: %s\n", result.BackupPath)
	} else {
		cmd.Println("  backup: none (no previous artifact)")
	}
	return nil
}

// contentError prints a validation failure in full and returns a short
// error; other errors are returned as they are.
func contentError(cmd *cobra.Command, source string, err error) error {
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		return err
	}
	reportViolations(cmd.ErrOrStderr(), source, vErr)
	return fmt.Errorf("%s: %w", source, domain.ErrInvalidContent)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
