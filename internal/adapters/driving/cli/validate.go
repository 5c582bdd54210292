package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/verdantledger/marketpub/internal/logger"
)

var (
	validateContent string
	validateWatch   bool
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the authored content without publishing",
	Long: `Validates the authored market content and reports every schema
violation. Nothing is written.

With --watch the content file is re-validated each time it changes until
the command is interrupted.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateContent, "content", "", "authored content file (default from config)")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false, "re-validate whenever the file changes")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if publisher == nil {
		return errors.New("publisher not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	path := firstNonEmpty(validateContent, settings.Paths.Content)
	ctx := commandContext(cmd)

	if !validateWatch {
		return checkContent(ctx, cmd, path)
	}

	report := func() {
		if err := checkContent(ctx, cmd, path); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	}
	report()
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", path)
	return watchFile(ctx, path, report)
}

func checkContent(ctx context.Context, cmd *cobra.Command, path string) error {
	content, err := publisher.Check(ctx, path)
	if err != nil {
		return contentError(cmd, path, err)
	}
	cmd.Printf("%s %s (%d kpis, %d series, %d refs)\n",
		styled(cmd.OutOrStdout(), okStyle, "Valid"), path,
		len(content.KPIs), len(content.Series), len(content.Refs))
	return nil
}

// watchFile calls onChange after path is written, created or renamed into
// place, until ctx is done. The parent directory is watched so editors that
// save by replacing the file are still seen.
func watchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debug("Change detected: %s", event)
				debounce = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		case <-debounce:
			debounce = nil
			onChange()
		}
	}
}
