package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:       "history backups|snapshots",
	Short:     "List retained backups or snapshots",
	Long:      `Lists backup or snapshot files, newest first. Nothing is ever pruned.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(domain.ArchiveBackups), string(domain.ArchiveSnapshots)},
	RunE:      runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most n entries (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	kind, err := domain.ParseArchiveKind(args[0])
	if err != nil {
		return err
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	dir := settings.Paths.Backups
	if kind == domain.ArchiveSnapshots {
		dir = settings.Paths.Snapshots
	}

	entries, err := historyService.List(commandContext(cmd), dir, kind)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", kind, err)
	}
	if len(entries) == 0 {
		cmd.Printf("No %s in %s\n", kind, dir)
		return nil
	}
	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TAKEN", "SIZE", "FILE")
	for _, e := range entries {
		t.Row(domain.Timestamp(e.Taken), strconv.FormatInt(e.Size, 10), e.Name)
	}
	cmd.Println(t.Render())
	cmd.Printf("%d %s in %s\n", len(entries), kind, dir)
	return nil
}
