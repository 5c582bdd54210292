// Command marketpub validates, publishes and audits the market data artifact.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/verdantledger/marketpub/internal/adapters/driven/config/file"
	"github.com/verdantledger/marketpub/internal/adapters/driven/lock"
	"github.com/verdantledger/marketpub/internal/adapters/driven/remote"
	"github.com/verdantledger/marketpub/internal/adapters/driven/schema"
	storage "github.com/verdantledger/marketpub/internal/adapters/driven/storage/file"
	"github.com/verdantledger/marketpub/internal/adapters/driving/cli"
	"github.com/verdantledger/marketpub/internal/core/ports/driving"
	"github.com/verdantledger/marketpub/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	artifacts := storage.NewArtifactStore()
	archive := storage.NewArchiveReader()

	cli.SetServices(cli.Services{
		Publisher: services.NewPublisherService(
			schema.NewValidator(),
			storage.NewBackupManager(),
			artifacts,
			lock.NewFileLocker(),
		),
		Snapshot: services.NewSnapshotService(
			remote.NewFetcher(nil, "marketpub"),
			storage.NewSnapshotStore(),
		),
		Drift:   services.NewDriftService(archive),
		History: services.NewHistoryService(archive),
		Settings: func(configPath string) (driving.SettingsService, error) {
			store, err := file.NewConfigStore(configPath)
			if err != nil {
				return nil, err
			}
			return services.NewSettingsService(store), nil
		},
	})

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
