package driving

import "github.com/verdantledger/marketpub/internal/core/domain"

// SettingsService resolves project settings.
type SettingsService interface {
	// Get retrieves the resolved pipeline settings.
	Get() (*domain.PipelineSettings, error)
}
