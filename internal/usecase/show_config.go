package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/makkah-counter/internal/domain"
)

// ShowConfigOutput contains the result of showing configuration.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config      // Merged configuration
	Sources         []domain.ConfigInfo // Files consulted, in merge order
}

// ShowConfig is the use case for displaying the effective configuration.
type ShowConfig struct {
	loader domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{loader: loader}
}

// Execute loads the configuration and reports where it came from.
func (uc *ShowConfig) Execute(_ context.Context) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &ShowConfigOutput{
		EffectiveConfig: cfg,
		Sources:         uc.loader.Sources(),
	}, nil
}
