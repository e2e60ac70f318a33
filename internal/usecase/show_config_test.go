package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/makkah-counter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfigLoader struct {
	cfg     *domain.Config
	err     error
	sources []domain.ConfigInfo
}

func (s *stubConfigLoader) Load() (*domain.Config, error) { return s.cfg, s.err }

func (s *stubConfigLoader) Sources() []domain.ConfigInfo { return s.sources }

func TestShowConfig_Execute(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Hotel.Name = "Lahore Hotel"
	loader := &stubConfigLoader{
		cfg:     cfg,
		sources: []domain.ConfigInfo{{Path: "/home/u/.config/makkah-counter/config.toml", Exists: true}},
	}
	uc := NewShowConfig(loader)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Lahore Hotel", out.EffectiveConfig.Hotel.Name)
	assert.Equal(t, loader.sources, out.Sources)
}

func TestShowConfig_Execute_LoadError(t *testing.T) {
	loader := &stubConfigLoader{err: domain.ErrInvalidConfig}
	uc := NewShowConfig(loader)

	_, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "load config")
}
