package testutil

import (
	"github.com/akyairhashvil/countdown/internal/models"
)

// ConfigBuilder provides fluent API for creating test configurations.
type ConfigBuilder struct {
	cfg models.Config
}

func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: models.Config{
			Name:     "Test",
			Password: "1000",
		},
	}
}

func (b *ConfigBuilder) WithName(name string) *ConfigBuilder {
	b.cfg.Name = name
	return b
}

func (b *ConfigBuilder) WithCountdown(name, date string) *ConfigBuilder {
	b.cfg.Countdowns = append(b.cfg.Countdowns, models.Countdown{Name: name, Date: date})
	return b
}

func (b *ConfigBuilder) WithEncouragements(texts ...string) *ConfigBuilder {
	b.cfg.Encouragements = append(b.cfg.Encouragements, texts...)
	return b
}

func (b *ConfigBuilder) WithStartIndex(i int) *ConfigBuilder {
	b.cfg.StartCountdownIndex = i
	return b
}

func (b *ConfigBuilder) WithPassword(p string) *ConfigBuilder {
	b.cfg.Password = p
	return b
}

func (b *ConfigBuilder) Build() models.Config {
	return b.cfg.Clone()
}
