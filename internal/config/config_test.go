package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "https://rapifix.com.ar", cfg.SiteURL)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSize)
}

func TestApplyDefaults_UploadTypes(t *testing.T) {
	t.Parallel()

	var cfg Config
	applyDefaults(&cfg)

	// gif принимается только в галерее работ, аватар - нет.
	assert.Contains(t, cfg.Upload.AllowedTypes, "image/gif")
	assert.NotContains(t, cfg.Upload.AvatarAllowedTypes, "image/gif")
	assert.ElementsMatch(t,
		[]string{"image/jpeg", "image/png", "image/webp"},
		cfg.Upload.AvatarAllowedTypes,
	)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.Server.Port = 8080
	cfg.Upload.AvatarAllowedTypes = []string{"image/png"}
	applyDefaults(&cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"image/png"}, cfg.Upload.AvatarAllowedTypes)
}
