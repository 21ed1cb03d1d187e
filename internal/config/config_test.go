package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "reqlens", cfg.Logger.ServiceName)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "reqlens-history.db", cfg.History.Path)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Empty(t, cfg.Context.Domain, "context fields default to empty for inference")
}

func TestNewConfigFromViperOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("logger.format", "json")
	v.Set("output.format", "yaml")
	v.Set("context.domain", "fintech")
	v.Set("context.tags", []string{"production"})

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "fintech", cfg.Context.Domain)
	assert.Equal(t, []string{"production"}, cfg.Context.Tags)
}

func TestValidateRejectsBadFormats(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Logger.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.Output.Format = "pdf"
	assert.Error(t, cfg.Validate())
}

func TestValidateHistoryPathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.History.Enabled = true
	cfg.History.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.History.Path = "trend.db"
	assert.NoError(t, cfg.Validate())
}

func TestProjectContextConversion(t *testing.T) {
	cc := ContextConfig{
		ProjectName: "webshop",
		Domain:      "ecommerce",
		Stage:       "growth",
		TeamSize:    "large",
		Criticality: "business-critical",
		Tags:        []string{"checkout"},
	}

	pc := cc.ProjectContext()
	assert.Equal(t, "webshop", pc.ProjectName)
	assert.Equal(t, schemas.DomainECommerce, pc.Domain)
	assert.Equal(t, schemas.StageGrowth, pc.Stage)
	assert.Equal(t, schemas.TeamSizeLarge, pc.TeamSize)
	assert.Equal(t, schemas.CriticalityBusinessCritical, pc.Criticality)
	assert.Equal(t, []string{"checkout"}, pc.Tags)
}
