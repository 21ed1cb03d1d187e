package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
	"github.com/xkilldash9x/reqlens-cli/internal/config"
)

func TestVersionCommandOutput(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "reqlens")
	assert.Contains(t, out.String(), Version)
}

func TestDeclaredContextFlagOverrides(t *testing.T) {
	oldCfg := cfg
	cfg = config.NewDefaultConfig()
	cfg.Context.Domain = "healthcare"
	cfg.Context.ProjectName = "from-config"
	t.Cleanup(func() {
		cfg = oldCfg
		assessFlags.domain = ""
		assessFlags.project = ""
		assessFlags.tags = nil
	})

	// Without flags the config values pass through.
	pc := declaredContext()
	assert.Equal(t, schemas.DomainHealthcare, pc.Domain)
	assert.Equal(t, "from-config", pc.ProjectName)

	// Flags beat the config file.
	assessFlags.domain = "fintech"
	assessFlags.project = "ledger"
	assessFlags.tags = []string{"production"}
	pc = declaredContext()
	assert.Equal(t, schemas.DomainFintech, pc.Domain)
	assert.Equal(t, "ledger", pc.ProjectName)
	assert.Contains(t, pc.Tags, "production")
}

func TestInitializeConfigMissingFileIsFine(t *testing.T) {
	require.NoError(t, initializeConfig())
}
