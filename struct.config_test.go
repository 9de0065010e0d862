package rshade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigOverride(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.override(map[string][]string{
		"subreachlength": {"55"},
		"extcoef":        {"0.6"},
		"geogcrs":        {"true"},
		"policy":         {"aspect"},
		"prfx":           {"out/"},
	}))
	assert.Equal(t, 55., cfg.SubReachLength)
	assert.Equal(t, .6, cfg.ExtinctionCoef)
	assert.True(t, cfg.GeogCRS)
	assert.Equal(t, "aspect", cfg.Policy)
	assert.Equal(t, "out/", cfg.Prfx)
}

func TestConfigOverrideRejectsBadValues(t *testing.T) {
	assert.Error(t, DefaultConfig().override(map[string][]string{"policy": {"solar"}}))
	assert.Error(t, DefaultConfig().override(map[string][]string{"geogcrs": {"maybe"}}))
	assert.Error(t, DefaultConfig().override(map[string][]string{"curvthresh": {"steep"}}))
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 70., cfg.SubReachLength)
	assert.Equal(t, 30., cfg.BankBufferWidth)
	assert.Equal(t, 20., cfg.NorthSouthTolDeg)
	assert.Equal(t, 1.5, cfg.CurvatureThresh)
	assert.Equal(t, .47687, cfg.ExtinctionCoef)
	assert.Equal(t, "canopy", cfg.Policy)
	assert.False(t, cfg.GeogCRS)
}
