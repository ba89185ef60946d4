package policy_test

import (
	"runtime"
	"testing"

	"github.com/hbjs97/dstack/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	assert.True(t, policy.Static(true).DirectAllowed())
	assert.False(t, policy.Static(false).DirectAllowed())
}

func TestFromMode(t *testing.T) {
	g, err := policy.FromMode(policy.ModeAllow)
	require.NoError(t, err)
	assert.True(t, g.DirectAllowed())

	g, err = policy.FromMode(policy.ModeDeny)
	require.NoError(t, err)
	assert.False(t, g.DirectAllowed())

	_, err = policy.FromMode("sometimes")
	assert.Error(t, err)
}

func TestFromMode_AutoUsesPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("레지스트리 값에 따라 달라짐")
	}
	g, err := policy.FromMode(policy.ModeAuto)
	require.NoError(t, err)
	assert.True(t, g.DirectAllowed())
}
