package domain

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigErrors_MatchErrConfiguration(t *testing.T) {
	for _, err := range []error{UnknownPalette("neon_pink"), UnknownFormat("gif")} {
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.NotErrorIs(t, err, ErrEncode)
	}

	var cfgErr *ConfigError
	require.ErrorAs(t, UnknownPalette("neon_pink"), &cfgErr)
	assert.Equal(t, "palette", cfgErr.Kind)
	assert.Equal(t, "neon_pink", cfgErr.Value)
	assert.Equal(t, `unknown palette "neon_pink"`, cfgErr.Error())
}

func TestEncodeFailed_KeepsCause(t *testing.T) {
	err := EncodeFailed("pdf", io.ErrShortWrite)

	assert.ErrorIs(t, err, ErrEncode)
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.False(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "pdf")
}
