package domain_test

import (
	"testing"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Mode
	}{
		{"", domain.ModeApply},
		{"apply", domain.ModeApply},
		{"lint-strings", domain.ModeLintStrings},
		{"validate", domain.ModeValidate},
	}
	for _, tt := range tests {
		m, err := domain.ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, m)
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := domain.ParseMode("publish")
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
	assert.Contains(t, err.Error(), "publish")
}

func TestMode_Behaviour(t *testing.T) {
	assert.False(t, domain.ModeApply.ForcesDryRun())
	assert.False(t, domain.ModeApply.RunsRegression())

	for _, m := range []domain.Mode{domain.ModeLintStrings, domain.ModeValidate} {
		assert.True(t, m.ForcesDryRun(), m)
		assert.True(t, m.RunsRegression(), m)
	}
}
