package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorSite(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := NewGeneratorSite("Plaza Central", "CDMX", "Av. Reforma 100", "CDMX", "CDMX", "06600", "A. Ruiz", "a.ruiz@example.com", nil)
		require.NoError(t, err)
		assert.True(t, s.Active)
		assert.Equal(t, "CDMX", s.SerialPrefix)
	})

	tests := []struct {
		name   string
		prefix string
		ok     bool
	}{
		{"two letters", "GD", true},
		{"five letters", "ABCDE", true},
		{"one letter", "A", false},
		{"six letters", "ABCDEF", false},
		{"lowercase", "cdmx", false},
		{"digits", "CD1", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run("prefix "+tt.name, func(t *testing.T) {
			_, err := NewGeneratorSite("Site", tt.prefix, "", "", "", "", "", "", nil)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	t.Run("missing name", func(t *testing.T) {
		_, err := NewGeneratorSite("  ", "CDMX", "", "", "", "", "", "", nil)
		assert.Error(t, err)
	})
}

func TestGeneratorSiteAddress(t *testing.T) {
	s, err := NewGeneratorSite("Plaza Central", "CDMX", "Av. Reforma 100", "CDMX", "CDMX", "06600", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Av. Reforma 100, CDMX, CDMX, 06600", s.Address())

	partial, err := NewGeneratorSite("Bodega Sur", "SUR", "", "Tlalpan", "", "", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Tlalpan", partial.Address())

	empty, err := NewGeneratorSite("Sin Domicilio", "SD", "", "", "", "", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "", empty.Address())
}

func TestGeneratorSiteActivation(t *testing.T) {
	s, err := NewGeneratorSite("Plaza Central", "CDMX", "", "", "", "", "", "", nil)
	require.NoError(t, err)

	s.Deactivate()
	assert.False(t, s.Active)
	s.Activate()
	assert.True(t, s.Active)
}

func TestSettingOrPlaceholder(t *testing.T) {
	assert.Equal(t, "ResiTrack S.A.", SettingOrPlaceholder(SettingIssuerName, "ResiTrack S.A."))
	assert.Equal(t, "Issuer pending configuration", SettingOrPlaceholder(SettingIssuerName, ""))
	assert.Equal(t, "not specified", SettingOrPlaceholder(SettingIssuerAddress, "  "))
	assert.Equal(t, "", SettingOrPlaceholder("unknown.key", ""))
}
