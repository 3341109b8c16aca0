package sysfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"511\n", 511, false},
		{"  42 ", 42, false},
		{"1023 nits", 1023, false},
		{"12.7", 12, false},
		{"", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"99999999999999999999999", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLeadingInt(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrNotNumeric, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestOSReadInt(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "max_hw_brightness")
	require.NoError(t, os.WriteFile(p, []byte("2047\n"), 0o644))

	v, err := OS{}.ReadInt(p)
	require.NoError(t, err)
	assert.Equal(t, 2047, v)

	_, err = OS{}.ReadInt(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestOSCreateAndExists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "oplus_brightness")

	assert.False(t, OS{}.Exists(p))
	require.NoError(t, OS{}.Create(p))
	assert.True(t, OS{}.Exists(p))

	err := OS{}.Create(filepath.Join(p, "nested"))
	assert.Error(t, err)
}
