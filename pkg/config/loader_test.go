package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_ValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := `enabled: true
countdown: 3
delayIntensity: 2
scope: "^store"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	plan, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, plan.Enabled)
	assert.Equal(t, uint64(3), plan.Countdown)
	assert.Equal(t, uint32(2), plan.DelayIntensity)
	assert.Equal(t, "^store", plan.Scope)
}

func TestLoadFromFile_ValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	content := `{"enabled": true, "countdown": 1}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	plan, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, plan.Enabled)
	assert.Equal(t, uint64(1), plan.Countdown)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			setup:   func(t *testing.T) string { return filepath.Join(tmpDir, "nope.yaml") },
			wantErr: ErrFileNotFound,
		},
		{
			name: "empty file",
			setup: func(t *testing.T) string {
				path := filepath.Join(tmpDir, "empty.yaml")
				require.NoError(t, os.WriteFile(path, nil, 0644))
				return path
			},
			wantErr: ErrEmptyFile,
		},
		{
			name: "invalid JSON",
			setup: func(t *testing.T) string {
				path := filepath.Join(tmpDir, "bad.json")
				require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))
				return path
			},
			wantErr: ErrInvalidJSON,
		},
		{
			name: "invalid YAML",
			setup: func(t *testing.T) string {
				path := filepath.Join(tmpDir, "bad.yaml")
				require.NoError(t, os.WriteFile(path, []byte("enabled: [unclosed"), 0644))
				return path
			},
			wantErr: ErrInvalidYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(tt.setup(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromFile_InvalidScopeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`scope: "[invalid"`), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestSaveToFileRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	plan := &Plan{Enabled: true, Countdown: 9, DelayIntensity: 4, Scope: "net"}

	for _, name := range []string{"plan.yaml", "plan.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, name)
			require.NoError(t, SaveToFile(path, plan))

			got, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, plan, got)
		})
	}
}
