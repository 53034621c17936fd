package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl string `json:"base_url"`
	Delay   int    `json:"delay"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "config.json5")
	require.NoError(t, os.WriteFile(
		base,
		[]byte(`{base_url: "http://example.com", delay: 2}`),
		0644,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.local.json5"),
		[]byte(`{delay: 5}`),
		0644,
	))

	config, err := ReadConfig[testConfig](base)
	require.NoError(t, err)
	require.Equal(t, "http://example.com", config.BaseUrl)
	require.Equal(t, 5, config.Delay)
}

func TestReadConfigMissingFiles(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}
