// config/load_test.go
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jojodeco2/tink/config"
)

const templatesYAML = `
templates:
  - name: backups-at-rest
    template: AES256_GCM
  - name: legacy-archive
    algorithm: aes-ctr-hmac
    params:
      aes_key_size: 16
      iv_size: 16
      hmac_key_size: 32
      tag_size: 16
  - name: raw-gcm
    algorithm: aes-gcm
    prefix: raw
    params:
      key_size: 32
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, templatesYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Templates, 3)

	assert.Equal(t, "backups-at-rest", cfg.Templates[0].Name)
	assert.Equal(t, "AES256_GCM", cfg.Templates[0].Template)

	assert.Equal(t, "aes-ctr-hmac", cfg.Templates[1].Algorithm)
	assert.Equal(t, uint32(16), cfg.Templates[1].Params["aes_key_size"])
	assert.Equal(t, uint32(32), cfg.Templates[1].Params["hmac_key_size"])

	assert.Equal(t, "raw", cfg.Templates[2].Prefix)
	assert.Equal(t, uint32(32), cfg.Templates[2].Params["key_size"])

	assert.Equal(t,
		[]string{"backups-at-rest", "legacy-archive", "raw-gcm"},
		config.GetTemplateNames(cfg))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "templates: [name: :::"))
	assert.Error(t, err)
}
