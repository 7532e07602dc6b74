package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestReadConfig_FileAndDefaults(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: sqlite
  path: ":memory:"
server:
  port: 9090
`)

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "memory", cfg.Authorization.PolicyStore)
	assert.Equal(t, "דוח_אבחון", cfg.Report.FilePrefix)
	assert.Len(t, cfg.Report.HeaderLines, 2)
}

func TestReadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: sqlite
  path: ":memory:"
`)
	t.Setenv("PSYASSIST_SERVER_PORT", "7070")

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestReadConfig_MissingFileWithoutEnv(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "postgres default ok", mutate: func(c *Config) {}},
		{name: "sqlite without path", mutate: func(c *Config) { c.Database.Driver = "sqlite" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "short encryption key", mutate: func(c *Config) { c.Authentication.EncryptionKey = "abcd" }, wantErr: true},
		{
			name: "valid encryption key",
			mutate: func(c *Config) {
				c.Authentication.EncryptionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
			},
		},
		{
			name: "database policy store on sqlite",
			mutate: func(c *Config) {
				c.Database.Driver = "sqlite"
				c.Database.Path = "x.db"
				c.Authorization.PolicyStore = "database"
			},
			wantErr: true,
		},
		{name: "s3 without bucket", mutate: func(c *Config) { c.S3.Enabled = true }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			c.Server.Port = 8080
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
