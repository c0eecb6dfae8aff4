package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifei6671/i18ntree"
)

func TestLoad(t *testing.T) {
	t.Run("Load_Defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.Equal(t, "key", cfg.KeyColumn)
		assert.Equal(t, "loc:", cfg.LocalePrefix)
		assert.Equal(t, i18ntree.MissingBlank, cfg.Missing)
		assert.Equal(t, "yaml", cfg.Format)
		assert.Equal(t, 2, cfg.Indent)

		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Equal(t, i18ntree.DefaultOptions(), opts)
	})

	t.Run("Load_Environment", func(t *testing.T) {
		t.Setenv("I18NTREE_KEY_COLUMN", "id")
		t.Setenv("I18NTREE_MISSING", "ref")
		t.Setenv("I18NTREE_DELIMITERS", `;\n`)
		t.Setenv("I18NTREE_STRICT", "true")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Equal(t, "id", opts.KeyColumn)
		assert.Equal(t, i18ntree.MissingRef, opts.Missing)
		assert.Equal(t, ";\n", opts.Delimiters)
		assert.True(t, opts.Strict)
	})

	t.Run("Load_DotEnv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("I18NTREE_LOCALE_PREFIX=lang:\nI18NTREE_OUT_DIR=build/locales\n"), 0o644))
		t.Setenv("I18NTREE_OUT_DIR", "from-env")
		t.Cleanup(func() { os.Unsetenv("I18NTREE_LOCALE_PREFIX") })

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "lang:", cfg.LocalePrefix)
		assert.Equal(t, "from-env", cfg.OutDir)
	})

	t.Run("Load_InvalidPolicy", func(t *testing.T) {
		t.Setenv("I18NTREE_MISSING", "copy")
		_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorContains(t, err, "unknown missing policy")
	})
}
