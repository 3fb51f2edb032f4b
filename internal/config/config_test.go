package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadExplicitFile 验证显式指定配置文件时全部键都能读出。
func TestLoadExplicitFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "language: go\n" +
		"ignore:\n" +
		"  - vendor\n" +
		"  - '*.gen.go'\n" +
		"include-hidden: true\n" +
		"workers: 4\n"
	require.NoError(t, afero.WriteFile(fs, "/home/user/.sloc.yaml", []byte(content), 0o644))

	cfg, err := Load(fs, "/home/user/.sloc.yaml")
	require.NoError(t, err)

	assert.Equal(t, "go", cfg.Language)
	assert.Equal(t, []string{"vendor", "*.gen.go"}, cfg.Ignore)
	assert.True(t, cfg.IncludeHidden)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "/home/user/.sloc.yaml", cfg.Path)
}

// TestLoadExplicitFileMissing 验证显式路径找不到文件时报错。
func TestLoadExplicitFileMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "/nowhere/.sloc.yaml")
	require.Error(t, err)
}

// TestLoadNoConfigFound 验证未指定路径且找不到配置时返回零值，不报错。
func TestLoadNoConfigFound(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Language)
	assert.Empty(t, cfg.Ignore)
	assert.False(t, cfg.IncludeHidden)
	assert.Zero(t, cfg.Workers)
	assert.Empty(t, cfg.Path)
}

// TestLoadMalformedFile 验证配置文件语法错误会向上报告。
func TestLoadMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/user/.sloc.yaml", []byte("language: [unclosed\n"), 0o644))

	_, err := Load(fs, "/home/user/.sloc.yaml")
	require.Error(t, err)
}
