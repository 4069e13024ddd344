package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFilesDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("UTILITY_TEST_A=file\nUTILITY_TEST_B=file\n"), 0o600))

	t.Setenv("UTILITY_TEST_A", "process")
	t.Setenv("UTILITY_TEST_B", "")
	require.NoError(t, os.Unsetenv("UTILITY_TEST_B"))

	require.NoError(t, loadEnvFiles([]string{path}))

	assert.Equal(t, "process", os.Getenv("UTILITY_TEST_A"))
	assert.Equal(t, "file", os.Getenv("UTILITY_TEST_B"))
}

func TestLoadEnvFilesMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.NoError(t, loadEnvFiles(nil), "absent default .env is fine")

	err := loadEnvFiles([]string{"missing.env"})
	assert.ErrorContains(t, err, "missing.env")
}
