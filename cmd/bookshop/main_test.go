package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Frug4l/digital-books-lab/internal/config"
)

func runCommand(t *testing.T, cfg *config.Config, args ...string) string {
	t.Helper()

	root := newRootCmd(cfg)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	require.NoError(t, root.Execute())
	return buf.String()
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StoreName: "Test Book Store",
		DataDir:   t.TempDir(),
		AppEnv:    "test",
	}
}

func TestDemoCommand(t *testing.T) {
	out := runCommand(t, testConfig(t), "demo")

	assert.Contains(t, out, "Catalog of Test Book Store:")
	assert.Contains(t, out, "'War and Peace' - Leo Tolstoy | PDF | 15MB | Price: 299.99")
	assert.Contains(t, out, "Cart total: 499.49")
	assert.Contains(t, out, "Ivan Ivanov has insufficient funds: needs 499.49, has 400.00")
	assert.Contains(t, out, "ORDER RECEIPT")
	assert.Contains(t, out, "TOTAL: 199.50")
}

func TestExportImportRoundTrip(t *testing.T) {
	cfg := testConfig(t)

	exportOut := runCommand(t, cfg, "export")
	assert.Contains(t, exportOut, "Exported catalog to")
	assert.FileExists(t, filepath.Join(cfg.DataDir, jsonFileName))
	assert.FileExists(t, filepath.Join(cfg.DataDir, xmlFileName))

	importOut := runCommand(t, cfg, "import")
	assert.Contains(t, importOut, "JSON: 2 books")
	assert.Contains(t, importOut, "'Eugene Onegin' - Alexander Pushkin | EPUB | 3MB | Price: 199.50")
	assert.Contains(t, importOut, "XML: version 1.0, 2 authors, 2 books")
}

func TestImportWithoutExportFails(t *testing.T) {
	cfg := testConfig(t)

	root := newRootCmd(cfg)
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"import"})

	assert.Error(t, root.Execute())
}
