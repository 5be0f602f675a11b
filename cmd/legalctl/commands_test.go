package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist/internal/model"
)

type failingSearcher struct{}

func (failingSearcher) Search([]string, string) ([]model.LegalKnowledge, error) {
	return nil, errors.New("store offline")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassify(t *testing.T) {
	out, err := run(t, "", "classify", "How", "to", "File", "an", "FIR?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Category: criminal\nSource: template\n"))
	assert.Contains(t, out, "**How to File an FIR (First Information Report)**")
	assert.Contains(t, out, "- How to file an FIR")
}

func TestClassifyRequiresText(t *testing.T) {
	_, err := run(t, "", "classify")
	assert.Error(t, err)
}

func TestAnalyzeStdin(t *testing.T) {
	out, err := run(t, "FIRST INFORMATION REPORT\nThe accused snatched a gold chain near the market\n", "analyze", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "**Document Type:** FIR")
	assert.Contains(t, out, "**Legal Area:** criminal")
	assert.Contains(t, out, "🚨 The accused snatched a gold chain near the market")
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deed.txt")
	require.NoError(t, os.WriteFile(path, []byte("This sale deed transfers the plot at Sector 12 to the buyer."), 0o600))

	out, err := run(t, "", "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "**Document Type:** Sale Deed")
	assert.Contains(t, out, "**Legal Area:** property")
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := run(t, "", "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "read file failed")
}

func TestSearch(t *testing.T) {
	out, err := run(t, "", "search", "fir")
	require.NoError(t, err)
	assert.Contains(t, out, "[criminal] How to file an FIR?")

	out, err = run(t, "", "search", "zzzz")
	require.NoError(t, err)
	assert.Equal(t, "no matching records\n", out)
}

func TestSearchCategoryFilter(t *testing.T) {
	out, err := run(t, "", "search", "fir", "--category", "tax")
	require.NoError(t, err)
	assert.Equal(t, "no matching records\n", out)

	out, err = run(t, "", "search", "fir", "-c", "Criminal")
	require.NoError(t, err)
	assert.Contains(t, out, "[criminal] How to file an FIR?")
	assert.NotContains(t, out, "[family]")
}

func TestSearchReturnsStoreError(t *testing.T) {
	cmd := newSearchCmd(failingSearcher{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"fir"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "search knowledge failed: store offline")
}
