package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFindDocumentsDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_report.pdf", "%PDF-1.4 fake")
	writeFile(t, dir, "a_report.pdf", "%PDF-1.4 fake")
	writeFile(t, dir, "notes.txt", "not a pdf")

	s := NewSearch(1024 * 1024)

	paths, err := s.FindDocuments(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a_report.pdf", filepath.Base(paths[0]))
	assert.Equal(t, "b_report.pdf", filepath.Base(paths[1]))

	// Re-running discovery yields the same order.
	again, err := s.FindDocuments(dir)
	require.NoError(t, err)
	assert.Equal(t, paths, again)
}

func TestFindDocumentsSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.pdf", "%PDF-1.4 fake")
	writeFile(t, dir, "empty.pdf", "")
	writeFile(t, dir, ".hidden/skipped.pdf", "%PDF-1.4 fake")

	s := NewSearch(1024 * 1024)
	paths, err := s.FindDocuments(dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "ok.pdf", filepath.Base(paths[0]))
}

func TestFindDocumentsMissingDirectory(t *testing.T) {
	s := NewSearch(1024)
	_, err := s.FindDocuments(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)

	_, err = s.FindDocuments("")
	assert.Error(t, err)
}

func TestCountPDFsInDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.pdf", "%PDF-1.4 fake")
	writeFile(t, dir, "two.pdf", "%PDF-1.4 fake")

	s := NewSearch(1024 * 1024)
	count, err := s.CountPDFsInDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
