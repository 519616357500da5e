package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFileInfo(t *testing.T) {
	dir := t.TempDir()
	v := NewValidator(10)

	path := writeFile(t, dir, "small.pdf", "tiny")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NoError(t, v.ValidateFileInfo(path, info))

	// Not a PDF extension.
	txt := writeFile(t, dir, "plain.txt", "text")
	info, err = os.Stat(txt)
	require.NoError(t, err)
	assert.Error(t, v.ValidateFileInfo(txt, info))

	// Empty file.
	empty := writeFile(t, dir, "empty.pdf", "")
	info, err = os.Stat(empty)
	require.NoError(t, err)
	assert.Error(t, v.ValidateFileInfo(empty, info))

	// Over the size limit.
	big := writeFile(t, dir, "big.pdf", "this exceeds ten bytes")
	info, err = os.Stat(big)
	require.NoError(t, err)
	assert.Error(t, v.ValidateFileInfo(big, info))

	// Directory instead of a file.
	info, err = os.Stat(dir)
	require.NoError(t, err)
	assert.Error(t, v.ValidateFileInfo(dir, info))
}

func TestValidateFileMissing(t *testing.T) {
	v := NewValidator(1024)
	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestValidateFileRejectsNonPDFContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fake.pdf", "this is not pdf data")

	v := NewValidator(1024)
	assert.Error(t, v.ValidateFile(path))
}

func TestReadTextUnreadableDocument(t *testing.T) {
	r := NewReader(1024)
	_, err := r.ReadText(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Contains(t, readErr.Path, "missing.pdf")
}

func TestReadTextGarbageDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "garbage.pdf", "definitely not a pdf")

	r := NewReader(1024)
	_, err := r.ReadText(path)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.NotNil(t, readErr.Unwrap())
}
