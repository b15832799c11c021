package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadList(t *testing.T) {
	t.Parallel()

	t.Run("skips blanks and comments", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, "urls.txt", `
# zoznam článkov
https://example.sk/a

https://example.sk/b
`)

		urls, err := readList(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.sk/a", "https://example.sk/b"}, urls)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := readList(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
	})
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	t.Run("reads first column and skips header", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, "urls.csv", `url,note
https://example.sk/a,prvý
https://example.sk/b,druhý
`)

		urls, err := readCSV(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.sk/a", "https://example.sk/b"}, urls)
	})

	t.Run("headerless file keeps first row", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, "urls.csv", "https://example.sk/a\nhttps://example.sk/b\n")

		urls, err := readCSV(path)
		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})
}
