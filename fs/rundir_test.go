package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dkubicek/preklad"
	"github.com/dkubicek/preklad/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunDir(t *testing.T) {
	t.Parallel()

	t.Run("CreatesLayout", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		dir, err := fs.NewRunDir(base)
		require.NoError(t, err)

		name := filepath.Base(dir.Path())
		assert.True(t, strings.HasPrefix(name, "article_"), "got %q", name)

		info, err := os.Stat(filepath.Join(dir.Path(), "images"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("RepeatedRunsGetDistinctDirectories", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		seen := make(map[string]bool)
		for i := 0; i < 5; i++ {
			dir, err := fs.NewRunDir(base)
			require.NoError(t, err)
			assert.False(t, seen[dir.Path()], "directory %s reused", dir.Path())
			seen[dir.Path()] = true
		}
	})
}

func TestRunDir_SaveImage(t *testing.T) {
	t.Parallel()

	dir, err := fs.NewRunDir(t.TempDir())
	require.NoError(t, err)

	rel, err := dir.SaveImage("foto.jpg", []byte("prvy"))
	require.NoError(t, err)
	assert.Equal(t, "images/foto.jpg", rel)

	rel2, err := dir.SaveImage("foto.jpg", []byte("druhy"))
	require.NoError(t, err)
	assert.Equal(t, "images/foto_1.jpg", rel2)

	first, err := os.ReadFile(filepath.Join(dir.Path(), "images", "foto.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "prvy", string(first))

	second, err := os.ReadFile(filepath.Join(dir.Path(), "images", "foto_1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "druhy", string(second))
}

func TestRunDir_SaveCover(t *testing.T) {
	t.Parallel()

	t.Run("KeepsExtension", func(t *testing.T) {
		t.Parallel()

		dir, err := fs.NewRunDir(t.TempDir())
		require.NoError(t, err)

		rel, err := dir.SaveCover("cover.png", []byte("obrazok"))
		require.NoError(t, err)
		assert.Equal(t, "header_image.png", rel)

		body, err := os.ReadFile(filepath.Join(dir.Path(), rel))
		require.NoError(t, err)
		assert.Equal(t, "obrazok", string(body))
	})

	t.Run("DefaultsToJPG", func(t *testing.T) {
		t.Parallel()

		dir, err := fs.NewRunDir(t.TempDir())
		require.NoError(t, err)

		rel, err := dir.SaveCover("cover", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "header_image.jpg", rel)
	})
}

func TestRunDir_WriteArtifacts(t *testing.T) {
	t.Parallel()

	dir, err := fs.NewRunDir(t.TempDir())
	require.NoError(t, err)

	res := &preklad.Result{
		URL:       "https://example.sk/clanok",
		OutputDir: dir.Path(),
		Meta: preklad.Metadata{
			Title:       "Návod na SketchUp",
			Description: "Podrobný návod.",
			Keywords:    []string{"sketchup", "3d"},
			Author:      "Jana Nová",
		},
		Topic:     "SketchUp - 3D modelování",
		CoverPath: "header_image.jpg",
		Assets: []preklad.AssetRecord{
			{OriginalURL: "https://example.sk/a.png", LocalPath: "images/a.png", Filename: "a.png", Kind: preklad.AssetContent},
		},
		Warnings:    []string{"skipped https://example.sk/logo.svg: vector placeholder format"},
		ContentHash: "deadbeef",
		CreatedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, dir.WriteContent("<p>obsah</p>"))
	require.NoError(t, dir.WriteMarkdown("obsah"))
	require.NoError(t, dir.WriteMetadata(res))
	require.NoError(t, dir.WriteManifest(res))
	require.NoError(t, dir.WriteReadme(res))

	content, err := os.ReadFile(filepath.Join(dir.Path(), "content.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>obsah</p>", string(content))

	meta, err := os.ReadFile(filepath.Join(dir.Path(), "seo_metadata.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), "TITLE: Návod na SketchUp\n")
	assert.Contains(t, string(meta), "KEYWORDS: sketchup, 3d\n")
	assert.Contains(t, string(meta), "TOPIC: SketchUp - 3D modelování\n")

	var metaJSON struct {
		Title string `json:"title"`
		Topic string `json:"topic"`
	}
	raw, err := os.ReadFile(filepath.Join(dir.Path(), "seo_metadata.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &metaJSON))
	assert.Equal(t, "Návod na SketchUp", metaJSON.Title)
	assert.Equal(t, "SketchUp - 3D modelování", metaJSON.Topic)

	var manifest preklad.Result
	raw, err = os.ReadFile(filepath.Join(dir.Path(), "manifest.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, res.URL, manifest.URL)
	assert.Equal(t, res.ContentHash, manifest.ContentHash)
	require.Len(t, manifest.Assets, 1)
	assert.Equal(t, "images/a.png", manifest.Assets[0].LocalPath)

	readme, err := os.ReadFile(filepath.Join(dir.Path(), "README.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "https://example.sk/clanok")
	assert.Contains(t, string(readme), "Upozornění:")
}
