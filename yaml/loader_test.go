package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dkubicek/preklad"
	"github.com/dkubicek/preklad/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDictionary(t *testing.T) {
	t.Parallel()

	t.Run("LoadsAndNormalizesKeys", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "dict.yaml", `
words:
  Alebo: nebo
  softvér: software
phrases:
  V reálnom čase: v reálném čase
`)

		dict, err := yaml.LoadDictionary(path)
		require.NoError(t, err)
		assert.Equal(t, "nebo", dict.Words["alebo"])
		assert.Equal(t, "software", dict.Words["softvér"])
		assert.Equal(t, "v reálném čase", dict.Phrases["v reálnom čase"])
	})

	t.Run("MergesOverBuiltIn", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "dict.yaml", `
words:
  alebo: anebo
`)

		overlay, err := yaml.LoadDictionary(path)
		require.NoError(t, err)

		merged := preklad.DefaultDictionary().Merge(overlay)
		assert.Equal(t, "anebo", merged.Words["alebo"])
		assert.Equal(t, "nyní", merged.Words["teraz"])
	})

	t.Run("MissingFile", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadDictionary(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Equal(t, preklad.EINVALID, preklad.ErrorCode(err))
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "dict.yaml", "words: [not, a, map]")
		_, err := yaml.LoadDictionary(path)
		require.Error(t, err)
		assert.Equal(t, preklad.EINVALID, preklad.ErrorCode(err))
	})
}

func TestLoadRules(t *testing.T) {
	t.Parallel()

	t.Run("PreservesFileOrder", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "rules.yaml", `
rules:
  - prefix: /skolenia/
    target: /kurzy/
    topic: course
  - prefix: /produkty/
    target: /software/
    topic: product
`)

		rules, err := yaml.LoadRules(path)
		require.NoError(t, err)
		require.Len(t, rules.Rules(), 2)
		assert.Equal(t, "/skolenia/", rules.Rules()[0].Prefix)

		rewritten, rule, ok := rules.Rewrite("/skolenia/sketchup", "")
		require.True(t, ok)
		assert.Equal(t, "/kurzy/sketchup", rewritten)
		assert.Equal(t, "course", rule.Topic)
	})

	t.Run("RejectsIncompleteRule", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "rules.yaml", `
rules:
  - prefix: /skolenia/
`)

		_, err := yaml.LoadRules(path)
		require.Error(t, err)
		assert.Equal(t, preklad.EINVALID, preklad.ErrorCode(err))
	})
}
