package goquery_test

import (
	"strings"
	"testing"

	"github.com/dkubicek/preklad"
	"github.com/dkubicek/preklad/goquery"
	"github.com/dkubicek/preklad/lexicon"
	"github.com/dkubicek/preklad/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalker_Walk(t *testing.T) {
	t.Parallel()

	upper := &mock.Translator{
		TranslateFn: strings.ToUpper,
	}

	t.Run("TranslatesTextAndProseAttributes", func(t *testing.T) {
		t.Parallel()

		article := parseArticle(t, "https://example.sk/", `<html><body><article>
<p>ahoj <em>svet</em></p>
<img src="pic.png" alt="popis obrázka" title="titulok">
</article></body></html>`)

		goquery.NewWalker(upper).Walk(article)

		out, err := article.HTML()
		require.NoError(t, err)
		assert.Contains(t, out, "AHOJ <em>SVET</em>")
		assert.Contains(t, out, `alt="POPIS OBRÁZKA"`)
		assert.Contains(t, out, `title="TITULOK"`)
		// Structural attributes stay untouched.
		assert.Contains(t, out, `src="pic.png"`)
	})

	t.Run("SkipsCodeRegions", func(t *testing.T) {
		t.Parallel()

		article := parseArticle(t, "https://example.sk/", `<html><body><article>
<p>text</p>
<pre>presne  tak</pre>
<code>kod</code>
<script>var x = "skript";</script>
</article></body></html>`)

		goquery.NewWalker(upper).Walk(article)

		out, err := article.HTML()
		require.NoError(t, err)
		assert.Contains(t, out, "<p>TEXT</p>")
		assert.Contains(t, out, "<pre>presne  tak</pre>")
		assert.Contains(t, out, "<code>kod</code>")
		assert.Contains(t, out, `var x = "skript";`)
	})

	t.Run("PreservesSurroundingWhitespace", func(t *testing.T) {
		t.Parallel()

		article := parseArticle(t, "https://example.sk/", `<html><body><article><p>  ahoj  </p></article></body></html>`)

		goquery.NewWalker(upper).Walk(article)

		out, err := article.HTML()
		require.NoError(t, err)
		assert.Contains(t, out, "<p>  AHOJ  </p>")
	})

	t.Run("TranslatedSubtreeKeepsStructure", func(t *testing.T) {
		t.Parallel()

		article := parseArticle(t, "https://example.sk/clanok", `<html><body>
<article><h1>Slovenský Nadpis</h1><p>Text s <strong>dôležitým</strong> slovom.</p></article>
</body></html>`)

		translator := lexicon.New(preklad.DefaultDictionary())
		goquery.NewWalker(translator).Walk(article)

		out, err := article.HTML()
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>důležitým</strong>")
		assert.Contains(t, out, "<h1>")
		assert.Contains(t, out, "</p>")
	})
}
