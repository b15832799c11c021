// Package lexicon implements dictionary-based lexical substitution for
// closely related languages. Substitution is word-boundary-safe,
// case-aware and total: out-of-dictionary tokens pass through verbatim.
package lexicon

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dkubicek/preklad"
)

// Ensure Translator implements preklad.Translator at compile time.
var _ preklad.Translator = (*Translator)(nil)

// Translator applies a static dictionary to text fragments.
// It is read-only after construction and safe for concurrent use.
type Translator struct {
	words   map[string]string
	phrases []phraseEntry
}

// phraseEntry is one compiled multi-word substitution.
type phraseEntry struct {
	source  string
	target  string
	pattern *regexp.Regexp
}

// New compiles a Translator from the given dictionary.
func New(dict *preklad.Dictionary) *Translator {
	t := &Translator{
		words: make(map[string]string, len(dict.Words)),
	}
	for k, v := range dict.Words {
		t.words[strings.ToLower(k)] = v
	}

	// Longest phrase first so that phrase entries take priority over
	// shorter phrases sharing a prefix. Ties break lexicographically
	// to keep application order deterministic.
	keys := make([]string, 0, len(dict.Phrases))
	for k := range dict.Phrases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		t.phrases = append(t.phrases, phraseEntry{
			source:  k,
			target:  dict.Phrases[k],
			pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(k)),
		})
	}
	return t
}

// Translate returns text with phrase substitutions applied first, then
// word-boundary-safe single-word substitutions. Matching is
// case-insensitive; the replacement's casing follows the matched token.
func (t *Translator) Translate(text string) string {
	if text == "" {
		return text
	}
	out := text
	for _, p := range t.phrases {
		out = p.apply(out)
	}
	return t.replaceWords(out)
}

// apply substitutes every boundary-safe occurrence of the phrase.
func (e phraseEntry) apply(s string) string {
	locs := e.pattern.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		if loc[0] < last || !boundaryOK(s, loc[0], loc[1]) {
			continue
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(applyCasing(s[loc[0]:loc[1]], e.target))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// replaceWords substitutes maximal letter runs found in the dictionary.
// Scanning whole runs makes boundary safety structural: an entry can
// never match inside a longer word.
func (t *Translator) replaceWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		j := i + size
		for j < len(s) {
			r2, sz := utf8.DecodeRuneInString(s[j:])
			if !unicode.IsLetter(r2) {
				break
			}
			j += sz
		}
		word := s[i:j]
		if target, ok := t.words[strings.ToLower(word)]; ok {
			b.WriteString(applyCasing(word, target))
		} else {
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}

// boundaryOK reports whether s[start:end] is bounded by non-letter runes
// or string edges.
func boundaryOK(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// applyCasing transfers the casing pattern of the matched source token
// onto the replacement: all-caps source yields an all-caps target, a
// capitalized source yields a capitalized target, anything else yields
// the target as stored (lowercase).
func applyCasing(source, target string) string {
	var letters []rune
	for _, r := range source {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return target
	}

	allUpper := true
	for _, r := range letters {
		if !unicode.IsUpper(r) {
			allUpper = false
			break
		}
	}
	if allUpper && len(letters) > 1 {
		return strings.ToUpper(target)
	}

	if unicode.IsUpper(letters[0]) {
		return capitalize(target)
	}
	return target
}

// capitalize upper-cases the first letter of s.
func capitalize(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
		}
	}
	return s
}
