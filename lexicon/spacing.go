package lexicon

import "regexp"

// Substitution near inline markup can leave words glued to emphasis tags
// ("text<strong>word"). The repair pass restores exactly one space at
// disturbed boundaries and collapses space runs it may have introduced.
// Preformatted regions are exempt.
var (
	preRegionRe = regexp.MustCompile(`(?is)<pre\b[^>]*>.*?</pre>`)
	beforeTagRe = regexp.MustCompile(`([^\s>])(<(?:strong|em|b|i|u|span)\b[^>]*>)`)
	afterTagRe  = regexp.MustCompile(`(</(?:strong|em|b|i|u|span)>)([^\s<])`)
	multiSpace  = regexp.MustCompile(` {2,}`)
)

// RepairSpacing normalizes spacing around inline emphasis boundaries in
// serialized markup. Idempotent: repairing already-correct markup changes
// nothing.
func (t *Translator) RepairSpacing(markup string) string {
	if markup == "" {
		return markup
	}

	locs := preRegionRe.FindAllStringIndex(markup, -1)
	if locs == nil {
		return repairSegment(markup)
	}

	var out []byte
	last := 0
	for _, loc := range locs {
		out = append(out, repairSegment(markup[last:loc[0]])...)
		out = append(out, markup[loc[0]:loc[1]]...)
		last = loc[1]
	}
	out = append(out, repairSegment(markup[last:])...)
	return string(out)
}

func repairSegment(s string) string {
	s = beforeTagRe.ReplaceAllString(s, "$1 $2")
	s = afterTagRe.ReplaceAllString(s, "$1 $2")
	return multiSpace.ReplaceAllString(s, " ")
}
