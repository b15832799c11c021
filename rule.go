package preklad

import "strings"

// Link topic tags assigned by classification rules.
const (
	TopicContact   = "contact"
	TopicCourse    = "course"
	TopicLicensing = "licensing"
	TopicProduct   = "product"
	TopicTutorial  = "tutorial"
)

// LinkRule maps a Slovak path prefix to its Czech target prefix.
type LinkRule struct {
	// Prefix is the source-locale path prefix to match.
	Prefix string `yaml:"prefix"`

	// Target is the target-locale prefix substituted on match.
	Target string `yaml:"target"`

	// Topic classifies the link's intent (contact, course, licensing,
	// product, tutorial).
	Topic string `yaml:"topic"`
}

// RuleSet is an ordered list of link classification rules.
// Evaluation is first-match-wins in listed order; when an anchor matches
// more than one prefix, the earlier rule applies. Read-only after
// construction and safe for unsynchronized concurrent reads.
type RuleSet struct {
	rules []LinkRule
}

// NewRuleSet creates a RuleSet evaluating rules in the given order.
func NewRuleSet(rules ...LinkRule) *RuleSet {
	return &RuleSet{rules: rules}
}

// Rules returns the rules in evaluation order.
func (rs *RuleSet) Rules() []LinkRule {
	return rs.rules
}

// ctaTopics are the link intents whose section-index anchors are
// directed at the detected software's own page.
var ctaTopics = map[string]bool{
	TopicCourse:    true,
	TopicLicensing: true,
	TopicProduct:   true,
}

// Rewrite evaluates the rules against a URL path. On the first prefix
// match it returns the path with the prefix replaced by the rule's target,
// the remainder preserved, and the matched rule. An anchor to a bare
// section index with a course, licensing or product intent gains the
// detected software slug when one is given, so call-to-action links land
// on the page for the software the article is about. ok is false when no
// rule matches.
func (rs *RuleSet) Rewrite(path, software string) (rewritten string, rule LinkRule, ok bool) {
	for _, r := range rs.rules {
		rest, matched := splitPrefix(path, r.Prefix)
		if !matched {
			continue
		}
		target := r.Target
		if rest == "" && software != "" && ctaTopics[r.Topic] {
			target = strings.TrimSuffix(target, "/") + "/" + software
		}
		return target + rest, r, true
	}
	return path, LinkRule{}, false
}

// splitPrefix matches path against a rule prefix. A path naming the
// section index without the trailing slash still matches.
func splitPrefix(path, prefix string) (rest string, ok bool) {
	if strings.HasPrefix(path, prefix) {
		return strings.TrimPrefix(path, prefix), true
	}
	if path+"/" == prefix {
		return "", true
	}
	return "", false
}

// DefaultRules returns the built-in Slovak-to-Czech link rules.
func DefaultRules() *RuleSet {
	return NewRuleSet(
		LinkRule{Prefix: "/kontakty/", Target: "/konzultace/", Topic: TopicContact},
		LinkRule{Prefix: "/kontakt/", Target: "/konzultace/", Topic: TopicContact},
		LinkRule{Prefix: "/kurzy/", Target: "/kurzy/", Topic: TopicCourse},
		LinkRule{Prefix: "/skolenia/", Target: "/kurzy/", Topic: TopicCourse},
		LinkRule{Prefix: "/licencie/", Target: "/licence/", Topic: TopicLicensing},
		LinkRule{Prefix: "/navody/", Target: "/navody/", Topic: TopicTutorial},
		LinkRule{Prefix: "/produkty/", Target: "/software/", Topic: TopicProduct},
	)
}
