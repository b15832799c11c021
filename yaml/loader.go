// Package yaml loads user-supplied dictionary and link rule files.
package yaml

import (
	"os"
	"strings"

	"github.com/dkubicek/preklad"
	"gopkg.in/yaml.v3"
)

// LoadDictionary reads a dictionary overlay from a YAML file. Keys are
// case-normalized on load so the file may use any casing.
func LoadDictionary(path string) (*preklad.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "read dictionary file: %v", err)
	}

	var dict preklad.Dictionary
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "parse dictionary file %s: %v", path, err)
	}

	dict.Words = lowerKeys(dict.Words)
	dict.Phrases = lowerKeys(dict.Phrases)
	if err := dict.Validate(); err != nil {
		return nil, err
	}
	return &dict, nil
}

// ruleFile is the on-disk shape of a link rules file.
type ruleFile struct {
	Rules []preklad.LinkRule `yaml:"rules"`
}

// LoadRules reads an ordered link rule list from a YAML file. File order
// is evaluation order.
func LoadRules(path string) (*preklad.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "read rules file: %v", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "parse rules file %s: %v", path, err)
	}

	for _, r := range file.Rules {
		if r.Prefix == "" || r.Target == "" {
			return nil, preklad.Errorf(preklad.EINVALID, "rules file %s: every rule needs a prefix and a target", path)
		}
	}
	return preklad.NewRuleSet(file.Rules...), nil
}

func lowerKeys(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}
