package preklad

import "strings"

// Dictionary maps Slovak terms to their Czech equivalents. Keys are
// case-normalized (lowercase); matching is case-insensitive with the
// replacement's casing derived from the matched token.
//
// A Dictionary is read-only for the duration of a run and safe for
// unsynchronized concurrent reads.
type Dictionary struct {
	// Words maps single Slovak words to Czech words. Matches are
	// accepted only on word boundaries.
	Words map[string]string `yaml:"words"`

	// Phrases maps multi-word Slovak phrases to Czech phrases.
	// Phrases are applied before words, longest first, so phrase
	// entries take priority over their constituent words.
	Phrases map[string]string `yaml:"phrases"`
}

// Validate returns an error if the dictionary contains invalid entries.
func (d *Dictionary) Validate() error {
	for k := range d.Words {
		if strings.TrimSpace(k) == "" {
			return Errorf(EINVALID, "dictionary contains an empty word key")
		}
		if k != strings.ToLower(k) {
			return Errorf(EINVALID, "dictionary word key %q is not lowercase", k)
		}
	}
	for k := range d.Phrases {
		if strings.TrimSpace(k) == "" {
			return Errorf(EINVALID, "dictionary contains an empty phrase key")
		}
		if k != strings.ToLower(k) {
			return Errorf(EINVALID, "dictionary phrase key %q is not lowercase", k)
		}
	}
	return nil
}

// Merge returns a copy of d with entries from other layered on top.
// Used to apply a user-supplied dictionary over the built-in one.
func (d *Dictionary) Merge(other *Dictionary) *Dictionary {
	merged := &Dictionary{
		Words:   make(map[string]string, len(d.Words)),
		Phrases: make(map[string]string, len(d.Phrases)),
	}
	for k, v := range d.Words {
		merged.Words[k] = v
	}
	for k, v := range d.Phrases {
		merged.Phrases[k] = v
	}
	if other != nil {
		for k, v := range other.Words {
			merged.Words[strings.ToLower(k)] = v
		}
		for k, v := range other.Phrases {
			merged.Phrases[strings.ToLower(k)] = v
		}
	}
	return merged
}

// DefaultDictionary returns the built-in Slovak-to-Czech dictionary.
// It covers common function words and the 3D/CAD vocabulary of the
// articles this tool was built for; out-of-dictionary tokens pass
// through untranslated.
func DefaultDictionary() *Dictionary {
	return &Dictionary{
		Words: map[string]string{
			"alebo":         "nebo",
			"ktorý":         "který",
			"ktorá":         "která",
			"ktoré":         "které",
			"ktorou":        "kterou",
			"teraz":         "nyní",
			"veľmi":         "velmi",
			"napríklad":     "například",
			"môžete":        "můžete",
			"môže":          "může",
			"každý":         "každý",
			"práca":         "práce",
			"práce":         "práce",
			"pracovnej":     "pracovní",
			"dôležitý":      "důležitý",
			"dôležité":      "důležité",
			"dôležitým":     "důležitým",
			"obrázok":       "obrázek",
			"obrázky":       "obrázky",
			"tlačidlo":      "tlačítko",
			"stránka":       "stránka",
			"slovenský":     "slovenský",
			"softvér":       "software",
			"softvéru":      "softwaru",
			"nástroj":       "nástroj",
			"nástroje":      "nástroje",
			"kurz":          "kurz",
			"kurzy":         "kurzy",
			"školenie":      "školení",
			"návod":         "návod",
			"návody":        "návody",
			"stiahnuť":      "stáhnout",
			"vytvoriť":      "vytvořit",
			"vytvorenie":    "vytvoření",
			"modelovanie":   "modelování",
			"vykresľovanie": "renderování",
			"vizualizácia":  "vizualizace",
			"vizualizácie":  "vizualizace",
			"osvetlenie":    "osvětlení",
			"materiál":      "materiál",
			"materiály":     "materiály",
			"textúry":       "textury",
			"animácia":      "animace",
			"animácie":      "animace",
			"rozlíšenie":    "rozlišení",
			"licencia":      "licence",
			"licencie":      "licence",
			"cena":          "cena",
			"zadarmo":       "zdarma",
		},
		Phrases: map[string]string{
			"v reálnom čase":        "v reálném čase",
			"za pár minút":          "za pár minut",
			"za 3 minúty":           "za 3 minuty",
			"bez kompromisov":       "bez kompromisů",
			"prihlásiť sa na kurz":  "přihlásit se na kurz",
			"prihláste sa na kurz":  "přihlaste se na kurz",
			"kontaktujte nás":       "kontaktujte nás",
			"profesionálne účely":   "profesionální účely",
			"krok za krokom":        "krok za krokem",
			"stiahnuť a vyskúšať":   "stáhnout a vyzkoušet",
			"fotorealistické zábery": "fotorealistické záběry",
		},
	}
}

// Translator applies dictionary substitutions to text fragments.
//
// Translate is a pure, total function: unknown tokens pass through
// verbatim and empty input yields empty output. RepairSpacing normalizes
// tag-adjacent spacing on serialized markup after substitution;
// preformatted regions are left untouched.
type Translator interface {
	Translate(text string) string
	RepairSpacing(markup string) string
}
