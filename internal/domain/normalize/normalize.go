package normalize

import (
	"regexp"
	"sort"
	"strings"

	"career-compass/internal/domain/catalog"
)

// Entry is one user-declared skill after parsing. Level is empty unless the
// user stated it explicitly ("SQL - Intermediate", "Python (Advanced)").
type Entry struct {
	Raw   string
	Name  string
	Level catalog.Difficulty
}

var (
	parenLevelRe = regexp.MustCompile(`(?i)^(.+?)\s*\(\s*(Beginner|Intermediate|Advanced)\s*\)$`)
	sepLevelRe   = regexp.MustCompile(`(?i)^(.+?)\s*[-:]\s*(Beginner|Intermediate|Advanced)$`)
)

func ParseEntry(raw string) Entry {
	token := strings.TrimSpace(raw)
	e := Entry{Raw: raw, Name: token}
	if token == "" {
		e.Name = ""
		return e
	}

	if m := parenLevelRe.FindStringSubmatch(token); m != nil {
		e.Name = strings.TrimSpace(m[1])
		e.Level, _ = catalog.ParseDifficulty(m[2])
		return e
	}
	if m := sepLevelRe.FindStringSubmatch(token); m != nil {
		e.Name = strings.TrimSpace(m[1])
		e.Level, _ = catalog.ParseDifficulty(m[2])
		return e
	}
	return e
}

// ParseList parses raw tokens, dropping blanks. It never fails: a token
// nobody recognizes still becomes an Entry and simply matches nothing later.
func ParseList(tokens []string) []Entry {
	out := make([]Entry, 0, len(tokens))
	for _, t := range tokens {
		e := ParseEntry(t)
		if e.Name == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SplitFreeText splits a pasted skill list on newlines, falling back to
// commas when the text is a single line.
func SplitFreeText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	sep := ","
	if strings.Contains(text, "\n") {
		sep = "\n"
	}
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type Normalizer struct {
	store *catalog.Store
}

func New(store *catalog.Store) *Normalizer {
	return &Normalizer{store: store}
}

// Resolve maps a free-text token to the set of canonical skill names it
// could denote: exact synonym-table hit first, then containment against
// canonical names and their aliases. Unknown tokens resolve to nothing;
// multiple hits are all returned and disambiguated by the caller.
func (n *Normalizer) Resolve(token string) []string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil
	}

	hits := map[string]struct{}{}
	for canonical, aliases := range n.store.SynonymTable() {
		if token == canonical {
			hits[canonical] = struct{}{}
			continue
		}
		for _, a := range aliases {
			if token == a {
				hits[canonical] = struct{}{}
				break
			}
		}
	}
	for _, name := range n.store.SkillNames() {
		if strings.ToLower(name) == token {
			hits[strings.ToLower(name)] = struct{}{}
		}
	}
	if len(hits) == 0 {
		for canonical, aliases := range n.store.SynonymTable() {
			if strings.Contains(canonical, token) || strings.Contains(token, canonical) {
				hits[canonical] = struct{}{}
				continue
			}
			for _, a := range aliases {
				if strings.Contains(a, token) || strings.Contains(token, a) {
					hits[canonical] = struct{}{}
					break
				}
			}
		}
		for _, name := range n.store.SkillNames() {
			lower := strings.ToLower(name)
			if strings.Contains(lower, token) || strings.Contains(token, lower) {
				hits[lower] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(hits))
	for h := range hits {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// Profile is a user's expanded skill set: every alias reachable from the
// declared entries, each pointing back at the entry that introduced it.
type Profile struct {
	entries  []Entry
	expanded map[string]Entry
}

func (n *Normalizer) Expand(entries []Entry) Profile {
	p := Profile{entries: entries, expanded: make(map[string]Entry)}
	for _, e := range entries {
		name := strings.ToLower(e.Name)
		if name == "" {
			continue
		}
		p.expanded[name] = e
		for _, canonical := range n.Resolve(e.Name) {
			for _, alias := range n.store.SynonymsFor(canonical) {
				p.expanded[alias] = e
			}
		}
	}
	return p
}

func (p Profile) Empty() bool {
	return len(p.expanded) == 0
}

func (p Profile) Entries() []Entry {
	return p.entries
}

// Has reports whether the profile covers a catalog skill: the skill name
// itself or any of its registered synonyms appears in the expanded set.
func (p Profile) Has(store *catalog.Store, skill string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(skill))
	if e, ok := p.expanded[key]; ok {
		return e, true
	}
	for _, alias := range store.SynonymsFor(key) {
		if e, ok := p.expanded[alias]; ok {
			return e, true
		}
	}
	return Entry{}, false
}
