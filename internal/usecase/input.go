package usecase

import (
	"sort"
	"strings"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/normalize"
	"career-compass/internal/domain/similarity"
)

// SkillInput is the user-supplied skill set: an explicit list, pasted free
// text, or both.
type SkillInput struct {
	Skills []string
	Text   string
}

func (in SkillInput) tokens() []string {
	out := make([]string, 0, len(in.Skills))
	out = append(out, in.Skills...)
	out = append(out, normalize.SplitFreeText(in.Text)...)
	return out
}

// fingerprint is the canonical cache-key material for this input: order
// of declared skills must not change the key.
func (in SkillInput) fingerprint() string {
	tokens := in.tokens()
	lowered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(t)))
	}
	sort.Strings(lowered)
	return strings.Join(lowered, "|")
}

// freeText is what the semantic model scores: declared skills plus any
// pasted text, as one document.
func (in SkillInput) freeText() string {
	parts := make([]string, 0, len(in.Skills)+1)
	parts = append(parts, in.Skills...)
	if t := strings.TrimSpace(in.Text); t != "" {
		parts = append(parts, t)
	}
	return strings.Join(parts, " ")
}

// CatalogSource hands out the current immutable catalog snapshot pieces.
type CatalogSource interface {
	Store() *catalog.Store
	Normalizer() *normalize.Normalizer
	Model() *similarity.Model
}

// scorableCareer resolves a career by name and rejects ones the engine
// cannot analyze: no requirements at all, or no required rows to weight
// against.
func scorableCareer(store *catalog.Store, name string) (*catalog.Career, error) {
	target, ok := store.Career(name)
	if !ok {
		return nil, ErrCareerNotFound
	}
	if !target.Scorable() || target.RequiredImportanceSum() == 0 {
		return nil, ErrUnscorable
	}
	return target, nil
}

func buildProfile(src CatalogSource, in SkillInput) (normalize.Profile, error) {
	n := src.Normalizer()
	if n == nil {
		return normalize.Profile{}, ErrInternal
	}
	p := n.Expand(normalize.ParseList(in.tokens()))
	if p.Empty() {
		return normalize.Profile{}, ErrEmptySkillProfile
	}
	return p, nil
}
