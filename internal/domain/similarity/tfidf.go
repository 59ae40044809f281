package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Model is a TF-IDF vector space fitted once over the career description
// corpus. Fitting happens at startup; scoring is read-only afterwards.
type Model struct {
	vocab map[string]int
	idf   []float64
	docs  map[string][]float64
}

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "of": {}, "on": {}, "or": {}, "requires": {},
	"that": {}, "the": {}, "to": {}, "user": {}, "with": {},
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	out := fields[:0]
	for _, f := range fields {
		if _, stop := stopwords[f]; !stop {
			out = append(out, f)
		}
	}
	return out
}

// Fit builds the vocabulary and smoothed IDF weights from the given corpus
// and precomputes an L2-normalized vector per document key.
func Fit(corpus map[string]string) *Model {
	m := &Model{
		vocab: make(map[string]int),
		docs:  make(map[string][]float64, len(corpus)),
	}

	terms := make([]string, 0)
	df := map[string]int{}
	tokenized := make(map[string][]string, len(corpus))
	keys := make([]string, 0, len(corpus))
	for key, text := range corpus {
		keys = append(keys, key)
		toks := tokenize(text)
		tokenized[key] = toks
		seen := map[string]struct{}{}
		for _, t := range toks {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			if _, known := df[t]; !known {
				terms = append(terms, t)
			}
			df[t]++
		}
	}
	sort.Strings(keys)
	sort.Strings(terms)

	for i, t := range terms {
		m.vocab[t] = i
	}
	n := float64(len(corpus))
	m.idf = make([]float64, len(terms))
	for i, t := range terms {
		m.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	for _, key := range keys {
		m.docs[key] = m.vectorize(tokenized[key])
	}
	return m
}

func (m *Model) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(m.idf))
	for _, t := range tokens {
		if idx, ok := m.vocab[t]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		vec[i] *= m.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Score computes the cosine similarity between free text and a fitted
// document, in [0,1]. Unknown document keys score zero.
func (m *Model) Score(text string, docKey string) float64 {
	doc, ok := m.docs[docKey]
	if !ok {
		return 0
	}
	vec := m.vectorize(tokenize(text))
	var dot float64
	for i := range vec {
		dot += vec[i] * doc[i]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
