// Package classify assigns topic, seniority level, and role to extracted
// content using ordered keyword rules.
package classify

import (
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Rule is one ordered classification rule: if any term matches, the rule's
// label wins. Earlier rules take precedence over later ones.
type Rule struct {
	Label string
	Terms []string
}

// detector evaluates an ordered rule list with a single Aho-Corasick pass.
// Terms are matched whole-word: both the input text and every term are
// space-normalized and space-padded, so "go" never matches inside "good"
// and multi-word phrases match across their word boundaries.
type detector struct {
	rules    []Rule
	matcher  *ahocorasick.Matcher
	termRule []int // automaton term index -> rule index
	fallback string
}

func newDetector(rules []Rule, fallback string) *detector {
	var terms []string
	var termRule []int
	for i, rule := range rules {
		for _, t := range rule.Terms {
			norm := normalizeText(t)
			if norm == "" {
				continue
			}
			terms = append(terms, " "+norm+" ")
			termRule = append(termRule, i)
		}
	}
	return &detector{
		rules:    rules,
		matcher:  ahocorasick.NewStringMatcher(terms),
		termRule: termRule,
		fallback: fallback,
	}
}

// detect returns the label of the first rule with a matching term, or the
// fallback. The second return reports whether the fallback was used.
func (d *detector) detect(text string) (string, bool) {
	padded := " " + normalizeText(text) + " "
	hits := d.matcher.Match([]byte(padded))

	matched := make([]bool, len(d.rules))
	for _, hit := range hits {
		if hit >= 0 && hit < len(d.termRule) {
			matched[d.termRule[hit]] = true
		}
	}
	for i := range d.rules {
		if matched[i] {
			return d.rules[i].Label, false
		}
	}
	return d.fallback, true
}

// normalizeText lowercases and replaces every non-alphanumeric rune with a
// space, collapsing runs of spaces. This preserves word boundaries so the
// padded-term automaton match is a whole-word match.
func normalizeText(text string) string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
