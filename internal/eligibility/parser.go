package eligibility

import (
	"strings"

	"github.com/martagraells/extraplan/internal/domain"
)

// Clause is one alternative of a parsed grade expression. A child matching
// any clause of an expression is eligible.
type Clause interface{ clause() }

// Alternatives matches when the child's rank equals any listed rank
// (e.g. "I4/I5").
type Alternatives struct {
	Ranks []int
}

// Range matches when the child's rank falls within [Start, End] inclusive
// (e.g. "I4/I5-2nd": Start = min rank of the left alternatives).
type Range struct {
	Start int
	End   int
}

func (Alternatives) clause() {}
func (Range) clause()        {}

var clauseSplitter = strings.NewReplacer(";", ",", "&", ",")

// Parse turns a free-text grade expression into its usable clauses.
// Parenthetical annotations are display notes and are stripped first.
// Malformed clauses and unrecognized tokens are dropped silently; an
// expression may legitimately parse to zero clauses.
func Parse(expr string) []Clause {
	var clauses []Clause
	for _, part := range splitClauses(stripParens(expr)) {
		if c, ok := parseClause(part); ok {
			clauses = append(clauses, c)
		}
	}
	return clauses
}

// stripParens removes every "(...)" group, tolerating an unclosed paren by
// dropping the rest of the string.
func stripParens(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitClauses separates alternative clauses on commas, semicolons,
// ampersands, or the standalone word "and".
func splitClauses(s string) []string {
	normalized := clauseSplitter.Replace(s)
	var fields []string
	for _, f := range strings.Split(normalized, ",") {
		for _, w := range splitOnWordAnd(f) {
			if t := strings.TrimSpace(w); t != "" {
				fields = append(fields, t)
			}
		}
	}
	return fields
}

func splitOnWordAnd(s string) []string {
	var parts []string
	rest := s
	for {
		idx := indexWordAnd(rest)
		if idx < 0 {
			parts = append(parts, rest)
			return parts
		}
		parts = append(parts, rest[:idx])
		rest = rest[idx+3:]
	}
}

// indexWordAnd finds a case-insensitive "and" that is not glued to adjacent
// letters (so "band" or "Andy" never split).
func indexWordAnd(s string) int {
	lower := strings.ToLower(s)
	from := 0
	for {
		i := strings.Index(lower[from:], "and")
		if i < 0 {
			return -1
		}
		i += from
		beforeOK := i == 0 || !isLetter(lower[i-1])
		afterOK := i+3 >= len(lower) || !isLetter(lower[i+3])
		if beforeOK && afterOK {
			return i
		}
		from = i + 3
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// parseClause parses a single clause: either "TOK/TOK/..." alternatives or a
// "LEFT-RIGHT" range where LEFT may itself carry /-alternatives.
func parseClause(s string) (Clause, bool) {
	sides := splitDash(s)
	switch len(sides) {
	case 1:
		ranks := parseAlternatives(sides[0])
		if len(ranks) == 0 {
			return nil, false
		}
		return Alternatives{Ranks: ranks}, true
	case 2:
		left := parseAlternatives(sides[0])
		if len(left) == 0 {
			return nil, false
		}
		end, ok := parseToken(sides[1])
		if !ok {
			return nil, false
		}
		start := left[0]
		for _, r := range left[1:] {
			if r < start {
				start = r
			}
		}
		return Range{Start: start, End: end}, true
	default:
		// Two or more dashes: the clause contributes nothing.
		return nil, false
	}
}

func splitDash(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "–", "-"), "-")
}

func parseAlternatives(s string) []int {
	var ranks []int
	for _, tok := range strings.Split(s, "/") {
		if r, ok := parseToken(tok); ok {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

func parseToken(s string) (int, bool) {
	g, ok := domain.ParseGrade(s)
	if !ok {
		return 0, false
	}
	return mustRank(g), true
}

func mustRank(g domain.Grade) int {
	r, _ := g.Rank()
	return r
}
