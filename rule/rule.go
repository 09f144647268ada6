// Package rule defines positional-context rules and their conjunctions.
//
// A Rule matches a document position when the word at the given offset from
// it carries the given attribute value. A Conjunction matches where all of
// its rules match, so its cover is the intersection of the rules' basic
// covers.
package rule

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Rule is a positional offset paired with an attribute value.
type Rule struct {
	Offset int
	Value  string
}

// Compare orders rules by offset, then value.
func (r Rule) Compare(o Rule) int {
	if c := cmp.Compare(r.Offset, o.Offset); c != 0 {
		return c
	}
	return strings.Compare(r.Value, o.Value)
}

// String renders the rule as signed offset and value, e.g. "-1:DET".
func (r Rule) String() string {
	return fmt.Sprintf("%+d:%s", r.Offset, r.Value)
}

// Conjunction is a set of rules. NewConjunction keeps it sorted and free
// of duplicates; equality and Key ignore storage order either way.
type Conjunction []Rule

// Disjunction is a list of conjunctions.
type Disjunction []Conjunction

// NewConjunction returns the sorted, deduplicated conjunction of rules.
func NewConjunction(rules ...Rule) Conjunction {
	s := slices.Clone(rules)
	slices.SortFunc(s, Rule.Compare)
	return slices.Compact(s)
}

// Normalize returns c sorted and deduplicated. A conjunction that already
// is returned as is.
func (c Conjunction) Normalize() Conjunction {
	if c.normalized() {
		return c
	}
	return NewConjunction(c...)
}

func (c Conjunction) normalized() bool {
	for i := 1; i < len(c); i++ {
		if c[i-1].Compare(c[i]) >= 0 {
			return false
		}
	}
	return true
}

// Key returns the canonical identity of the rule set, suitable as a map key.
func (c Conjunction) Key() string {
	var sb strings.Builder
	for _, r := range c.Normalize() {
		sb.WriteString(strconv.Itoa(r.Offset))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(len(r.Value)))
		sb.WriteByte(':')
		sb.WriteString(r.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

// Equal reports whether both conjunctions contain the same rules.
func (c Conjunction) Equal(o Conjunction) bool {
	return slices.Equal(c.Normalize(), o.Normalize())
}

// Compare orders normalized conjunctions lexicographically.
func (c Conjunction) Compare(o Conjunction) int {
	return slices.CompareFunc(c.Normalize(), o.Normalize(), Rule.Compare)
}

// Contains reports whether r is part of the conjunction.
func (c Conjunction) Contains(r Rule) bool {
	return slices.Contains(c, r)
}

// SubsetOf reports whether every rule of c is also in o.
func (c Conjunction) SubsetOf(o Conjunction) bool {
	for _, r := range c {
		if !o.Contains(r) {
			return false
		}
	}
	return true
}

// Union returns the conjunction of all rules of c and o.
func (c Conjunction) Union(o Conjunction) Conjunction {
	rules := make([]Rule, 0, len(c)+len(o))
	rules = append(rules, c...)
	return NewConjunction(append(rules, o...)...)
}

// Without returns the rules of c that are not in o.
func (c Conjunction) Without(o Conjunction) Conjunction {
	out := make(Conjunction, 0, len(c))
	for _, r := range c.Normalize() {
		if !o.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// String renders the rules in storage order, e.g. "{-1:DET, +0:NOUN}".
func (c Conjunction) String() string {
	parts := make([]string, len(c))
	for i, r := range c {
		parts[i] = r.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Unique removes duplicate conjunctions by rule-set identity. The first
// occurrence wins and keeps its position, so the result only depends on
// the order of distinct elements, never on their multiplicity.
func Unique(cs []Conjunction) []Conjunction {
	seen := make(map[string]struct{}, len(cs))
	out := make([]Conjunction, 0, len(cs))
	for _, c := range cs {
		k := c.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c.Normalize())
	}
	return out
}

// Pairs returns every union of one conjunction from a with one from b,
// deduplicated and sorted.
func Pairs(a, b []Conjunction) []Conjunction {
	out := make([]Conjunction, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, x.Union(y))
		}
	}
	out = Unique(out)
	slices.SortFunc(out, Conjunction.Compare)
	return out
}

// Singletons returns one single-rule conjunction per rule, sorted.
// These are the usual seeds of a mining run.
func Singletons(rules []Rule) []Conjunction {
	sorted := NewConjunction(rules...)
	out := make([]Conjunction, len(sorted))
	for i, r := range sorted {
		out[i] = Conjunction{r}
	}
	return out
}
