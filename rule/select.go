package rule

import (
	"github.com/hupe1980/pfe/cover"
	"github.com/hupe1980/pfe/stats"
)

// Metrics returns the metrics of every conjunction's cover against truth,
// in input order.
func Metrics[T cover.Set[T]](cs []Conjunction, basic map[Rule]*cover.Cover[T], truth *cover.Cover[T]) ([]stats.Metrics, error) {
	out := make([]stats.Metrics, len(cs))
	for i, c := range cs {
		cc, err := CoverOf(c, basic)
		if err != nil {
			return nil, err
		}
		m, err := cc.Metrics(truth)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// DocumentMetrics is Metrics broken down per document.
func DocumentMetrics[T cover.Set[T]](cs []Conjunction, basic map[Rule]*cover.Cover[T], truth *cover.Cover[T]) ([]map[string]stats.Metrics, error) {
	out := make([]map[string]stats.Metrics, len(cs))
	for i, c := range cs {
		cc, err := CoverOf(c, basic)
		if err != nil {
			return nil, err
		}
		m, err := cc.DocumentMetrics(truth)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// Maximal drops every conjunction whose rules are a strict subset of
// another conjunction in cs. Duplicates are removed; survivors keep their
// first-occurrence order.
func Maximal(cs []Conjunction) []Conjunction {
	unique := Unique(cs)
	out := make([]Conjunction, 0, len(unique))
	for i, c := range unique {
		superseded := false
		for j, o := range unique {
			if i != j && len(o) > len(c) && c.SubsetOf(o) {
				superseded = true
				break
			}
		}
		if !superseded {
			out = append(out, c)
		}
	}
	return out
}

// Best returns the n conjunctions with the highest weight of their metrics
// against truth, highest first. NaN weights rank last and ties keep their
// input order. n <= 0 yields an empty result.
func Best[T cover.Set[T]](cs []Conjunction, basic map[Rule]*cover.Cover[T], truth *cover.Cover[T], n int, weight func(stats.Metrics) float64) ([]Conjunction, error) {
	if n <= 0 {
		return []Conjunction{}, nil
	}
	ranked, err := rank(cs, basic, truth, weight)
	if err != nil {
		return nil, err
	}
	return ranked[:min(n, len(ranked))], nil
}
