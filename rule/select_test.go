package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pfe/cover"
	"github.com/hupe1980/pfe/errs"
	"github.com/hupe1980/pfe/rule"
	"github.com/hupe1980/pfe/stats"
)

func TestMetrics(t *testing.T) {
	basic, truth := basicCovers(t)
	missing := rule.Rule{Offset: 3, Value: "X"}

	cs := []rule.Conjunction{{r1}, {r2}, {r3}, {r1, r2}, {missing}}
	got, err := rule.Metrics(cs, basic, truth)
	require.NoError(t, err)
	assert.Equal(t, []stats.Metrics{
		stats.New(2, 3, 4, 1),
		stats.New(3, 3, 4, 0),
		stats.New(1, 0, 4, 2),
		stats.New(2, 0, 7, 1),
		stats.New(0, 0, 0, 3),
	}, got)

	t.Run("Empty", func(t *testing.T) {
		got, err := rule.Metrics(nil, basic, truth)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		other, err := cover.OrderedFromIndexMap(map[string][]int{"a": {1}}, map[string]int{"a": 7})
		require.NoError(t, err)
		_, err = rule.Metrics([]rule.Conjunction{{r1}}, basic, other)
		require.ErrorIs(t, err, errs.ErrSizeMismatch)
	})
}

func TestDocumentMetrics(t *testing.T) {
	basic, truth := basicCovers(t)

	got, err := rule.DocumentMetrics([]rule.Conjunction{{r3}, {r1, r2}}, basic, truth)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, map[string]stats.Metrics{
		"a": stats.New(1, 0, 4, 1),
		"b": stats.New(0, 0, 0, 1),
	}, got[0])
	assert.Equal(t, map[string]stats.Metrics{
		"a": stats.New(1, 0, 4, 1),
		"b": stats.New(1, 0, 3, 0),
	}, got[1])
}

func TestMaximal(t *testing.T) {
	tests := []struct {
		name string
		in   []rule.Conjunction
		want []rule.Conjunction
	}{
		{"Empty", nil, []rule.Conjunction{}},
		{"Disjoint", []rule.Conjunction{{r1}, {r2}}, []rule.Conjunction{{r1}, {r2}}},
		{"SubsetsDropped", []rule.Conjunction{{r1}, {r2}, {r1, r2}, {r3}}, []rule.Conjunction{{r1, r2}, {r3}}},
		{"DuplicatesKeepOne", []rule.Conjunction{{r2, r1}, {r1, r2}, {r1}}, []rule.Conjunction{{r1, r2}}},
		{"Chain", []rule.Conjunction{{r1}, {r1, r2}, {r1, r2, r3}}, []rule.Conjunction{{r1, r2, r3}}},
		{"Overlapping", []rule.Conjunction{{r1, r2}, {r2, r3}, {r2}}, []rule.Conjunction{{r1, r2}, {r2, r3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Maximal(tt.in))
		})
	}
}

func TestBest(t *testing.T) {
	basic, truth := basicCovers(t)
	missing := rule.Rule{Offset: 3, Value: "X"}
	cs := []rule.Conjunction{{missing}, {r1}, {r2}, {r3}, {r1, r2}}

	tests := []struct {
		name   string
		n      int
		weight func(stats.Metrics) float64
		want   []rule.Conjunction
	}{
		{"TopTwoByPrecision", 2, stats.Metrics.Precision, []rule.Conjunction{{r3}, {r1, r2}}},
		{"AllByPrecision", 10, stats.Metrics.Precision, []rule.Conjunction{{r3}, {r1, r2}, {r2}, {r1}, {missing}}},
		{"TopByRecall", 1, stats.Metrics.Recall, []rule.Conjunction{{r2}}},
		{"Zero", 0, stats.Metrics.Recall, []rule.Conjunction{}},
		{"Negative", -1, stats.Metrics.Recall, []rule.Conjunction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.Best(cs, basic, truth, tt.n, tt.weight)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
