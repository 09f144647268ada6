// Package stats derives classification metrics from a confusion matrix.
//
// A Metrics value is produced by comparing a predicted cover against a
// reference cover. Every ratio with a zero denominator is a quiet NaN,
// never zero and never an error: callers must test with Defined (or
// math.IsNaN) before comparing, since NaN compares false against everything.
package stats

import (
	"fmt"
	"math"
)

// Metrics is an immutable confusion matrix.
type Metrics struct {
	TP int64
	FP int64
	TN int64
	FN int64
}

// New returns the confusion matrix (tp, fp, tn, fn).
func New(tp, fp, tn, fn int64) Metrics {
	return Metrics{TP: tp, FP: fp, TN: tn, FN: fn}
}

// Add returns the element-wise sum of m and o.
func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		TP: m.TP + o.TP,
		FP: m.FP + o.FP,
		TN: m.TN + o.TN,
		FN: m.FN + o.FN,
	}
}

// Total returns tp+fp+tn+fn.
func (m Metrics) Total() int64 {
	return m.TP + m.FP + m.TN + m.FN
}

func ratio(num, den int64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}

// Precision returns tp/(tp+fp).
func (m Metrics) Precision() float64 {
	return ratio(m.TP, m.TP+m.FP)
}

// Recall returns tp/(tp+fn).
func (m Metrics) Recall() float64 {
	return ratio(m.TP, m.TP+m.FN)
}

// F1 returns the harmonic mean of precision and recall.
// It is NaN when either is undefined or both are zero.
func (m Metrics) F1() float64 {
	p := m.Precision()
	r := m.Recall()
	if math.IsNaN(p) || math.IsNaN(r) || p+r < epsilon {
		return math.NaN()
	}
	return 2 * p * r / (p + r)
}

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 0x1p-52

// Accuracy returns (tp+tn)/N.
func (m Metrics) Accuracy() float64 {
	return ratio(m.TP+m.TN, m.Total())
}

// FalsePositiveRate returns fp/(fp+tn).
func (m Metrics) FalsePositiveRate() float64 {
	return ratio(m.FP, m.FP+m.TN)
}

// Specificity returns 1 - FalsePositiveRate.
func (m Metrics) Specificity() float64 {
	return 1 - m.FalsePositiveRate()
}

// FalseNegativeRate returns fn/(tp+fn).
func (m Metrics) FalseNegativeRate() float64 {
	return ratio(m.FN, m.TP+m.FN)
}

// Matthews returns the Matthews correlation coefficient.
//
// The four-factor denominator overflows int64 for corpora of a few hundred
// thousand positions, so it is accumulated in float64.
func (m Metrics) Matthews() float64 {
	den := float64(m.TP+m.FP) * float64(m.TP+m.FN) * float64(m.TN+m.FP) * float64(m.TN+m.FN)
	if den == 0 {
		return math.NaN()
	}
	num := float64(m.TP)*float64(m.TN) - float64(m.FP)*float64(m.FN)
	return num / math.Sqrt(den)
}

// Support returns tp+fp, the number of predicted positives.
func (m Metrics) Support() int64 {
	return m.TP + m.FP
}

// All returns every count and ratio keyed by name.
func (m Metrics) All() map[string]float64 {
	return map[string]float64{
		"tp":          float64(m.TP),
		"fp":          float64(m.FP),
		"tn":          float64(m.TN),
		"fn":          float64(m.FN),
		"precision":   m.Precision(),
		"recall":      m.Recall(),
		"f1score":     m.F1(),
		"accuracy":    m.Accuracy(),
		"fprate":      m.FalsePositiveRate(),
		"specificity": m.Specificity(),
		"fnrate":      m.FalseNegativeRate(),
		"matthews":    m.Matthews(),
		"support":     float64(m.Support()),
	}
}

// String renders the counts with precision and recall.
func (m Metrics) String() string {
	return fmt.Sprintf("tp=%d fp=%d tn=%d fn=%d precision=%.4f recall=%.4f",
		m.TP, m.FP, m.TN, m.FN, m.Precision(), m.Recall())
}

// Defined reports whether v is a defined ratio (not NaN).
func Defined(v float64) bool {
	return !math.IsNaN(v)
}
