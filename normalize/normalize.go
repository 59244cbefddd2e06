package normalize

import (
	"errors"
	"fmt"
	"math"
	"sort"

	amr "github.com/VinzentRisch/q2-amr"
	"github.com/mingzhi/gomath/stat/desc"
)

// TPM rescales every sample to transcripts per million: each count is
// divided by its gene length, then scaled so the per-sample rates sum
// to one million. Every feature of the table must have a length.
func TPM(t *amr.CountTable, lengths map[string]float64) (*amr.CountTable, error) {
	for _, feature := range t.Features() {
		l, found := lengths[feature]
		if !found {
			return nil, fmt.Errorf("no gene length for feature %q", feature)
		}
		if l <= 0 {
			return nil, fmt.Errorf("non-positive gene length for feature %q", feature)
		}
	}

	out := amr.NewCountTable()
	for _, sample := range t.Samples() {
		var denom float64
		for _, feature := range t.Features() {
			denom += t.Get(sample, feature) / lengths[feature]
		}
		for _, feature := range t.Features() {
			var v float64
			if denom > 0 {
				v = t.Get(sample, feature) / lengths[feature] * 1e6 / denom
			}
			out.Set(sample, feature, v)
		}
	}
	return out, nil
}

// MOR normalizes with the median-of-ratios method. A reference pseudo
// sample is built from the geometric mean of each gene across samples;
// a sample's size factor is the median of its ratios against the
// reference over genes with no zero anywhere. Returns the normalized
// table and the size factor per sample.
func MOR(t *amr.CountTable) (*amr.CountTable, map[string]float64, error) {
	samples := t.Samples()
	features := t.Features()

	// Genes with a zero in any sample have no geometric mean and are
	// excluded from the size factor estimate.
	geoMeans := make(map[string]float64)
	for _, feature := range features {
		mean := desc.NewMean()
		allPositive := true
		for _, sample := range samples {
			v := t.Get(sample, feature)
			if v <= 0 {
				allPositive = false
				break
			}
			mean.Increment(math.Log(v))
		}
		if allPositive {
			geoMeans[feature] = math.Exp(mean.GetResult())
		}
	}
	if len(geoMeans) == 0 {
		return nil, nil, errors.New("cannot compute size factors: every gene has a zero count in at least one sample")
	}

	factors := make(map[string]float64)
	for _, sample := range samples {
		ratios := make([]float64, 0, len(geoMeans))
		for feature, gm := range geoMeans {
			ratios = append(ratios, t.Get(sample, feature)/gm)
		}
		factors[sample] = median(ratios)
	}

	out := amr.NewCountTable()
	for _, sample := range samples {
		for _, feature := range features {
			out.Set(sample, feature, t.Get(sample, feature)/factors[sample])
		}
	}
	return out, factors, nil
}

func median(xs []float64) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}
