package solver

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gmofishsauce/gtwbot/lib"
)

// Word-frequency landmarks and the costs assigned at them. Frequencies
// are Zipf-scale values; the map from frequency to cost is linear
// between the landmarks.
const (
	freqMean = 1.75
	freqMax  = 6.4

	costRare   = 2.0
	costMean   = 1.0
	costCommon = 0.6
)

// A CostModel maps each guess index to a positive cost derived from
// word frequency. Common words are cheap, rare words are expensive,
// and words missing from the frequency table cost the most. The model
// also owns the frequency-descending iteration order used by the
// selector policies that prefer common words.
type CostModel struct {
	costs  []float64
	sorted []int
}

// LoadFrequencies reads a word -> frequency mapping. The file is a
// YAML (or JSON) document of word: frequency pairs; words not in the
// file are treated as frequency 0.
func LoadFrequencies(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read frequencies")
	}
	freqs := make(map[string]float64)
	if err := yaml.Unmarshal(raw, &freqs); err != nil {
		return nil, errors.Wrap(err, "decode frequencies")
	}
	return freqs, nil
}

// NewCostModel builds the cost vector and the sorted iteration order
// for a guess corpus. A nil or empty frequency map is allowed; every
// word then takes the rare-word cost and the iteration order is corpus
// order.
func NewCostModel(freqs map[string]float64, guesses *gtw.Corpus) *CostModel {
	n := guesses.Size()
	m := &CostModel{
		costs:  make([]float64, n),
		sorted: make([]int, n),
	}
	raw := make([]float64, n)
	for i, w := range guesses.Words() {
		raw[i] = freqs[w]
		m.costs[i] = wordCost(raw[i])
		m.sorted[i] = i
	}
	// High frequency first; ties stay in corpus order so the order is
	// deterministic.
	sort.SliceStable(m.sorted, func(i, j int) bool {
		return raw[m.sorted[i]] > raw[m.sorted[j]]
	})
	return m
}

// wordCost is the piecewise-linear map from raw frequency to cost:
// costRare at frequency 0 down to costMean at freqMean, then down to
// costCommon at freqMax.
func wordCost(f float64) float64 {
	if f <= freqMean {
		return costRare - (f/freqMean)*(costRare-costMean)
	}
	return costMean - ((f-freqMean)/(freqMax-freqMean))*(costMean-costCommon)
}

// Cost returns the cost of the guess at the given index.
func (m *CostModel) Cost(g int) float64 {
	return m.costs[g]
}

// SortedGuessIndices returns all guess indices in descending order of
// raw frequency. The caller must not modify the returned slice.
func (m *CostModel) SortedGuessIndices() []int {
	return m.sorted
}
