package features

import (
	"fmt"
	"sort"
)

// Encoder maps one categorical value to one or more numeric features. Encoders
// are fitted on training values only; unseen categories encode to a neutral
// value rather than failing.
type Encoder interface {
	Names(column string) []string
	Encode(value string) []float64
}

// FitEncoder builds a label, one-hot, or frequency encoder from training values.
func FitEncoder(method string, values []string) (Encoder, error) {
	switch method {
	case "label":
		return fitLabelEncoder(values), nil
	case "onehot":
		return fitOneHotEncoder(values), nil
	case "frequency":
		return fitFrequencyEncoder(values), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", method)
	}
}

type labelEncoder struct {
	index map[string]int
}

func fitLabelEncoder(values []string) *labelEncoder {
	vocab := sortedVocab(values)
	index := make(map[string]int, len(vocab))
	for i, value := range vocab {
		index[value] = i
	}
	return &labelEncoder{index: index}
}

func (e *labelEncoder) Names(column string) []string {
	return []string{column}
}

func (e *labelEncoder) Encode(value string) []float64 {
	if i, ok := e.index[value]; ok {
		return []float64{float64(i)}
	}
	return []float64{-1}
}

type oneHotEncoder struct {
	vocab []string
	index map[string]int
}

func fitOneHotEncoder(values []string) *oneHotEncoder {
	vocab := sortedVocab(values)
	index := make(map[string]int, len(vocab))
	for i, value := range vocab {
		index[value] = i
	}
	return &oneHotEncoder{vocab: vocab, index: index}
}

func (e *oneHotEncoder) Names(column string) []string {
	names := make([]string, len(e.vocab))
	for i, value := range e.vocab {
		names[i] = column + "=" + value
	}
	return names
}

func (e *oneHotEncoder) Encode(value string) []float64 {
	vec := make([]float64, len(e.vocab))
	if i, ok := e.index[value]; ok {
		vec[i] = 1
	}
	return vec
}

type frequencyEncoder struct {
	freq map[string]float64
}

func fitFrequencyEncoder(values []string) *frequencyEncoder {
	counts := make(map[string]float64, len(values))
	for _, value := range values {
		counts[value]++
	}
	total := float64(len(values))
	for value := range counts {
		counts[value] /= total
	}
	return &frequencyEncoder{freq: counts}
}

func (e *frequencyEncoder) Names(column string) []string {
	return []string{column + "_freq"}
}

func (e *frequencyEncoder) Encode(value string) []float64 {
	return []float64{e.freq[value]}
}

func sortedVocab(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	vocab := make([]string, 0, len(values))
	for _, value := range values {
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		vocab = append(vocab, value)
	}
	sort.Strings(vocab)
	return vocab
}
