package model

import (
	"errors"
	"math/rand"
	"sort"
)

// RegressionTree greedily splits on the variance (SSE) reduction of the
// target. Depth and minimum split size bound the tree; MaxFeatures > 0
// restricts each split to a random feature subset, which is what the forest
// uses for decorrelation.
type RegressionTree struct {
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int
	Seed            int64

	root       *treeNode
	nFeatures  int
	importance []float64 // raw SSE gain per feature
	rng        *rand.Rand
}

type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// NewRegressionTree returns a tree with the given bounds. maxFeatures <= 0
// considers every feature at each split.
func NewRegressionTree(maxDepth, minSamplesSplit int, seed int64) *RegressionTree {
	return &RegressionTree{
		MaxDepth:        maxDepth,
		MinSamplesSplit: minSamplesSplit,
		Seed:            seed,
	}
}

func (t *RegressionTree) Name() string { return "Decision Tree" }

// Fit grows the tree on X, y.
func (t *RegressionTree) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("tree: empty matrix")
	}
	if len(X) != len(y) {
		return errors.New("tree: X and y length mismatch")
	}
	t.nFeatures = len(X[0])
	t.importance = make([]float64, t.nFeatures)
	t.rng = rand.New(rand.NewSource(t.Seed))

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	t.root = t.build(X, y, idx, 0)
	return nil
}

// Predict walks each row down to a leaf.
func (t *RegressionTree) Predict(X [][]float64) []float64 {
	pred := make([]float64, len(X))
	for i, row := range X {
		pred[i] = t.predictRow(row)
	}
	return pred
}

func (t *RegressionTree) predictRow(row []float64) float64 {
	node := t.root
	for node != nil && !node.leaf {
		if row[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	if node == nil {
		return 0
	}
	return node.value
}

// FeatureImportance reports normalized SSE gains accumulated per feature.
func (t *RegressionTree) FeatureImportance() []float64 {
	scores := append([]float64(nil), t.importance...)
	total := 0.0
	for _, s := range scores {
		total += s
	}
	if total > 0 {
		for j := range scores {
			scores[j] /= total
		}
	}
	return scores
}

// rawImportance exposes unnormalized gains for ensemble aggregation.
func (t *RegressionTree) rawImportance() []float64 { return t.importance }

func (t *RegressionTree) build(X [][]float64, y []float64, idx []int, depth int) *treeNode {
	sum, sumSq := 0.0, 0.0
	for _, i := range idx {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	n := float64(len(idx))
	mean := sum / n
	sse := sumSq - sum*sum/n

	node := &treeNode{leaf: true, value: mean}
	if depth >= t.MaxDepth || len(idx) < t.MinSamplesSplit || sse <= 0 {
		return node
	}

	feature, threshold, gain := t.bestSplit(X, y, idx, sse)
	if gain <= 0 {
		return node
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return node
	}

	t.importance[feature] += gain
	node.leaf = false
	node.feature = feature
	node.threshold = threshold
	node.left = t.build(X, y, left, depth+1)
	node.right = t.build(X, y, right, depth+1)
	return node
}

func (t *RegressionTree) bestSplit(X [][]float64, y []float64, idx []int, parentSSE float64) (int, float64, float64) {
	bestFeature, bestThreshold, bestGain := -1, 0.0, 0.0

	sorted := make([]int, len(idx))
	for _, feature := range t.candidateFeatures() {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, b int) bool {
			return X[sorted[a]][feature] < X[sorted[b]][feature]
		})

		leftSum, leftSumSq := 0.0, 0.0
		totalSum, totalSumSq := 0.0, 0.0
		for _, i := range sorted {
			totalSum += y[i]
			totalSumSq += y[i] * y[i]
		}

		n := len(sorted)
		for pos := 1; pos < n; pos++ {
			prev := sorted[pos-1]
			leftSum += y[prev]
			leftSumSq += y[prev] * y[prev]

			if X[prev][feature] == X[sorted[pos]][feature] {
				continue
			}

			nl := float64(pos)
			nr := float64(n - pos)
			rightSum := totalSum - leftSum
			rightSumSq := totalSumSq - leftSumSq

			sseLeft := leftSumSq - leftSum*leftSum/nl
			sseRight := rightSumSq - rightSum*rightSum/nr
			gain := parentSSE - sseLeft - sseRight
			if gain > bestGain {
				bestGain = gain
				bestFeature = feature
				bestThreshold = (X[prev][feature] + X[sorted[pos]][feature]) / 2
			}
		}
	}

	if bestFeature < 0 {
		return -1, 0, 0
	}
	return bestFeature, bestThreshold, bestGain
}

func (t *RegressionTree) candidateFeatures() []int {
	all := make([]int, t.nFeatures)
	for j := range all {
		all[j] = j
	}
	if t.MaxFeatures <= 0 || t.MaxFeatures >= t.nFeatures {
		return all
	}
	t.rng.Shuffle(len(all), func(a, b int) { all[a], all[b] = all[b], all[a] })
	return all[:t.MaxFeatures]
}
