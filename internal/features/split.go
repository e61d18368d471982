package features

import "math/rand"

// TrainTestIndices shuffles row indices with the given seed and splits them by
// ratio. The same seed always yields the same split.
func TrainTestIndices(n int, testRatio float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	nTest := int(float64(n) * testRatio)
	if nTest < 1 && n > 1 {
		nTest = 1
	}
	test = append(test, perm[:nTest]...)
	train = append(train, perm[nTest:]...)
	return train, test
}
