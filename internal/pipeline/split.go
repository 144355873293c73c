package pipeline

import (
	"math"
	"math/rand"
)

// Split partitions X and y into train and test subsets using a seeded
// pseudo-random permutation: the first round(n*(1-testFraction)) permuted
// indices become TRAIN, the remainder TEST. The partition is a deterministic
// function of (n, testFraction, seed).
func Split(X [][]float64, y []float64, testFraction float64, seed int64) (XTrain, XTest [][]float64, yTrain, yTest []float64) {
	n := len(X)
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTrain := int(math.Round(float64(n) * (1 - testFraction)))
	for i, idx := range perm {
		if i < nTrain {
			XTrain = append(XTrain, X[idx])
			yTrain = append(yTrain, y[idx])
		} else {
			XTest = append(XTest, X[idx])
			yTest = append(yTest, y[idx])
		}
	}
	return XTrain, XTest, yTrain, yTest
}
