package hmm_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/hmm"
)

// TestConcurrentInference shares one Model across goroutines running the
// read-only algorithms; run with -race to catch unsynchronized writes.
func TestConcurrentInference(t *testing.T) {
	m := weatherModel(t)
	obs := []int{0, 1, 0, 2}

	const workers = 16
	var wg sync.WaitGroup
	paths := make([][]int, workers)
	likes := make([]float64, workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			a, err := hmm.Forward(obs, m)
			if err != nil {
				errs[w] = err
				return
			}
			likes[w] = hmm.Likelihood(a.Coefs)
			paths[w], errs[w] = hmm.Viterbi(obs, m)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		assert.Equal(t, []int{1, 1, 1, 0}, paths[w])
		assert.Equal(t, likes[0], likes[w])
	}
}
