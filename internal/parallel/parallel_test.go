package parallel

import (
	"errors"
	"testing"
)

func TestMapWithErrorPreservesOrder(t *testing.T) {
	inputs := []int{5, 1, 4, 2, 3}
	outputs, err := MapWithError(inputs, func(n int) (int, error) {
		return n * n, nil
	})
	if err != nil {
		t.Fatalf("MapWithError: %v", err)
	}
	for i, n := range inputs {
		if outputs[i] != n*n {
			t.Fatalf("outputs[%d] = %d, want %d", i, outputs[i], n*n)
		}
	}
}

func TestMapWithErrorPropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	_, err := MapWithError([]int{1, 2, 3}, func(n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got err %v, want %v", err, boom)
	}
}
