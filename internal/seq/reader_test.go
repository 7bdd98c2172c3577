package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/golddranks/scoped-stack/pkg/stack"
)

func TestReader(t *testing.T) {
	t.Cleanup(func() {
		goleak.VerifyNone(t)
	})

	t.Run("reads_in_chunks", func(t *testing.T) {
		r := NewReader(slices.Values([]int{1, 2, 3, 4, 5}))
		defer r.Close()

		buf := make([]int, 2)

		require.Equal(t, 2, r.Read(buf))
		require.Equal(t, []int{1, 2}, buf)

		require.Equal(t, 2, r.Read(buf))
		require.Equal(t, []int{3, 4}, buf)

		require.Equal(t, 1, r.Read(buf))
		require.Equal(t, 5, buf[0])

		require.Equal(t, 0, r.Read(buf))
	})

	t.Run("exact_multiple_needs_extra_read", func(t *testing.T) {
		r := NewReader(slices.Values([]int{1, 2}))
		defer r.Close()

		buf := make([]int, 2)
		require.Equal(t, 2, r.Read(buf))
		require.Equal(t, 0, r.Read(buf))
	})

	t.Run("close_before_exhaustion", func(t *testing.T) {
		r := NewReader(slices.Values([]int{1, 2, 3}))

		buf := make([]int, 1)
		require.Equal(t, 1, r.Read(buf))
		require.NoError(t, r.Close())
		require.NoError(t, r.Close())
		require.Equal(t, 0, r.Read(buf))
	})

	t.Run("reads_stack_values_top_to_bottom", func(t *testing.T) {
		s := stack.New[string]().Push("a").Push("b").Push("c")
		r := NewReader(s.Values())
		defer r.Close()

		buf := make([]string, 5)
		n := r.Read(buf)
		require.Equal(t, []string{"c", "b", "a"}, buf[:n])
	})
}

func TestBatches(t *testing.T) {
	t.Cleanup(func() {
		goleak.VerifyNone(t)
	})

	tests := []struct {
		name   string
		values []int
		size   int
		want   [][]int
	}{
		{name: "empty", values: nil, size: 3, want: nil},
		{name: "uneven", values: []int{1, 2, 3, 4, 5}, size: 2, want: [][]int{{1, 2}, {3, 4}, {5}}},
		{name: "even", values: []int{1, 2, 3, 4}, size: 2, want: [][]int{{1, 2}, {3, 4}}},
		{name: "larger_than_input", values: []int{1, 2}, size: 10, want: [][]int{{1, 2}}},
		{name: "non_positive_size", values: []int{1, 2}, size: 0, want: [][]int{{1}, {2}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, slices.Collect(Batches(slices.Values(test.values), test.size)))
		})
	}

	t.Run("stops_early", func(t *testing.T) {
		var got [][]int
		for batch := range Batches(slices.Values([]int{1, 2, 3, 4, 5}), 2) {
			got = append(got, batch)
			break
		}
		require.Equal(t, [][]int{{1, 2}}, got)
	})
}
