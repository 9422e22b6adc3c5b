package queue

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyQueue(t *testing.T) {
	q := New[int](nil)
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Pop()
	assert.False(t, ok, "should still be empty on a second pop")
}

func TestSingleElement(t *testing.T) {
	q := New([]int{42})
	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestMultipleElementsFIFOOrder(t *testing.T) {
	q := New([]int{1, 2, 3, 4, 5})
	for i := 1; i <= 5; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestWithStrings(t *testing.T) {
	q := New([]string{"hello", "world", "test"})
	for _, want := range []string{"hello", "world", "test"} {
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestConcurrentSingleConsumer(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	q := New(items)

	done := make(chan int)
	go func() {
		count := 0
		for {
			_, ok := q.Pop()
			if !ok {
				break
			}
			count++
		}
		done <- count
	}()

	assert.Equal(t, 100, <-done)
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestConcurrentMultipleConsumersNoDuplicates(t *testing.T) {
	const size = 1000
	items := make([]int, size)
	for i := range items {
		items[i] = i
	}
	q := New(items)

	const numConsumers = 8
	results := make(chan []int, numConsumers)
	var wg sync.WaitGroup
	wg.Add(numConsumers)
	for i := 0; i < numConsumers; i++ {
		go func() {
			defer wg.Done()
			var got []int
			for {
				v, ok := q.Pop()
				if !ok {
					break
				}
				got = append(got, v)
			}
			results <- got
		}()
	}
	wg.Wait()
	close(results)

	var all []int
	for got := range results {
		all = append(all, got...)
	}
	sort.Ints(all)

	require.Len(t, all, size)
	for i, v := range all {
		assert.Equal(t, i, v, "every item must be delivered exactly once")
	}
}

func TestDrainCountsUnconsumedItems(t *testing.T) {
	q := New([]int{1, 2, 3, 4})
	_, _ = q.Pop()
	_, _ = q.Pop()
	assert.Equal(t, 2, q.Drain())
	assert.True(t, q.Empty())
}

func TestEmptyReflectsState(t *testing.T) {
	q := New([]int{1})
	assert.False(t, q.Empty())
	_, _ = q.Pop()
	assert.True(t, q.Empty())
}
