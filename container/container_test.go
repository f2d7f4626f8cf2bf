package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet_InsertionOrder(t *testing.T) {
	s := NewOrderedSet[string]()
	require.True(t, s.Add("b"))
	require.True(t, s.Add("a"))
	require.False(t, s.Add("b"), "re-adding an existing member must be a no-op")
	assert.Equal(t, []string{"b", "a"}, s.Items())
	assert.True(t, s.Contains("a"))
	assert.Equal(t, 2, s.Len())

	require.True(t, s.Remove("b"))
	assert.Equal(t, []string{"a"}, s.Items())
	assert.False(t, s.Remove("missing"))
}

func TestOrderedMap_PreservesFirstInsertPosition(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("x", 10) // reassignment keeps original position

	assert.Equal(t, []string{"x", "y"}, m.Keys())
	v, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	require.True(t, m.Delete("x"))
	assert.Equal(t, []string{"y"}, m.Keys())
}

func TestPriorityQueue_PopsInAscendingOrder(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Push("c", 3)
	pq.Push("a", 1)
	pq.Push("b", 2)

	var got []string
	for pq.Len() > 0 {
		v, _, ok := pq.Pop()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestDHeap_Ternary(t *testing.T) {
	h := NewDHeap[int](3, func(a, b int) bool { return a < b })
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		h.Push(v)
	}
	var got []int
	for h.Len() > 0 {
		v, ok := h.Pop()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, got)
}

func TestUnionFind_UnionAndFind(t *testing.T) {
	uf := NewUnionFind[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		uf.MakeSet(v)
	}
	assert.False(t, uf.Connected("A", "B"))
	require.True(t, uf.Union("A", "B"))
	assert.True(t, uf.Connected("A", "B"))
	require.False(t, uf.Union("A", "B"), "second union of already-joined sets reports no change")

	require.True(t, uf.Union("C", "D"))
	assert.False(t, uf.Connected("A", "C"))
	require.True(t, uf.Union("B", "C"))
	assert.True(t, uf.Connected("A", "D"))
}
