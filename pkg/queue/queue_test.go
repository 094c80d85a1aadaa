package queue

import (
	"container/heap"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type testItem struct {
	name     string
	priority float64
	sequence uint64
	index    int
}

func (i *testItem) Priority() float64  { return i.priority }
func (i *testItem) Sequence() uint64   { return i.sequence }
func (i *testItem) Index() int         { return i.index }
func (i *testItem) SetIndex(index int) { i.index = index }
func (i *testItem) String() string     { return fmt.Sprintf("%v: %v\n", i.name, i.priority) }

func TestMinHeapOrdersByPriorityThenSequence(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	items := []*testItem{
		{name: "c", priority: 2, sequence: 0},
		{name: "a", priority: 1, sequence: 1},
		{name: "d", priority: 2, sequence: 2},
		{name: "b", priority: 1, sequence: 3},
		{name: "e", priority: 2, sequence: 4},
	}
	for _, item := range items {
		h.Push(item)
	}
	require.Equal(t, "a", h.Peek().name)

	order := make([]string, 0)
	for h.Len() > 0 {
		item := h.Pop()
		require.Equal(t, -1, item.Index())
		order = append(order, item.name)
	}
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, order)
}

func TestMinHeapUpdateAndRemove(t *testing.T) {
	items := []*testItem{
		{name: "a", priority: 5, sequence: 0},
		{name: "b", priority: 3, sequence: 1},
		{name: "c", priority: 4, sequence: 2},
	}
	h := NewMinHeap(items)
	require.Equal(t, "b", h.Peek().name)

	items[0].priority = 1
	h.Update(items[0])
	require.Equal(t, "a", h.Peek().name)

	h.Remove(items[1].Index())
	require.Equal(t, 2, h.Len())
	require.Equal(t, "a", h.Pop().name)
	require.Equal(t, "c", h.Pop().name)
}

func TestQueueTieBreakIsFifo(t *testing.T) {
	pq := NewQueue(nil)
	for i := 0; i < 5; i++ {
		heap.Push(pq, NewQueueItem(i, 7, -1, uint64(i)))
	}
	heap.Push(pq, NewQueueItem(99, 3, -1, 5))

	require.Equal(t, 99, heap.Pop(pq).(*Item).ItemId)
	for i := 0; i < 5; i++ {
		require.Equal(t, i, heap.Pop(pq).(*Item).ItemId)
	}
}

func TestQueueUpdate(t *testing.T) {
	first := NewQueueItem(1, 10, -1, 0)
	pq := NewQueue(first)
	second := NewQueueItem(2, 5, -1, 1)
	heap.Push(pq, second)

	pq.Update(first, 1)
	require.Equal(t, 1, heap.Pop(pq).(*Item).ItemId)
	require.Equal(t, 2, heap.Pop(pq).(*Item).ItemId)
	require.Equal(t, 0, pq.Len())
}
