package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/graph"
)

// intList is a minimal node array standing in for a Vertex arena, used to
// exercise the generic list primitives without constructing a full Graph.
type intList struct {
	next, prev []int
}

func newIntList(n int) *intList {
	l := &intList{next: make([]int, n), prev: make([]int, n)}
	for i := range l.next {
		l.next[i], l.prev[i] = graph.NIL, graph.NIL
	}
	return l
}

func (l *intList) links() graph.ListLinks {
	return graph.ListLinks{
		Next:    func(i int) int { return l.next[i] },
		SetNext: func(i, v int) { l.next[i] = v },
		Prev:    func(i int) int { return l.prev[i] },
		SetPrev: func(i, v int) { l.prev[i] = v },
	}
}

func collect(head int, links graph.ListLinks) []int {
	var out []int
	for n := head; n != graph.NIL; n = links.Next(n) {
		out = append(out, n)
	}
	return out
}

func TestList_PushFrontAndBack(t *testing.T) {
	l := newIntList(4)
	links := l.links()
	head, tail := graph.NIL, graph.NIL

	graph.ListPushBack(&head, &tail, links, 0)
	graph.ListPushBack(&head, &tail, links, 1)
	graph.ListPushFront(&head, &tail, links, 2)

	require.Equal(t, []int{2, 0, 1}, collect(head, links))
	require.Equal(t, 1, tail)
}

func TestList_Remove(t *testing.T) {
	l := newIntList(4)
	links := l.links()
	head, tail := graph.NIL, graph.NIL
	graph.ListPushBack(&head, &tail, links, 0)
	graph.ListPushBack(&head, &tail, links, 1)
	graph.ListPushBack(&head, &tail, links, 2)

	graph.ListRemove(&head, &tail, links, 1)
	require.Equal(t, []int{0, 2}, collect(head, links))

	graph.ListRemove(&head, &tail, links, 0)
	graph.ListRemove(&head, &tail, links, 2)
	require.Equal(t, graph.NIL, head)
	require.Equal(t, graph.NIL, tail)
}

func TestList_Concat(t *testing.T) {
	l := newIntList(4)
	links := l.links()
	headA, tailA := graph.NIL, graph.NIL
	headB, tailB := graph.NIL, graph.NIL
	graph.ListPushBack(&headA, &tailA, links, 0)
	graph.ListPushBack(&headB, &tailB, links, 1)
	graph.ListPushBack(&headB, &tailB, links, 2)

	graph.ListConcat(&headA, &tailA, links, headB, tailB)
	require.Equal(t, []int{0, 1, 2}, collect(headA, links))
	require.Equal(t, 2, tailA)
}

func TestStack_PushPopOverflow(t *testing.T) {
	s := graph.NewStack(2)
	require.True(t, s.Empty())
	s.Push(1)
	s.Push(2)
	require.Equal(t, 2, s.Size())
	require.Panics(t, func() { s.Push(3) })
	require.Equal(t, 2, s.Top())
	require.Equal(t, 2, s.Pop())
	require.Equal(t, 1, s.Pop())
	require.Panics(t, func() { s.Pop() })
}
