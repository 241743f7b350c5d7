package graph

// ListLinks is the accessor pair a caller supplies to the list primitives
// below: Next/SetNext and Prev/SetPrev read and write the two link fields
// of whichever node record the list threads through (pertinent-list nodes
// use Vertex.PertNext/PertPrev, separated-child-list nodes use
// Vertex.SepNext/SepPrev). This is the Go rendering of spec.md §4.2's
// "a pair of int fields located at application-chosen offsets": instead of
// raw offsets we pass closures, keeping the arena free of unsafe.Pointer
// arithmetic while still threading the same four operations through every
// list in the embedder.
type ListLinks struct {
	Next    func(node int) int
	SetNext func(node, v int)
	Prev    func(node int) int
	SetPrev func(node, v int)
}

// ListPushFront inserts node at the head of the list described by
// (*head, *tail), which must both be NIL for an empty list. O(1).
func ListPushFront(head, tail *int, links ListLinks, node int) {
	if *head == NIL {
		*head, *tail = node, node
		links.SetNext(node, NIL)
		links.SetPrev(node, NIL)
		return
	}
	links.SetNext(node, *head)
	links.SetPrev(node, NIL)
	links.SetPrev(*head, node)
	*head = node
}

// ListPushBack inserts node at the tail of the list described by
// (*head, *tail). O(1).
func ListPushBack(head, tail *int, links ListLinks, node int) {
	if *tail == NIL {
		ListPushFront(head, tail, links, node)
		return
	}
	links.SetPrev(node, *tail)
	links.SetNext(node, NIL)
	links.SetNext(*tail, node)
	*tail = node
}

// ListRemove splices node out of the list described by (*head, *tail).
// node must currently be a member; behavior is undefined otherwise. O(1).
func ListRemove(head, tail *int, links ListLinks, node int) {
	prev, next := links.Prev(node), links.Next(node)
	if prev != NIL {
		links.SetNext(prev, next)
	} else {
		*head = next
	}
	if next != NIL {
		links.SetPrev(next, prev)
	} else {
		*tail = prev
	}
	links.SetNext(node, NIL)
	links.SetPrev(node, NIL)
}

// ListConcat appends the list (headB, tailB) onto the end of (*headA,
// *tailA), leaving the B list's head/tail values undefined to the caller
// (the caller owns no separate head/tail cells for B once merged — this
// matches how a child bicomp's external face is absorbed whole into the
// parent's during a merge). O(1).
func ListConcat(headA, tailA *int, links ListLinks, headB, tailB int) {
	if headB == NIL {
		return
	}
	if *headA == NIL {
		*headA, *tailA = headB, tailB
		return
	}
	links.SetNext(*tailA, headB)
	links.SetPrev(headB, *tailA)
	*tailA = tailB
}
