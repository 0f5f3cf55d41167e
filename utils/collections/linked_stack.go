package collections

type node struct {
	elem int32
	next *node
}

// LinkedStack is a LIFO stack of int32 backed by a singly-linked chain.
// The stack exclusively owns its chain; nodes are never shared.
type LinkedStack struct {
	head *node
}

func NewLinkedStack() *LinkedStack {
	return &LinkedStack{}
}

func (s *LinkedStack) Push(elem int32) {
	next := s.head
	s.head = nil
	s.head = &node{
		elem: elem,
		next: next,
	}
}

// Pop removes the top element. ok is false when the stack is empty.
func (s *LinkedStack) Pop() (elem int32, ok bool) {
	top := s.head
	if top == nil {
		return elem, false
	}
	s.head = top.next
	top.next = nil
	return top.elem, true
}

func (s *LinkedStack) IsEmpty() bool {
	return s.head == nil
}

// Drop releases every node, one at a time, and leaves the stack empty.
func (s *LinkedStack) Drop() {
	cur := s.head
	s.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
}
