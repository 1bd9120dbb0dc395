package sat

import "testing"

func TestLitQueue_PushPop_FIFO(t *testing.T) {
	q := newLitQueue(2)

	q.Push(Literal(1))
	q.Push(Literal(2))
	q.Push(Literal(3))
	q.Push(Literal(4)) // forces growth past the initial capacity

	if got, want := q.Len(), 4; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i, want := range []Literal{1, 2, 3, 4} {
		if got := q.Pop(); got != want {
			t.Errorf("Pop() #%d = %v, want %v", i, got, want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestLitQueue_Reset(t *testing.T) {
	q := newLitQueue(4)
	q.Push(1)
	q.Push(2)
	q.Reset()

	if q.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", q.Len())
	}
	q.Push(3)
	if got := q.Pop(); got != 3 {
		t.Errorf("Pop() = %v, want 3", got)
	}
}

func TestLitQueue_Pop_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pop() on empty queue: want panic, got none")
		}
	}()
	newLitQueue(1).Pop()
}

func TestLitQueue_WrapAround(t *testing.T) {
	q := newLitQueue(4)
	q.Push(1)
	q.Push(2)
	q.Pop()
	q.Pop()
	q.Push(3)
	q.Push(4)
	q.Push(5) // start has wrapped around the ring by now

	var got []Literal
	for q.Len() > 0 {
		got = append(got, q.Pop())
	}
	want := []Literal{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
