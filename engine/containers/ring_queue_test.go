package containers

import "testing"

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)

	if !rq.IsEmpty() {
		t.Error("IsEmpty() = false for a new queue")
	}
	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d) error = %v", i, err)
		}
	}
	if !rq.IsFull() {
		t.Error("IsFull() = false after filling the queue")
	}
	if err := rq.Enqueue(4); err == nil {
		t.Error("Enqueue on a full queue succeeded")
	}

	for i := 1; i <= 3; i++ {
		got, err := rq.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue() error = %v", err)
		}
		if got != i {
			t.Errorf("Dequeue() = %d, want %d", got, i)
		}
	}
	if _, err := rq.Dequeue(); err == nil {
		t.Error("Dequeue on an empty queue succeeded")
	}
}

func TestRingQueueWraps(t *testing.T) {
	rq := NewRingQueue[string](2)

	for round := 0; round < 5; round++ {
		if err := rq.Enqueue("a"); err != nil {
			t.Fatal(err)
		}
		if err := rq.Enqueue("b"); err != nil {
			t.Fatal(err)
		}
		if got, _ := rq.Peek(); got != "a" {
			t.Errorf("Peek() = %q, want %q", got, "a")
		}
		if got, _ := rq.Dequeue(); got != "a" {
			t.Errorf("Dequeue() = %q, want %q", got, "a")
		}
		if got, _ := rq.Dequeue(); got != "b" {
			t.Errorf("Dequeue() = %q, want %q", got, "b")
		}
	}
	if rq.Count() != 0 {
		t.Errorf("Count() = %d after draining, want 0", rq.Count())
	}
}
