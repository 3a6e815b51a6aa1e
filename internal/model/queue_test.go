package model

import "testing"

func TestQueueAddAndPair(t *testing.T) {
	q := NewQueue()

	for _, id := range []string{"a", "b", "c"} {
		if err := q.AddPlayer(Player{ID: id}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := q.AddPlayer(Player{ID: "a"}); err == nil {
		t.Fatal("duplicate entry must be rejected")
	}
	if q.Size() != 3 {
		t.Fatalf("size = %d, want 3", q.Size())
	}

	p1, p2 := q.GetNextPair()
	if p1.ID != "a" || p2.ID != "b" {
		t.Fatalf("pair = %s,%s; the longest waiting players go first", p1.ID, p2.ID)
	}
	if q.Size() != 1 {
		t.Fatalf("size after pairing = %d, want 1", q.Size())
	}
}
