// SPDX-License-Identifier: Unlicense OR MIT

package queue

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFIFO(t *testing.T) {
	q := New[int](nil)
	if _, ok := q.TryRecv(); ok {
		t.Fatal("empty queue returned an element")
	}
	// Enough elements to grow the buffer twice, with a wrapped head.
	for i := 0; i < 5; i++ {
		q.Send(i)
	}
	for i := 0; i < 3; i++ {
		q.TryRecv()
	}
	var want []int
	for i := 5; i < 70; i++ {
		q.Send(i)
	}
	for i := 3; i < 70; i++ {
		want = append(want, i)
	}
	if got := q.Len(); got != len(want) {
		t.Fatalf("Len() = %d, want %d", got, len(want))
	}
	var got []int
	for {
		v, ok := q.TryRecv()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("received order mismatch (-want +got):\n%s", diff)
	}
	if !q.Empty() {
		t.Error("queue not empty after draining")
	}
}

func TestClose(t *testing.T) {
	q := New[string](nil)
	q.Send("a")
	q.Close()
	q.Close()
	if err := q.Send("b"); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after Close = %v, want %v", err, ErrClosed)
	}
	if v, ok := q.TryRecv(); !ok || v != "a" {
		t.Errorf("TryRecv() = %q, %v; want queued element", v, ok)
	}
}

func TestNotify(t *testing.T) {
	var n int
	q := New[int](func() { n++ })
	q.Send(1)
	q.Send(2)
	q.Close()
	q.Send(3)
	if n != 2 {
		t.Errorf("notify called %d times, want 2", n)
	}
}

func TestConcurrentSend(t *testing.T) {
	q := New[int](nil)
	const producers, each = 8, 500
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Send(p*each + i)
			}
		}(p)
	}
	wg.Wait()
	// Per-producer order is preserved.
	last := make(map[int]int)
	for {
		v, ok := q.TryRecv()
		if !ok {
			break
		}
		p := v / each
		if prev, seen := last[p]; seen && prev >= v {
			t.Fatalf("producer %d: %d received after %d", p, v, prev)
		}
		last[p] = v
	}
	if len(last) != producers {
		t.Errorf("got elements from %d producers, want %d", len(last), producers)
	}
}
