package scrivener

import (
	"fmt"
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := newQueue()
	for i := 0; i < 5; i++ {
		q.push(envelope{msg: &Message{Text: fmt.Sprintf("%d", i)}})
	}
	for i := 0; i < 5; i++ {
		env, ok := q.pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if want := fmt.Sprintf("%d", i); env.msg.Text != want {
			t.Errorf("pop %d = %q, want %q", i, env.msg.Text, want)
		}
	}
	if _, ok := q.pop(); ok {
		t.Error("expected pop on empty queue to report not ok")
	}
}

func TestQueueSignalCoalesces(t *testing.T) {
	q := newQueue()
	for i := 0; i < 10; i++ {
		q.push(envelope{msg: &Message{Text: "x"}})
	}
	if got := len(q.wake); got != 1 {
		t.Errorf("expected pushes to collapse into one wake token, got %d", got)
	}
	<-q.wake
	if q.length() != 10 {
		t.Errorf("expected all 10 envelopes queued, got %d", q.length())
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := newQueue()
	const producers, perProducer = 16, 100

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.push(envelope{msg: &Message{Text: "x"}})
			}
		}()
	}
	wg.Wait()

	if got := q.length(); got != producers*perProducer {
		t.Errorf("expected %d envelopes, got %d", producers*perProducer, got)
	}
}
