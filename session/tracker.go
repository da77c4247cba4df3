// Package session scores passwords as a user types them and only ever
// surfaces the result for the most recent submission.
package session

import (
	"context"
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/lgctx"
	"github.com/pivotal-cf/pass-alert/scoring"
)

type ScoreFunc func(ctx context.Context, password string) scoring.Result

type Update struct {
	Password string
	Result   scoring.Result
}

type Tracker struct {
	score ScoreFunc

	mu      sync.Mutex
	latest  uint64
	cancel  context.CancelFunc
	closed  bool
	pending sync.WaitGroup

	results chan Update
}

func New(score ScoreFunc) *Tracker {
	return &Tracker{
		score:   score,
		results: make(chan Update, 1),
	}
}

// Results holds at most one unread update. A newer update replaces an unread
// older one.
func (t *Tracker) Results() <-chan Update {
	return t.results
}

// Submit supersedes every earlier submission: their contexts are cancelled and
// whatever they produce is dropped. Submitting the empty password only clears.
func (t *Tracker) Submit(ctx context.Context, password string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	t.latest++
	id := t.latest

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}

	select {
	case <-t.results:
	default:
	}

	if password == "" {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.pending.Add(1)
	go func() {
		defer t.pending.Done()
		result := t.score(ctx, password)
		t.deliver(ctx, id, Update{Password: password, Result: result})
	}()
}

func (t *Tracker) deliver(ctx context.Context, id uint64, update Update) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || id != t.latest {
		lgctx.FromContext(ctx).Debug("dropped-stale-result", lager.Data{"submission": id, "latest": t.latest})
		return
	}

	select {
	case <-t.results:
	default:
	}
	t.results <- update
}

// Close cancels the outstanding submission, waits for in-flight scoring to
// return and closes Results.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	if t.cancel != nil {
		t.cancel()
	}
	t.mu.Unlock()

	t.pending.Wait()
	close(t.results)
}
