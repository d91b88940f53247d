package http

import "sync"

type state int

const (
	stateIdle state = iota
	stateSent
	stateSettled
)

// Pending is the handle returned immediately by Dispatch and settled
// exactly once when the exchange reaches a terminal event. Repeated
// settle attempts are no-ops.
//
// Callbacks may be registered at any time, including after settlement,
// in which case they are replayed with the recorded outcome.
type Pending struct {
	mu        sync.Mutex
	state     state
	outcome   Outcome
	done      chan struct{}
	onSuccess []func(status int, body any)
	onFailure []func(status int, body any, reason Reason)
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// NewPending creates an unsettled handle. Dispatch creates its own;
// this constructor exists for collaborators that settle a result
// without going through the dispatcher.
func NewPending() *Pending {
	return newPending()
}

// Resolve settles the pending with a success outcome. Only the first
// Resolve or Reject has any effect.
func (p *Pending) Resolve(status int, body any) {
	p.settle(Outcome{OK: true, Status: status, Body: body})
}

// Reject settles the pending with a failure outcome. Only the first
// Resolve or Reject has any effect.
func (p *Pending) Reject(status int, body any, reason Reason) {
	p.settle(Outcome{Status: status, Body: body, Reason: reason})
}

// markSent records the Idle -> Sent transition. A pending that was
// settled synchronously (e.g. a malformed request) stays settled.
func (p *Pending) markSent() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == stateIdle {
		p.state = stateSent
	}
}

// settle records the terminal outcome and fires registered callbacks.
// Only the first call has any effect.
func (p *Pending) settle(o Outcome) {
	p.mu.Lock()
	if p.state == stateSettled {
		p.mu.Unlock()
		return
	}
	p.state = stateSettled
	p.outcome = o
	success := p.onSuccess
	failure := p.onFailure
	p.onSuccess = nil
	p.onFailure = nil
	close(p.done)
	p.mu.Unlock()

	// Callbacks run outside the lock so they may register further
	// callbacks or inspect the outcome.
	if o.OK {
		for _, fn := range success {
			fn(o.Status, o.Body)
		}
	} else {
		for _, fn := range failure {
			fn(o.Status, o.Body, o.Reason)
		}
	}
}

// OnSuccess registers a callback invoked when the exchange settles
// successfully. If the pending is already settled the callback is
// replayed immediately.
func (p *Pending) OnSuccess(fn func(status int, body any)) *Pending {
	p.mu.Lock()
	if p.state == stateSettled {
		o := p.outcome
		p.mu.Unlock()
		if o.OK {
			fn(o.Status, o.Body)
		}
		return p
	}
	p.onSuccess = append(p.onSuccess, fn)
	p.mu.Unlock()
	return p
}

// OnFailure registers a callback invoked when the exchange settles with
// a failure. If the pending is already settled the callback is replayed
// immediately.
func (p *Pending) OnFailure(fn func(status int, body any, reason Reason)) *Pending {
	p.mu.Lock()
	if p.state == stateSettled {
		o := p.outcome
		p.mu.Unlock()
		if !o.OK {
			fn(o.Status, o.Body, o.Reason)
		}
		return p
	}
	p.onFailure = append(p.onFailure, fn)
	p.mu.Unlock()
	return p
}

// Done returns a channel closed when the pending settles.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Outcome returns the recorded outcome and whether the pending has
// settled yet.
func (p *Pending) Outcome() (Outcome, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome, p.state == stateSettled
}

// Wait blocks until the pending settles and returns the outcome.
func (p *Pending) Wait() Outcome {
	<-p.done
	o, _ := p.Outcome()
	return o
}

// settled reports whether the pending is in the terminal state. Used by
// tests; callers should prefer Done or Outcome.
func (p *Pending) settled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == stateSettled
}
