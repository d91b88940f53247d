package http

import (
	"testing"
	"time"
)

func TestPending_SettleFiresSuccessCallback(t *testing.T) {
	p := newPending()

	var gotStatus int
	var gotBody any
	p.OnSuccess(func(status int, body any) {
		gotStatus = status
		gotBody = body
	})
	p.OnFailure(func(status int, body any, reason Reason) {
		t.Error("Failure callback fired for a success outcome")
	})

	p.settle(Outcome{OK: true, Status: 201, Body: "created"})

	if gotStatus != 201 {
		t.Errorf("Expected status 201, got %d", gotStatus)
	}
	if gotBody != "created" {
		t.Errorf("Expected body 'created', got %v", gotBody)
	}
}

func TestPending_SettleTwiceIsNoOp(t *testing.T) {
	p := newPending()
	calls := 0
	p.OnFailure(func(status int, body any, reason Reason) {
		calls++
	})

	p.settle(Outcome{Status: 500})
	p.settle(Outcome{OK: true, Status: 200})

	outcome, settled := p.Outcome()
	if !settled {
		t.Fatal("Expected pending to be settled")
	}
	if outcome.OK || outcome.Status != 500 {
		t.Errorf("Expected first settlement to stick, got %+v", outcome)
	}
	if calls != 1 {
		t.Errorf("Expected exactly one callback invocation, got %d", calls)
	}
}

func TestPending_LateRegistrationReplays(t *testing.T) {
	p := newPending()
	p.settle(Outcome{Status: 0, Reason: ReasonTimeout})

	var gotReason Reason
	replayed := false
	p.OnFailure(func(status int, body any, reason Reason) {
		replayed = true
		gotReason = reason
	})
	p.OnSuccess(func(status int, body any) {
		t.Error("Success callback replayed for a failure outcome")
	})

	if !replayed {
		t.Fatal("Expected failure callback to replay after settlement")
	}
	if gotReason != ReasonTimeout {
		t.Errorf("Expected reason timeout, got %s", gotReason)
	}
}

func TestPending_DoneCloses(t *testing.T) {
	p := newPending()
	p.markSent()

	if p.settled() {
		t.Fatal("Pending should not be settled after markSent")
	}

	go p.settle(Outcome{OK: true, Status: 204})

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("Done channel never closed")
	}

	if got := p.Wait(); got.Status != 204 {
		t.Errorf("Expected status 204 from Wait, got %d", got.Status)
	}
}
