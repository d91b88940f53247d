package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// Reason tags the failure variant of an Outcome with the terminal
// transport event that produced it.
type Reason int

const (
	// ReasonNone covers transport-level failures without a more specific
	// tag and HTTP error statuses (>= 400).
	ReasonNone Reason = iota
	// ReasonParseError means the response body was non-empty but not
	// valid JSON.
	ReasonParseError
	// ReasonTimeout means the exchange hit an externally configured
	// deadline before completing.
	ReasonTimeout
	// ReasonAbort means the exchange was cancelled before completing.
	ReasonAbort
)

func (r Reason) String() string {
	switch r {
	case ReasonParseError:
		return "parseerror"
	case ReasonTimeout:
		return "timeout"
	case ReasonAbort:
		return "abort"
	default:
		return "none"
	}
}

// Sentinel errors for the failure taxonomy. Outcome.Err wraps exactly
// one of these, so callers can branch with errors.Is.
var (
	ErrTransport = errors.New("transport failure")
	ErrTimeout   = errors.New("request timed out")
	ErrAbort     = errors.New("request aborted")
	ErrParse     = errors.New("response body is not valid JSON")
	ErrHTTP      = errors.New("http error status")
)

// Outcome is the tagged result of one exchange: exactly one of Success
// (OK true) or Failure (OK false) is produced per request. Body holds
// the JSON-decoded response body, or nil when the body was empty or
// unreadable.
type Outcome struct {
	OK     bool
	Status int
	Body   any
	Reason Reason
}

// Err maps a failure outcome onto the error taxonomy. It returns nil
// for success outcomes.
func (o Outcome) Err() error {
	if o.OK {
		return nil
	}
	switch o.Reason {
	case ReasonTimeout:
		return ErrTimeout
	case ReasonAbort:
		return ErrAbort
	case ReasonParseError:
		return fmt.Errorf("%w (status %d)", ErrParse, o.Status)
	default:
		if o.Status >= 400 {
			return fmt.Errorf("%w %d", ErrHTTP, o.Status)
		}
		return ErrTransport
	}
}

// legacy IE quirk: status 1223 is really a 204 with the body stripped.
const statusQuirk1223 = 1223

func normalizeStatus(status int) int {
	if status == statusQuirk1223 {
		return 204
	}
	return status
}

// classifyLoad interprets a completed exchange. Priority: normalize the
// quirk status, reject on unparseable non-empty bodies, reject on error
// statuses, otherwise succeed.
func classifyLoad(status int, body []byte) Outcome {
	status = normalizeStatus(status)

	var parsed any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil {
			return Outcome{Status: status, Reason: ReasonParseError}
		}
	}

	if status >= 400 {
		return Outcome{Status: status, Body: parsed}
	}
	return Outcome{OK: true, Status: status, Body: parsed}
}

// classifyTransportError maps a failed exchange onto the timeout, abort,
// or plain transport reasons. There is no status code in this branch.
func classifyTransportError(err error) Outcome {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Outcome{Reason: ReasonTimeout}
	case errors.Is(err, context.Canceled):
		return Outcome{Reason: ReasonAbort}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Outcome{Reason: ReasonTimeout}
	}

	return Outcome{Reason: ReasonNone}
}
