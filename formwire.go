// Package formwire serializes form data and JSON payloads into outbound
// HTTP requests and adapts request completion into a settle-once Pending
// handle.
//
// It is a single-request-per-call fire-and-forget adapter, not a general
// HTTP client: there is no base-URL configuration, no interceptors, no
// retries, and no streaming bodies. Paths are absolute URLs.
//
// Basic Usage:
//
//	pending := formwire.PostJSON(ctx, "https://api.example.com/items",
//	    encode.Bag{"name": "a"}, nil)
//
//	pending.OnSuccess(func(status int, body any) {
//	    fmt.Println("created", body)
//	}).OnFailure(func(status int, body any, reason http.Reason) {
//	    fmt.Println("failed", status, reason)
//	})
//
// Form submission derives the method, encoding, and pairs from the form
// itself, honoring the _method override shim:
//
//	f := &form.Form{
//	    Action: "https://api.example.com/items/7",
//	    Method: "post",
//	    Controls: []form.Control{
//	        {Name: "_method", Type: "hidden", Value: "DELETE"},
//	    },
//	}
//	pending, err := formwire.SendForm(ctx, f)
//
// No failure is ever raised synchronously from the four JSON/query entry
// points; every error surfaces through the Pending's failure callback.
// SendForm alone returns an error, and only for a form whose effective
// method cannot be dispatched.
package formwire

import (
	"context"
	"fmt"

	"github.com/formwire/formwire/encode"
	"github.com/formwire/formwire/form"
	"github.com/formwire/formwire/http"
)

// Bag re-exports encode.Bag for call-site convenience.
type Bag = encode.Bag

// Sender composes the dispatcher with the payload strategies. The zero
// options configure no timeout; hang a deadline on the dispatch context
// or pass http.WithTimeout to make the timeout reason reachable.
type Sender struct {
	client *http.Client
}

// New creates a Sender. Options are forwarded to the underlying
// dispatcher.
func New(options ...http.ClientOption) *Sender {
	return &Sender{client: http.NewClient(options...)}
}

// PutJSON sends a PUT with data serialized as a JSON entity. A nil data
// bag sends no entity and no content type.
func (s *Sender) PutJSON(ctx context.Context, path string, data Bag, headers map[string]string) *http.Pending {
	return s.send(ctx, "PUT", path, headers, jsonFor(data))
}

// PostJSON sends a POST with data serialized as a JSON entity. A nil
// data bag sends no entity and no content type.
func (s *Sender) PostJSON(ctx context.Context, path string, data Bag, headers map[string]string) *http.Pending {
	return s.send(ctx, "POST", path, headers, jsonFor(data))
}

// Get sends an entity-less GET. A non-nil data bag is appended to the
// path as a query string.
func (s *Sender) Get(ctx context.Context, path string, data Bag, headers map[string]string) *http.Pending {
	return s.send(ctx, "GET", path, headers, queryFor(data))
}

// Del sends an entity-less DELETE. A non-nil data bag is appended to
// the path as a query string.
func (s *Sender) Del(ctx context.Context, path string, data Bag, headers map[string]string) *http.Pending {
	return s.send(ctx, "DELETE", path, headers, queryFor(data))
}

// SendForm inspects the form and submits it: multipart when the enctype
// or a file control demands it, URL-encoded entity for POST/PUT,
// query-string request for GET/DELETE. Any other effective method is
// rejected with form.ErrInvalidMethod.
func (s *Sender) SendForm(ctx context.Context, f *form.Form) (*http.Pending, error) {
	snap := form.Inspect(f)

	if snap.Multipart {
		return s.send(ctx, snap.Method, f.Action, nil, multipartPayload{controls: f.Controls}), nil
	}

	switch snap.Method {
	case "POST", "PUT":
		return s.send(ctx, snap.Method, f.Action, nil, formPayload{snap: snap}), nil
	case "GET", "DELETE":
		return s.send(ctx, snap.Method, f.Action, nil, QueryPayload{Query: snap.Encode()}), nil
	default:
		return nil, fmt.Errorf("%w: %q", form.ErrInvalidMethod, snap.Method)
	}
}

// multipartAvailable is the host capability predicate. Always true on
// this platform; kept as a variable so the degraded branch stays
// testable.
var multipartAvailable = true

// CanSendForm reports whether the form can be submitted. With multipart
// construction available it is always true; without it, only forms that
// do not require multipart encoding can be sent.
func (s *Sender) CanSendForm(f *form.Form) bool {
	if multipartAvailable {
		return true
	}
	return !form.Inspect(f).Multipart
}

func (s *Sender) send(ctx context.Context, method, path string, headers map[string]string, payload Payload) *http.Pending {
	req := http.NewRequest(method, path).WithHeaders(headers)

	if err := payload.attach(req); err != nil {
		// Payload serialization failures surface asynchronously like
		// every other failure; the call site never needs a scoped
		// error check.
		pending := http.NewPending()
		pending.Reject(0, nil, http.ReasonNone)
		return pending
	}

	return s.client.Dispatch(ctx, req)
}

var defaultSender = New()

// PutJSON sends a PUT via the default Sender.
func PutJSON(ctx context.Context, path string, data Bag, headers map[string]string) *http.Pending {
	return defaultSender.PutJSON(ctx, path, data, headers)
}

// PostJSON sends a POST via the default Sender.
func PostJSON(ctx context.Context, path string, data Bag, headers map[string]string) *http.Pending {
	return defaultSender.PostJSON(ctx, path, data, headers)
}

// Get sends a GET via the default Sender.
func Get(ctx context.Context, path string, data Bag, headers map[string]string) *http.Pending {
	return defaultSender.Get(ctx, path, data, headers)
}

// Del sends a DELETE via the default Sender.
func Del(ctx context.Context, path string, data Bag, headers map[string]string) *http.Pending {
	return defaultSender.Del(ctx, path, data, headers)
}

// SendForm submits a form via the default Sender.
func SendForm(ctx context.Context, f *form.Form) (*http.Pending, error) {
	return defaultSender.SendForm(ctx, f)
}

// CanSendForm reports form sendability via the default Sender.
func CanSendForm(f *form.Form) bool {
	return defaultSender.CanSendForm(f)
}
