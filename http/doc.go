// Package http dispatches outbound HTTP exchanges and adapts their
// completion into a settle-once Pending handle.
//
// This package is designed for programmatic use and provides:
//   - A configurable dispatcher with functional options
//   - A Request value describing one exchange (method, path, headers, entity)
//   - Outcome classification of terminal transport events into a tagged
//     Success/Failure result with a parsed JSON body
//   - A Pending handle that is settled exactly once per exchange
//
// Basic Usage:
//
//	client := http.NewClient(
//	    http.WithTimeout(10*time.Second),
//	)
//
//	req := http.NewRequest("POST", "https://api.example.com/items").
//	    WithEntity([]byte(`{"name":"a"}`), "application/json")
//
//	pending := client.Dispatch(context.Background(), req)
//	pending.OnSuccess(func(status int, body any) {
//	    fmt.Printf("created: %v\n", body)
//	}).OnFailure(func(status int, body any, reason http.Reason) {
//	    fmt.Printf("failed: %d (%s)\n", status, reason)
//	})
//
// No timeout is configured by this layer itself. The timeout reason is
// reachable only when the caller configures a deadline, either through
// WithTimeout/WithHTTPClient or through the dispatch context.
//
// Thread Safety:
//
// Client and Pending are safe for concurrent use. Callers may dispatch
// arbitrarily many concurrent exchanges; each is independent.
package http
