package formwire

import (
	"encoding/json"

	"github.com/formwire/formwire/encode"
	"github.com/formwire/formwire/form"
	"github.com/formwire/formwire/http"
)

// Payload is the tagged request-body variant chosen by each entry
// point. Picking the variant at the call site removes any runtime
// data-shape inspection from the dispatch path: a nil Bag becomes
// NoPayload up front and the request goes out with no entity.
type Payload interface {
	attach(req *http.Request) error
}

// NoPayload sends the request with no entity and no content type.
type NoPayload struct{}

func (NoPayload) attach(*http.Request) error { return nil }

// JSONPayload serializes a Bag as a JSON entity with content type
// application/json.
type JSONPayload struct {
	Data encode.Bag
}

func (p JSONPayload) attach(req *http.Request) error {
	entity, err := json.Marshal(p.Data)
	if err != nil {
		return err
	}
	req.Entity = entity
	req.ContentType = "application/json"
	return nil
}

// QueryPayload appends an already-encoded query string to the request
// path and sends no entity.
type QueryPayload struct {
	Query string
}

func (p QueryPayload) attach(req *http.Request) error {
	if p.Query != "" {
		req.Path = req.Path + "?" + p.Query
	}
	return nil
}

// formPayload sends a form snapshot as a URL-encoded entity.
type formPayload struct {
	snap form.Snapshot
}

func (p formPayload) attach(req *http.Request) error {
	req.Entity = []byte(p.snap.Encode())
	req.ContentType = "application/x-www-form-urlencoded"
	return nil
}

// multipartPayload sends form controls as a multipart/form-data entity.
type multipartPayload struct {
	controls []form.Control
}

func (p multipartPayload) attach(req *http.Request) error {
	entity, contentType, err := form.Multipart(p.controls)
	if err != nil {
		return err
	}
	req.Entity = entity
	req.ContentType = contentType
	return nil
}

// jsonFor picks the JSON strategy variant for a Bag.
func jsonFor(data encode.Bag) Payload {
	if data == nil {
		return NoPayload{}
	}
	return JSONPayload{Data: data}
}

// queryFor picks the query-string strategy variant for a Bag.
func queryFor(data encode.Bag) Payload {
	if data == nil {
		return NoPayload{}
	}
	return QueryPayload{Query: encode.Query(data)}
}
