package http

// Request describes a single outbound exchange. It is constructed fresh
// per call and must not be mutated once handed to Dispatch.
type Request struct {
	Method      string
	Path        string
	Headers     map[string]string
	Entity      []byte
	ContentType string
}

// NewRequest creates a request for the given method and path. The path
// is an absolute URL; this layer has no base-URL configuration.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Headers: make(map[string]string),
	}
}

// WithHeader adds a header to the request. Caller headers overwrite any
// dispatcher default of the same name.
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// WithHeaders adds multiple headers to the request.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	for key, value := range headers {
		r.Headers[key] = value
	}
	return r
}

// WithEntity sets the request body and its content type. A nil entity
// means the request is sent with no body.
func (r *Request) WithEntity(entity []byte, contentType string) *Request {
	r.Entity = entity
	r.ContentType = contentType
	return r
}
