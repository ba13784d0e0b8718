package openmeasures

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Response is the raw search-engine reply. The body is kept verbatim so
// raw-mode consumers get exactly what the API returned; accessors pull
// out the pieces the gateway needs without committing to a full schema.
type Response struct {
	Body json.RawMessage
}

// Hits returns the hit list at hits.hits, empty if the path is absent.
// Each hit stays an opaque JSON value; shapes vary per platform.
func (r *Response) Hits() []gjson.Result {
	return gjson.GetBytes(r.Body, "hits.hits").Array()
}

// Total returns the total matching count. The engine reports it either
// as an object {"value": N} or, in the legacy shape, a bare integer.
func (r *Response) Total() int64 {
	total := gjson.GetBytes(r.Body, "hits.total")
	if total.IsObject() {
		return total.Get("value").Int()
	}
	return total.Int()
}
