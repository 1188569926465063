package sheetson

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Where is a structured filter expression: field name to either a literal
// (matched by equality) or a map of comparison operators to values, using
// the API's operator names ("$gte", "$lte", "$in", ...).
//
//	Where{"country": "USA"}
//	Where{"population": map[string]any{"$gte": 10_000_000}}
type Where map[string]any

// RawWhere is a pre-serialized filter expression passed through to the API
// verbatim, trimmed of surrounding whitespace.
type RawWhere string

// ListOptions control pagination, ordering and field selection for
// ListRows. Nil Skip/Limit omit the corresponding parameter.
type ListOptions struct {
	Skip    *int
	Limit   *int
	OrderBy string
	Desc    bool
	Keys    []string
}

// SearchOptions extend ListOptions with a filter expression. Where accepts
// a Where map, a RawWhere (or plain string), or nil for no filter.
type SearchOptions struct {
	ListOptions
	Where any
}

// Int returns a pointer to v, for filling ListOptions.Skip and Limit.
func Int(v int) *int {
	return &v
}

func (o ListOptions) query() url.Values {
	params := url.Values{}
	if o.Skip != nil {
		params.Set("skip", strconv.Itoa(*o.Skip))
	}
	if o.Limit != nil {
		params.Set("limit", strconv.Itoa(*o.Limit))
	}
	if o.OrderBy != "" {
		params.Set("order", orderParam(o.OrderBy, o.Desc))
	}
	if keys := serializeKeys(o.Keys); keys != "" {
		params.Set("keys", keys)
	}
	return params
}

// orderParam encodes ordering as the field name, minus-prefixed for
// descending order.
func orderParam(orderBy string, desc bool) string {
	if desc {
		return "-" + orderBy
	}
	return orderBy
}

// serializeKeys joins the field selection into the comma-separated form
// the API expects. An empty selection yields "" so the parameter is omitted.
func serializeKeys(keys []string) string {
	return strings.Join(keys, ",")
}

// serializeWhere turns a filter expression into the string form of the
// `where` query parameter. Structured filters are JSON-encoded; raw string
// filters pass through trimmed. A nil filter yields "".
func serializeWhere(where any) (string, error) {
	switch w := where.(type) {
	case nil:
		return "", nil
	case RawWhere:
		return strings.TrimSpace(string(w)), nil
	case string:
		return strings.TrimSpace(w), nil
	case Where:
		return marshalWhere(map[string]any(w))
	case map[string]any:
		return marshalWhere(w)
	default:
		return "", fmt.Errorf("unsupported where type %T", where)
	}
}

func marshalWhere(w map[string]any) (string, error) {
	encoded, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("failed to encode where filter: %w", err)
	}
	return string(encoded), nil
}
