// Copyright (C) 2017 ScyllaDB

package reaperclient

import (
	"bytes"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

// Numbers decode as json.Number so integers survive a decode and re-encode
// round trip intact.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Value is a raw JSON payload returned by the service. The caller decides
// the expected shape.
type Value []byte

// Decode returns the decoded JSON value, an object, array or scalar. An
// empty payload decodes to nil, a non-JSON payload is returned as its raw
// text, some endpoints answer with a plain banner.
func (v Value) Decode() (interface{}, error) {
	if len(bytes.TrimSpace(v)) == 0 {
		return nil, nil
	}
	var out interface{}
	if err := json.Unmarshal(v, &out); err != nil {
		return string(v), nil
	}
	return out, nil
}

// Get extracts a single field from the payload by gjson path.
func (v Value) Get(path string) gjson.Result {
	return gjson.GetBytes(v, path)
}

// FormatFloat renders a floating-point value with fixed 3-decimal-place
// precision. Every float leaving the system goes through this so binary
// representation artifacts never reach the wire or the operator, an
// intensity of 0.9 renders as "0.900", not "0.8999999761581421".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
