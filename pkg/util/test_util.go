package util

import (
	"bytes"
	"encoding/json"
	"io"
)

// StructToJSONReader marshals data into a reader suitable as an HTTP request
// body. Tests use it to post typed request structs.
func StructToJSONReader(data interface{}) io.Reader {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return bytes.NewReader(jsonBytes)
}
