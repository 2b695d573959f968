package api

import (
	"bytes"         // Raw JSON inspection
	"encoding/json" // JSON decoding
	"strconv"       // ID parsing
)

// RefID is a record id in a request body, sent either as a JSON number or a JSON string
type RefID string

// UnmarshalJSON accepts 7 and "7" alike
func (r *RefID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RefID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RefID(n.String())
	return nil
}

// Uint parses the id, reporting false for anything that is not a positive integer
func (r RefID) Uint() (uint, bool) {
	id, err := strconv.ParseUint(string(r), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
