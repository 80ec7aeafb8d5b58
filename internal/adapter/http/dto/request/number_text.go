package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrInvalidNumberText = errors.New("expected a number, a string or null")

// NumberText accepts a JSON number, a JSON string or null and keeps it as
// the text the form would have held. Parsing into a float happens later,
// with the same rules for every input path.
type NumberText string

func (n *NumberText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberText(s)
		return nil
	}

	var f json.Number
	if err := json.Unmarshal(data, &f); err != nil {
		return ErrInvalidNumberText
	}
	if _, err := strconv.ParseFloat(f.String(), 64); err != nil {
		return ErrInvalidNumberText
	}
	*n = NumberText(f.String())
	return nil
}

func (n NumberText) String() string { return string(n) }
