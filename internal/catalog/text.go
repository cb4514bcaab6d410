package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is an optional display value. The catalog document stores some of
// these as numbers (a value of 500, 3 nights) and some as strings, so both
// decode into the same form. Null, the empty string, false and numeric zero
// all mean "absent". Numbers are written in their shortest form, so 1.50
// displays as 1.5.
type Text string

// Present reports whether the value should be displayed.
func (t Text) Present() bool { return t != "" }

func (t Text) String() string { return string(t) }

// UnmarshalJSON decodes a string, number or boolean.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't':
		*t = "true"
	case 'f':
		*t = ""
	case '{', '[':
		return fmt.Errorf("expected a string or number, got %s", data)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("expected a string or number, got %s", data)
		}
		if f == 0 {
			*t = ""
			return nil
		}
		*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}
