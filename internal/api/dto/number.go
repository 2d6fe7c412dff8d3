package dto

import (
	"bytes"
	"strconv"
)

// Number is a float64 with parse-or-zero JSON decoding: numeric fields
// arriving as strings, empty strings or unparseable values decode to 0
// instead of failing the request. This mirrors how the form layer treats
// bad numeric input — it contributes nothing rather than erroring.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}
