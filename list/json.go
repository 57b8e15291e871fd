package list

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the list as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for n := l.head; n != nil; n = n.rest {
		if index > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(n.first)
		if err != nil {
			return nil, &marshalError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

type marshalError struct {
	index int
	cause error
}

func (err *marshalError) Error() string {
	return fmt.Sprintf("element %d: %s", err.index, err.cause)
}
