package framekit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// writeJSON writes the frame as an array of row objects with keys in column
// order. Missing and non-finite values become null.
func writeJSON(w io.Writer, f frame) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for r := range f.nrows {
		if r > 0 {
			buf.WriteByte(',')
		}
		if err := appendRowObject(&buf, f, r); err != nil {
			return err
		}
	}
	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// appendRowObject writes row r as a JSON object. encoding/json sorts map
// keys, so the object is assembled by hand to keep column order.
func appendRowObject(buf *bytes.Buffer, f frame, r int) error {
	buf.WriteByte('{')
	for c, name := range f.names {
		if c > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		val, err := json.Marshal(jsonValue(f.cols[c][r]))
		if err != nil {
			return fmt.Errorf("row %d, column %q: %w", r, name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}

func jsonValue(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return nil
		}
	}
	return v
}
