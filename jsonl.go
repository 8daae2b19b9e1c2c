package framekit

import (
	"bytes"
	"io"
)

// writeJSONL writes one row object per line, flushing each line as it is
// built.
func writeJSONL(w io.Writer, f frame) error {
	var buf bytes.Buffer
	for r := range f.nrows {
		buf.Reset()
		if err := appendRowObject(&buf, f, r); err != nil {
			return err
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
