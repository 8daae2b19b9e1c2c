package framekit

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML writes the frame as a sequence of row mappings with keys in
// column order. The document is encoded in memory first; the encoder folds
// writer errors into its own message.
func writeYAML(w io.Writer, f frame) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for r := range f.nrows {
		row := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for c, name := range f.names {
			val := &yaml.Node{}
			if err := val.Encode(f.cols[c][r]); err != nil {
				return err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
			row.Content = append(row.Content, key, val)
		}
		doc.Content = append(doc.Content, row)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
