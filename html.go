package framekit

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, g grid, o Options) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	if o.Index {
		if _, err := fmt.Fprintln(w, "      <th></th>"); err != nil {
			return err
		}
	}
	for _, col := range g.header {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", rightAligned, html.EscapeString(col)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for i, row := range g.rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		if o.Index {
			if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(g.index[i])); err != nil {
				return err
			}
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", rightAligned, html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "</table>"); err != nil {
		return err
	}
	if g.footer != "" {
		_, err := fmt.Fprintf(w, "<p>%s</p>\n", html.EscapeString(g.footer))
		return err
	}
	return nil
}

const rightAligned = ` style="text-align: right"`
