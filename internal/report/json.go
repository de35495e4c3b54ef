package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/therootcompany/golib/colorjson"
)

// WriteJSON writes v as indented JSON, colorized when colored is set
func WriteJSON(w io.Writer, v any, colored bool) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}

	if colored {
		// the colorizer walks generic values, not structs
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("failed to decode json: %w", err)
		}

		f := colorjson.NewFormatter()
		f.Indent = 2
		if data, err = f.Marshal(generic); err != nil {
			return fmt.Errorf("failed to colorize json: %w", err)
		}
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}
