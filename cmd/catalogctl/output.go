package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func parseOutputFormat(s string) (string, error) {
	switch s {
	case "", formatYAML:
		return formatYAML, nil
	case formatJSON:
		return formatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want yaml or json)", s)
	}
}

// emit writes v in format. YAML goes through the JSON encoding first so both
// formats share the same field names.
func emit(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	if format == formatJSON {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
