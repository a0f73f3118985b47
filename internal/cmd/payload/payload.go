// Package payload reads the document data for create and update commands,
// either inline or from a file.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// Read parses the document payload from the -data or -file flag. Exactly one
// of the two must be supplied. The file is read through the fs abstraction
// so tests can use an in-memory filesystem.
func Read(fs afero.Fs, data, file string) (map[string]any, error) {
	var raw []byte
	switch {
	case data != "" && file != "":
		return nil, errors.New("specify only one of -data and -file")
	case data != "":
		raw = []byte(data)
	case file != "":
		b, err := afero.ReadFile(fs, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file %q: %w", file, err)
		}
		raw = b
	default:
		return nil, errors.New("one of -data or -file is required")
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	return doc, nil
}
