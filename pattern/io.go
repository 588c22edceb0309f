package pattern

import (
	"encoding/json"
	"fmt"
	"io"
)

// Save writes p to w as JSON, the format the command-line tool and any
// downstream viewer consume (§6 "External Interfaces").
func (p Pattern) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("pattern: save: %v", err)
	}
	return nil
}

// Load reads a Pattern previously written by Save.
func Load(r io.Reader) (Pattern, error) {
	var p Pattern
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Pattern{}, fmt.Errorf("pattern: load: %v", err)
	}
	return p, nil
}
