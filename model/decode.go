// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads a JSON model from r, normalises and validates it.
func Decode(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("model: decode: %w", err)
	}
	if err := m.Normalize(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Load decodes the JSON model stored at path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes m as indented JSON.
func Encode(w io.Writer, m *Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(m)
}
