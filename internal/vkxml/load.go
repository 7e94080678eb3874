package vkxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Parse decodes one registry document from r.
func Parse(r io.Reader) (*Registry, error) {
	var reg Registry
	if err := xml.NewDecoder(r).Decode(&reg); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	return &reg, nil
}

// LoadFile decodes the registry document at path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry %s: %w", path, err)
	}
	defer f.Close()

	reg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return reg, nil
}
