// Package installer drives the Visual Studio maintenance tool
// (setup.exe) and parses its declarative export documents.
package installer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyExport reports an export document with nothing in it. The
// most likely cause is that the Visual Studio installer was already
// running and the maintenance tool bailed out without writing one.
var ErrEmptyExport = errors.New("installer: export produced an empty document")

type vsConfig struct {
	Components []string `json:"components"`
}

// ParseExport reads a .vsconfig export document and returns its
// component identifiers.
func ParseExport(doc []byte) ([]string, error) {
	if len(strings.TrimSpace(string(doc))) == 0 {
		return nil, ErrEmptyExport
	}
	var cfg vsConfig
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return nil, fmt.Errorf("parsing export document: %w", err)
	}
	if len(cfg.Components) == 0 {
		return nil, ErrEmptyExport
	}
	return cfg.Components, nil
}
