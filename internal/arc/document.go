package arc

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Sidebar wraps a parsed StorableSidebar.json document.
type Sidebar struct {
	root gjson.Result
}

// ParseSidebar parses raw StorableSidebar.json bytes. Invalid JSON is the
// only hard failure; structural oddities inside a valid document are left
// for later stages to treat as absent.
func ParseSidebar(data []byte) (*Sidebar, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse sidebar JSON: %w", err)
	}

	return &Sidebar{root: gjson.ParseBytes(data)}, nil
}

// LastContainer returns the final entry of sidebar.containers, or ok=false
// when the document has none. Arc appends container snapshots, so the last
// entry is the current one; that append-only behavior is an observed
// property of the format and is relied on as-is.
func (s *Sidebar) LastContainer() (gjson.Result, bool) {
	containers := s.root.Get("sidebar.containers").Array()
	if len(containers) == 0 {
		return gjson.Result{}, false
	}

	return containers[len(containers)-1], true
}
