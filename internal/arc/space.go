package arc

import "github.com/tidwall/gjson"

// Space is a named sidebar workspace with its resolved pinned container.
type Space struct {
	ID    string
	Title string

	// PinnedContainerID is the container holding the space's pinned items.
	// Empty when the space declares no pinned section.
	PinnedContainerID string
}

// Spaces extracts the spaces declared by a container. Only object entries
// with a title count as spaces; Arc interleaves other values in the array.
// The pinned container id is the element immediately following the literal
// "pinned" marker in the space's containerIDs list.
func Spaces(container gjson.Result) []Space {
	var spaces []Space

	for _, raw := range container.Get("spaces").Array() {
		if !raw.IsObject() || !raw.Get("title").Exists() {
			continue
		}

		space := Space{
			ID:    raw.Get("id").String(),
			Title: raw.Get("title").String(),
		}

		ids := raw.Get("containerIDs").Array()
		for i, cid := range ids {
			if cid.Type == gjson.String && cid.Str == "pinned" && i+1 < len(ids) {
				space.PinnedContainerID = ids[i+1].String()
			}
		}

		spaces = append(spaces, space)
	}

	return spaces
}
