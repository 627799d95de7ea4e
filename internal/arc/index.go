package arc

import (
	"iter"

	"github.com/tidwall/gjson"
)

// ItemIndex maps item ids to their typed records. It is built once from a
// sidebar container and only read afterwards. Insertion order is preserved
// so scans over the index are deterministic and follow the order items
// appear in the source file.
type ItemIndex struct {
	byID  map[string]*Item
	order []string
}

// BuildIndex interprets the container's flat items array. The array
// alternates between id markers and item records: elements at even
// positions are ignored, elements at odd positions are indexed when they
// are objects carrying an "id" field. This pairing is a documented contract
// of the StorableSidebar format, not an inference. Anything that does not
// fit the shape is skipped; a malformed or empty array yields an empty
// index.
func BuildIndex(items gjson.Result) *ItemIndex {
	idx := &ItemIndex{byID: make(map[string]*Item)}

	arr := items.Array()
	for i := 0; i+1 < len(arr); i += 2 {
		rec := arr[i+1]
		if !rec.IsObject() || !rec.Get("id").Exists() {
			continue
		}

		item := itemFromRaw(rec)
		if _, seen := idx.byID[item.ID]; !seen {
			idx.order = append(idx.order, item.ID)
		}
		idx.byID[item.ID] = item
	}

	return idx
}

// Get looks up an item by id.
func (idx *ItemIndex) Get(id string) (*Item, bool) {
	item, ok := idx.byID[id]
	return item, ok
}

// Len reports the number of indexed items.
func (idx *ItemIndex) Len() int {
	return len(idx.order)
}

// All yields every indexed item in insertion order.
func (idx *ItemIndex) All() iter.Seq2[string, *Item] {
	return func(yield func(string, *Item) bool) {
		for _, id := range idx.order {
			if !yield(id, idx.byID[id]) {
				return
			}
		}
	}
}
