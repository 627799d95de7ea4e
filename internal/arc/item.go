package arc

import (
	"github.com/tidwall/gjson"

	"github.com/arcutils/arc2bookmarks/internal/bookmarks"
)

// ItemKind is the resolved kind of a sidebar item. Raw records are loosely
// typed; the kind is decided once when the index is built and downstream
// code never re-inspects the raw JSON.
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindFolder
	KindTab
)

func (k ItemKind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindTab:
		return "tab"
	}
	return "unknown"
}

// TabPayload carries the tab fields this exporter cares about.
type TabPayload struct {
	SavedURL   string
	SavedTitle string
}

// Item is a typed sidebar item record.
type Item struct {
	ID          string
	Title       string
	ParentID    string
	ChildrenIDs []string
	Kind        ItemKind
	Tab         *TabPayload // set when Kind == KindTab
}

// Classify decides what a raw sidebar record represents: a record whose
// data payload has a "list" key is a folder, one with a "tab" key is a tab,
// anything else (including a missing payload) is unknown.
func Classify(raw gjson.Result) ItemKind {
	data := raw.Get("data")
	if !data.Exists() {
		return KindUnknown
	}
	if data.Get("list").Exists() {
		return KindFolder
	}
	if data.Get("tab").Exists() {
		return KindTab
	}
	return KindUnknown
}

func itemFromRaw(raw gjson.Result) *Item {
	item := &Item{
		ID:       raw.Get("id").String(),
		Title:    raw.Get("title").String(),
		ParentID: raw.Get("parentID").String(),
		Kind:     Classify(raw),
	}

	for _, child := range raw.Get("childrenIds").Array() {
		item.ChildrenIDs = append(item.ChildrenIDs, child.String())
	}

	if item.Kind == KindTab {
		tab := raw.Get("data.tab")
		item.Tab = &TabPayload{
			SavedURL:   tab.Get("savedURL").String(),
			SavedTitle: tab.Get("savedTitle").String(),
		}
	}

	return item
}

// TabEntry converts a tab item into a bookmark entry. The title falls back
// from the item's own title to the tab's saved title to "Untitled"; ok is
// false for non-tab items and for tabs without a saved URL, which are not
// exportable.
func TabEntry(item *Item) (bookmarks.Entry, bool) {
	if item.Kind != KindTab || item.Tab == nil || item.Tab.SavedURL == "" {
		return bookmarks.Entry{}, false
	}

	title := item.Title
	if title == "" {
		title = item.Tab.SavedTitle
	}
	if title == "" {
		title = "Untitled"
	}

	return bookmarks.Entry{Title: title, URL: item.Tab.SavedURL}, true
}
