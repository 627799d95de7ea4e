package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/arcutils/arc2bookmarks/internal/bookmarks"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ItemKind
	}{
		{
			name: "data with list key is a folder",
			raw:  `{"id":"a","data":{"list":{}}}`,
			want: KindFolder,
		},
		{
			name: "data with tab key is a tab",
			raw:  `{"id":"a","data":{"tab":{"savedURL":"http://x"}}}`,
			want: KindTab,
		},
		{
			name: "missing data",
			raw:  `{"id":"a","title":"bare"}`,
			want: KindUnknown,
		},
		{
			name: "null data",
			raw:  `{"id":"a","data":null}`,
			want: KindUnknown,
		},
		{
			name: "data without list or tab",
			raw:  `{"id":"a","data":{"itemContainer":{}}}`,
			want: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(gjson.Parse(tt.raw)))
		})
	}
}

func TestTabEntry(t *testing.T) {
	tests := []struct {
		name string
		item *Item
		want bookmarks.Entry
		ok   bool
	}{
		{
			name: "item title wins over saved title",
			item: &Item{Title: "Mine", Kind: KindTab, Tab: &TabPayload{SavedURL: "http://a", SavedTitle: "Saved"}},
			want: bookmarks.Entry{Title: "Mine", URL: "http://a"},
			ok:   true,
		},
		{
			name: "saved title fallback",
			item: &Item{Kind: KindTab, Tab: &TabPayload{SavedURL: "http://a", SavedTitle: "Saved"}},
			want: bookmarks.Entry{Title: "Saved", URL: "http://a"},
			ok:   true,
		},
		{
			name: "untitled fallback",
			item: &Item{Kind: KindTab, Tab: &TabPayload{SavedURL: "http://a"}},
			want: bookmarks.Entry{Title: "Untitled", URL: "http://a"},
			ok:   true,
		},
		{
			name: "tab without saved URL is not exportable",
			item: &Item{Title: "NoURL", Kind: KindTab, Tab: &TabPayload{}},
			ok:   false,
		},
		{
			name: "folder is not an entry",
			item: &Item{Title: "Folder", Kind: KindFolder},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TabEntry(tt.item)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
