package export

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arcutils/arc2bookmarks/internal/arc"
	"github.com/arcutils/arc2bookmarks/internal/bookmarks"
	"github.com/arcutils/arc2bookmarks/internal/netscape"
	"github.com/arcutils/arc2bookmarks/internal/x"
)

// Structural failures, distinct from JSON parse errors: the document is
// valid JSON but does not contain an exportable sidebar.
var (
	ErrNoContainers = errors.New("no containers found in sidebar data")
	ErrNoSpaces     = errors.New("no spaces found in sidebar data")
)

// Options contains configuration for the exporter.
type Options struct {
	// Title for the generated bookmark document.
	Title string

	// Now overrides the export timestamp, for tests.
	Now func() time.Time
}

// Result is a finished export: the bookmark document plus what it contains.
type Result struct {
	HTML  string
	Stats netscape.Stats
}

// Exporter converts StorableSidebar.json data into a Netscape bookmark
// document.
type Exporter struct {
	writer *netscape.Writer
}

// New creates an exporter.
func New(opts Options) *Exporter {
	return &Exporter{
		writer: netscape.NewWriter(netscape.Options{Title: opts.Title, Now: opts.Now}),
	}
}

// Export runs the whole pipeline on raw sidebar bytes. Any returned error
// means no usable document was produced; per-item oddities never fail the
// export and only show up as lower counts.
func (e *Exporter) Export(data []byte) (*Result, error) {
	groups, err := e.Collect(data)
	if err != nil {
		return nil, err
	}

	html, stats := e.writer.Render(groups)
	return &Result{HTML: html, Stats: stats}, nil
}

// Collect parses the sidebar and resolves every space into a SpaceGroup,
// in declaration order. Spaces without pinned content come back with an
// empty group so callers can still report them.
func (e *Exporter) Collect(data []byte) ([]bookmarks.SpaceGroup, error) {
	doc, err := arc.ParseSidebar(data)
	if err != nil {
		return nil, err
	}

	container, ok := doc.LastContainer()
	if !ok {
		return nil, ErrNoContainers
	}

	spaces := arc.Spaces(container)
	if len(spaces) == 0 {
		return nil, ErrNoSpaces
	}

	index := arc.BuildIndex(container.Get("items"))
	slog.Debug("indexed sidebar items", "items", index.Len(), "spaces", len(spaces))

	groups := make([]bookmarks.SpaceGroup, 0, len(spaces))
	for _, space := range spaces {
		group, err := resolveSpace(space, index)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// resolveSpace gathers the space's top-level pinned items and splits them
// into flattened folders and standalone tabs.
func resolveSpace(space arc.Space, index *arc.ItemIndex) (bookmarks.SpaceGroup, error) {
	group := bookmarks.SpaceGroup{Title: space.Title}
	if space.PinnedContainerID == "" {
		slog.Debug("space has no pinned container", "space", space.Title)
		return group, nil
	}

	pinned := x.Filter2(index.All(), func(_ string, item *arc.Item) bool {
		return item.ParentID == space.PinnedContainerID
	})

	for item := range x.Values(pinned) {
		group.PinnedItems++

		switch item.Kind {
		case arc.KindFolder:
			folders, err := arc.FlattenFolder(item.ID, index)
			if err != nil {
				return group, fmt.Errorf("space %q: %w", space.Title, err)
			}
			group.Folders = append(group.Folders, folders...)
		case arc.KindTab:
			if entry, ok := arc.TabEntry(item); ok {
				group.Tabs = append(group.Tabs, entry)
			}
		default:
			slog.Debug("skipping unclassified pinned item", "space", space.Title, "id", item.ID)
		}
	}

	return group, nil
}
