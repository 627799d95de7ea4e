package bookmarks

// Entry is a single importable bookmark.
type Entry struct {
	Title string
	URL   string
}

// FlatFolder is one level of a flattened folder tree: the folder's title
// plus only its direct bookmarks. Nested folders become their own
// FlatFolder values.
type FlatFolder struct {
	Title   string
	Entries []Entry
}

// SpaceGroup holds everything exported for one Arc space: the flattened
// folders first, then the standalone pinned tabs in their original
// top-level order. PinnedItems counts every top-level pinned item found
// for the space, including ones that later get filtered out, so callers
// can tell an empty space apart from one whose items were all dropped.
type SpaceGroup struct {
	Title       string
	Folders     []FlatFolder
	Tabs        []Entry
	PinnedItems int
}
