package arc

import (
	"errors"
	"fmt"

	"github.com/arcutils/arc2bookmarks/internal/bookmarks"
)

// ErrCyclicSidebar reports a folder structure that references itself. The
// sidebar is assumed to be a tree; a cycle means the input is corrupt.
var ErrCyclicSidebar = errors.New("cyclic folder structure in sidebar")

// FlattenFolder walks the folder tree rooted at id and returns it as a flat
// list: each folder appears before its subfolders, subfolders follow their
// childrenIds order, and every FlatFolder carries only the folder's direct
// tabs. Folders without any exportable tab of their own are left out, but
// their descendants are still visited.
//
// An id that is missing from the index, or that names a non-folder item,
// yields an empty result. The walk uses an explicit stack with a visited
// set, so a cyclic structure fails with ErrCyclicSidebar instead of
// exhausting the call stack.
func FlattenFolder(id string, idx *ItemIndex) ([]bookmarks.FlatFolder, error) {
	var flat []bookmarks.FlatFolder
	visited := make(map[string]bool)

	stack := []string{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		item, ok := idx.Get(cur)
		if !ok || item.Kind != KindFolder {
			continue
		}
		if visited[cur] {
			return nil, fmt.Errorf("folder %q: %w", cur, ErrCyclicSidebar)
		}
		visited[cur] = true

		folder := bookmarks.FlatFolder{Title: item.Title}
		if folder.Title == "" {
			folder.Title = "Untitled Folder"
		}

		for _, childID := range item.ChildrenIDs {
			child, ok := idx.Get(childID)
			if !ok || child.Kind != KindTab {
				continue
			}
			if entry, ok := TabEntry(child); ok {
				folder.Entries = append(folder.Entries, entry)
			}
		}

		if len(folder.Entries) > 0 {
			flat = append(flat, folder)
		}

		// Push subfolders in reverse so they pop in childrenIds order.
		for i := len(item.ChildrenIDs) - 1; i >= 0; i-- {
			if child, ok := idx.Get(item.ChildrenIDs[i]); ok && child.Kind == KindFolder {
				stack = append(stack, child.ID)
			}
		}
	}

	return flat, nil
}
