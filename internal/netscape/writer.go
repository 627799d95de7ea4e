// Netscape Bookmark File Format rendering.
//
// The format is the legacy <DL>/<DT>/<H3>/<A> HTML structure that nearly
// every browser accepts for bookmark import.
package netscape

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/arcutils/arc2bookmarks/internal/bookmarks"
)

// Stats counts what a render actually emitted. Spaces counts only spaces
// that produced a block in the output.
type Stats struct {
	Spaces    int
	Folders   int
	Bookmarks int
}

// Options contains configuration for the writer.
type Options struct {
	// Title is used for the document TITLE and H1. Defaults to
	// "Arc Bookmarks".
	Title string

	// Now supplies the export timestamp written into the header comment.
	// Defaults to time.Now.
	Now func() time.Time
}

// Writer renders space groups into a Netscape bookmark document.
type Writer struct {
	title string
	now   func() time.Time
}

// NewWriter creates a new bookmark document writer.
func NewWriter(opts Options) *Writer {
	w := &Writer{title: opts.Title, now: opts.Now}
	if w.title == "" {
		w.title = "Arc Bookmarks"
	}
	if w.now == nil {
		w.now = time.Now
	}
	return w
}

// Render produces the bookmark document for the given groups along with
// counts of what was emitted. Groups without any pinned item are omitted
// entirely. Rendering has no side effects; writing the result anywhere is
// the caller's concern.
func (w *Writer) Render(groups []bookmarks.SpaceGroup) (string, Stats) {
	var b strings.Builder
	var stats Stats

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<!-- Exported from Arc browser -->\n")
	fmt.Fprintf(&b, "<!-- Export date: %s -->\n", w.now().Format("2006-01-02 15:04:05"))
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	fmt.Fprintf(&b, "<TITLE>%s</TITLE>\n", html.EscapeString(w.title))
	fmt.Fprintf(&b, "<H1>%s</H1>\n", html.EscapeString(w.title))
	b.WriteString("<DL><p>\n")

	for _, group := range groups {
		if group.PinnedItems == 0 {
			continue
		}

		fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(group.Title))
		b.WriteString("    <DL><p>\n")

		for _, folder := range group.Folders {
			fmt.Fprintf(&b, "        <DT><H3>%s</H3>\n", html.EscapeString(folder.Title))
			b.WriteString("        <DL><p>\n")
			for _, entry := range folder.Entries {
				fmt.Fprintf(&b, "            <DT><A HREF=\"%s\">%s</A>\n",
					html.EscapeString(entry.URL), html.EscapeString(entry.Title))
				stats.Bookmarks++
			}
			b.WriteString("        </DL><p>\n")
			stats.Folders++
		}

		for _, entry := range group.Tabs {
			fmt.Fprintf(&b, "        <DT><A HREF=\"%s\">%s</A>\n",
				html.EscapeString(entry.URL), html.EscapeString(entry.Title))
			stats.Bookmarks++
		}

		b.WriteString("    </DL><p>\n")
		stats.Spaces++
	}

	b.WriteString("</DL><p>\n")

	return b.String(), stats
}
