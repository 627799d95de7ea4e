package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSpaces(t *testing.T) {
	container := gjson.Parse(`{
		"spaces": [
			"space-marker",
			{"id":"s1","title":"Work","containerIDs":["unpinned","u1","pinned","p1"]},
			{"id":"s2","title":"Personal","containerIDs":["unpinned","u2"]},
			{"id":"s3"},
			{"id":"s4","title":"Trailing","containerIDs":["unpinned","u4","pinned"]}
		]
	}`)

	spaces := Spaces(container)
	require.Len(t, spaces, 3)

	assert.Equal(t, Space{ID: "s1", Title: "Work", PinnedContainerID: "p1"}, spaces[0])

	// No "pinned" marker means the space has no pinned content.
	assert.Equal(t, Space{ID: "s2", Title: "Personal"}, spaces[1])

	// A trailing "pinned" marker with nothing after it resolves to nothing.
	assert.Equal(t, Space{ID: "s4", Title: "Trailing"}, spaces[2])
}

func TestSpacesNone(t *testing.T) {
	assert.Empty(t, Spaces(gjson.Parse(`{}`)))
	assert.Empty(t, Spaces(gjson.Parse(`{"spaces":[]}`)))
	assert.Empty(t, Spaces(gjson.Parse(`{"spaces":["only","markers"]}`)))
}
