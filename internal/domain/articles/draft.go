package articles

import (
	"strings"

	"github.com/google/uuid"
)

// stagedPrefix marks identifiers that exist only in an unsaved editor
// session. They are never sent to storage; the save path strips all IDs and
// lets the database assign real ones.
const stagedPrefix = "staged-"

func NewStagedID() string {
	return stagedPrefix + uuid.NewString()
}

func IsStagedID(id string) bool {
	return strings.HasPrefix(id, stagedPrefix)
}

// Draft is the in-memory block sequence an editor works on before saving.
// Every mutation keeps the ordering dense and 1-based.
type Draft []BlockInput

// Add appends an empty block of the given type at the end. The required
// value stays empty until the user fills it in; validation happens on save.
func (d Draft) Add(blockType BlockType) Draft {
	return append(d, BlockInput{
		ID:    NewStagedID(),
		Type:  blockType,
		Order: len(d) + 1,
	})
}

// Move takes the block at from and reinserts it at to, then renumbers.
// Out-of-range positions make it a no-op; the editor disables moving the
// first block up and the last block down, the model just refuses quietly.
func (d Draft) Move(from, to int) Draft {
	if from < 0 || from >= len(d) || to < 0 || to >= len(d) {
		return d
	}

	out := make(Draft, 0, len(d))
	out = append(out, d[:from]...)
	out = append(out, d[from+1:]...)

	out = append(out[:to], append(Draft{d[from]}, out[to:]...)...)

	return out.renumber()
}

// Remove drops the block at i and renumbers the rest.
func (d Draft) Remove(i int) Draft {
	if i < 0 || i >= len(d) {
		return d
	}
	out := make(Draft, 0, len(d)-1)
	out = append(out, d[:i]...)
	out = append(out, d[i+1:]...)
	return out.renumber()
}

func (d Draft) renumber() Draft {
	for i := range d {
		d[i].Order = i + 1
	}
	return d
}
