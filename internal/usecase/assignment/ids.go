package assignment

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// lessID orders ids by their canonical string form
func lessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return lessID(ids[i], ids[j]) })
}
