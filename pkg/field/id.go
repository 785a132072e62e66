package field

import (
	"strconv"
	"sync/atomic"

	nanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength   = 12
	idPrefix   = "fld-"
)

var fallbackSeq atomic.Uint64

func newID() string {
	id, err := nanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return idPrefix + strconv.FormatUint(fallbackSeq.Add(1), 10)
	}
	return idPrefix + id
}
