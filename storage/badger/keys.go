package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/worklens/core"
)

// Key prefixes for different data types. Work records and the title
// index use distinct prefixes so a prefix scan over one never sees
// the other.
const (
	workRecordPrefix   = "wrkrec"
	workTitlePrefix    = "wrktitle"
	jurisdictionPrefix = "jurrec"
	vocabularyKey      = "spell:vocab"
	modelStateKey      = "predict:model"
)

// makeWorkKey generates a key for a work record by ID.
func makeWorkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", workRecordPrefix, id))
}

// makeWorkTitleKey generates a composite key for the title index.
// Format: prefix:normalizedTitle:id
// The ID suffix is BigEndian so entries for the same title sort
// deterministically.
func makeWorkTitleKey(normalizedTitle string, id core.ID) []byte {
	prefix := workTitlePrefix + ":" + normalizedTitle + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialWorkTitleKey generates a partial key for scanning every
// work sharing a normalized title.
func makePartialWorkTitleKey(normalizedTitle string) []byte {
	return []byte(workTitlePrefix + ":" + normalizedTitle + ":")
}

// makeJurisdictionKey generates a key for a jurisdiction row by code.
// Codes sort lexicographically, so a prefix scan yields rows in code
// order.
func makeJurisdictionKey(code string) []byte {
	return []byte(fmt.Sprintf("%s:%s", jurisdictionPrefix, code))
}
