package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers used when translating colour codes in
// reply messages, which happens on every formatted reply.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}
