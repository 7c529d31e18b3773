package chain

import (
	"sync"
)

var entryPool = sync.Pool{
	New: func() any {
		return &Entry{}
	},
}

func newEntry() *Entry {
	return entryPool.Get().(*Entry)
}

func putEntry(e *Entry) {
	*e = Entry{}
	entryPool.Put(e)
}
