package chain

// Entry is a key value pair stored in a Chain
type Entry struct {
	Key   int
	Value int

	prev *Entry
	next *Entry
}

// Next returns the following entry in the same chain, nil at the tail
func (e *Entry) Next() *Entry {
	return e.next
}

// Chain is a doubly linked list of entries belonging to a single bucket.
// The zero value is an empty chain.
type Chain struct {
	head *Entry
	tail *Entry
	size int
}

// Head returns the first entry, nil if the chain is empty
func (c *Chain) Head() *Entry {
	return c.head
}

// Len returns the number of entries
func (c *Chain) Len() int {
	return c.size
}

// Append adds a new entry at the tail.
// It does NOT check for duplicated keys, callers must call Find first.
func (c *Chain) Append(key int, value int) *Entry {
	e := newEntry()
	e.Key = key
	e.Value = value

	if c.tail == nil {
		c.head = e
		c.tail = e
	} else {
		e.prev = c.tail
		c.tail.next = e
		c.tail = e
	}

	c.size++
	return e
}

// Find scans from the head and returns the entry with the key, or nil
func (c *Chain) Find(key int) *Entry {
	for e := c.head; e != nil; e = e.next {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// RemoveAt unlinks the entry from the chain and releases it.
// The entry MUST be obtained from Find or Append on the same chain,
// and MUST NOT be used after this call.
func (c *Chain) RemoveAt(e *Entry) {
	if e == nil {
		return
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}

	c.size--
	putEntry(e)
}

// Clear releases every entry
func (c *Chain) Clear() {
	e := c.head
	for e != nil {
		next := e.next
		putEntry(e)
		e = next
	}
	*c = Chain{}
}
