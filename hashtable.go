// Package hashtable implements an int to int hash table using separate chaining.
// The table doubles its number of buckets when a new key arrives while the
// number of keys equals the number of buckets, and halves it after a remove
// leaves at most capacity / 4 keys.
package hashtable

import (
	"fmt"

	"github.com/QuangTung97/hashtable/chain"
	"github.com/QuangTung97/hashtable/loadcal"
)

// Table is a chained hash table.
// It is NOT thread safe, concurrent access must be protected by a mutex
type Table struct {
	buckets []chain.Chain
	size    int

	conf tableConfig

	maxReached bool
}

// New creates a table, returns an error if the options are invalid
func New(options ...Option) (*Table, error) {
	conf := computeConfig(options)
	if err := conf.validate(); err != nil {
		return nil, err
	}

	return &Table{
		buckets: make([]chain.Chain, conf.capacity),
		conf:    conf,
	}, nil
}

// Size returns the number of keys
func (t *Table) Size() int {
	return t.size
}

// Capacity returns the number of buckets
func (t *Table) Capacity() int {
	return len(t.buckets)
}

func (t *Table) index(key int, capacity int) int {
	index := t.conf.hashFunc(key, capacity)
	if index < 0 || index >= capacity {
		panic(fmt.Errorf(
			"%w: key = %d, capacity = %d, index = %d",
			ErrHashIndexOutOfRange, key, capacity, index,
		))
	}
	return index
}

// Insert sets the value of the key, overwriting the previous value if the key exists
func (t *Table) Insert(key int, value int) {
	index := t.index(key, len(t.buckets))

	if e := t.buckets[index].Find(key); e != nil {
		e.Value = value
		return
	}

	if t.size == len(t.buckets) && t.grow() {
		index = t.index(key, len(t.buckets))
	}

	t.buckets[index].Append(key, value)
	t.size++
}

// Get returns the value of the key, found = false if the key does not exist
func (t *Table) Get(key int) (value int, found bool) {
	index := t.index(key, len(t.buckets))

	e := t.buckets[index].Find(key)
	if e == nil {
		return 0, false
	}
	return e.Value, true
}

// Remove deletes the key, does nothing if the key does not exist
func (t *Table) Remove(key int) {
	index := t.index(key, len(t.buckets))

	bucket := &t.buckets[index]
	e := bucket.Find(key)
	if e == nil {
		return
	}

	bucket.RemoveAt(e)
	t.size--

	capacity := len(t.buckets)
	if t.size <= capacity/4 && capacity/2 >= t.conf.minCapacity {
		t.maxReached = false
		t.resize(capacity/2, ResizeKindShrink)
	}
}

// Range calls fn for each key value pair, in no particular order, stops when fn returns false.
// fn must NOT modify the table
func (t *Table) Range(fn func(key int, value int) bool) {
	for i := range t.buckets {
		for e := t.buckets[i].Head(); e != nil; e = e.Next() {
			if !fn(e.Key, e.Value) {
				return
			}
		}
	}
}

// Clear removes all keys and goes back to the initial capacity
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i].Clear()
	}
	t.buckets = make([]chain.Chain, t.conf.capacity)
	t.size = 0
	t.maxReached = false
}

// LoadStats returns the distribution of keys over buckets
func (t *Table) LoadStats() loadcal.Stats {
	var calc loadcal.Calculator
	for i := range t.buckets {
		calc.AddBucket(t.buckets[i].Len())
	}
	return calc.Result()
}

// grow returns false when already at max capacity
func (t *Table) grow() bool {
	capacity := len(t.buckets)

	newCapacity := capacity * 2
	if newCapacity > t.conf.maxCapacity || newCapacity < capacity {
		newCapacity = t.conf.maxCapacity
	}

	if newCapacity <= capacity {
		if !t.maxReached {
			t.maxReached = true
			t.conf.errorLogger(fmt.Errorf("%w: %d", ErrMaxCapacityReached, capacity))
		}
		return false
	}

	t.resize(newCapacity, ResizeKindGrow)
	return true
}

func (t *Table) resize(newCapacity int, kind ResizeKind) {
	oldBuckets := t.buckets
	newBuckets := make([]chain.Chain, newCapacity)

	for i := range oldBuckets {
		for e := oldBuckets[i].Head(); e != nil; e = e.Next() {
			index := t.index(e.Key, newCapacity)
			newBuckets[index].Append(e.Key, e.Value)
		}
	}

	t.buckets = newBuckets
	for i := range oldBuckets {
		oldBuckets[i].Clear()
	}

	if t.conf.observer != nil {
		t.conf.observer.OnResize(ResizeEvent{
			Kind:        kind,
			OldCapacity: len(oldBuckets),
			NewCapacity: newCapacity,
			Size:        t.size,
		})
	}
}
