package hashtable

import "errors"

// ErrInvalidCapacity returned from New when the initial capacity is not positive
var ErrInvalidCapacity = errors.New("hashtable: invalid capacity")

// ErrInvalidMinCapacity returned from New when the min capacity is not positive or greater than the initial capacity
var ErrInvalidMinCapacity = errors.New("hashtable: invalid min capacity")

// ErrInvalidMaxCapacity returned from New when the max capacity is smaller than the initial capacity
var ErrInvalidMaxCapacity = errors.New("hashtable: invalid max capacity")

// ErrNilHashFunc ...
var ErrNilHashFunc = errors.New("hashtable: hash func is nil")

// ErrMaxCapacityReached passed to the error logger when the table needs to grow but is already at max capacity
var ErrMaxCapacityReached = errors.New("hashtable: max capacity reached")

// ErrHashIndexOutOfRange is the panic value when a hash func returns an index outside of [0, capacity)
var ErrHashIndexOutOfRange = errors.New("hashtable: hash index out of range")
