package hashtable

import (
	"fmt"
	"log"
)

const (
	// DefaultCapacity is the initial number of buckets
	DefaultCapacity = 8

	// DefaultMinCapacity is the smallest capacity a table can shrink to
	DefaultMinCapacity = 1

	// DefaultMaxCapacity is the largest capacity a table can grow to
	DefaultMaxCapacity = 1 << 30
)

type tableConfig struct {
	capacity    int
	minCapacity int
	maxCapacity int

	hashFunc    HashFunc
	observer    ResizeObserver
	errorLogger func(err error)
}

// Option ...
type Option func(conf *tableConfig)

func defaultErrorLogger(err error) {
	log.Println("[ERROR] hashtable:", err)
}

func computeConfig(options []Option) tableConfig {
	conf := tableConfig{
		capacity:    DefaultCapacity,
		minCapacity: DefaultMinCapacity,
		maxCapacity: DefaultMaxCapacity,

		hashFunc:    DefaultHash,
		observer:    nil,
		errorLogger: defaultErrorLogger,
	}
	for _, fn := range options {
		fn(&conf)
	}
	return conf
}

func (c tableConfig) validate() error {
	if c.capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.capacity)
	}
	if c.minCapacity <= 0 || c.minCapacity > c.capacity {
		return fmt.Errorf("%w: %d (capacity: %d)", ErrInvalidMinCapacity, c.minCapacity, c.capacity)
	}
	if c.maxCapacity < c.capacity {
		return fmt.Errorf("%w: %d (capacity: %d)", ErrInvalidMaxCapacity, c.maxCapacity, c.capacity)
	}
	if c.hashFunc == nil {
		return ErrNilHashFunc
	}
	return nil
}

// WithCapacity configures the initial number of buckets, default is DefaultCapacity
func WithCapacity(capacity int) Option {
	return func(conf *tableConfig) {
		conf.capacity = capacity
	}
}

// WithMinCapacity configures the capacity below which the table will NOT shrink.
// Must be positive and not greater than the initial capacity, default is DefaultMinCapacity
func WithMinCapacity(capacity int) Option {
	return func(conf *tableConfig) {
		conf.minCapacity = capacity
	}
}

// WithMaxCapacity configures the capacity above which the table will NOT grow,
// chains become longer instead. Default is DefaultMaxCapacity
func WithMaxCapacity(capacity int) Option {
	return func(conf *tableConfig) {
		conf.maxCapacity = capacity
	}
}

// WithHashFunc replaces DefaultHash
func WithHashFunc(fn HashFunc) Option {
	return func(conf *tableConfig) {
		conf.hashFunc = fn
	}
}

// WithResizeObserver configures an observer called after every resize
func WithResizeObserver(observer ResizeObserver) Option {
	return func(conf *tableConfig) {
		conf.observer = observer
	}
}

// WithErrorLogger configures the logger for non-fatal problems, e.g. ErrMaxCapacityReached
func WithErrorLogger(logger func(err error)) Option {
	return func(conf *tableConfig) {
		conf.errorLogger = logger
	}
}
