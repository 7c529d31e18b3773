package hashtable

//go:generate moq -rm -out hashtable_mocks_test.go . ResizeObserver

// ResizeKind ...
type ResizeKind uint32

const (
	// ResizeKindGrow capacity doubled after an insert of a new key
	ResizeKindGrow ResizeKind = iota + 1

	// ResizeKindShrink capacity halved after a remove
	ResizeKindShrink
)

func (k ResizeKind) String() string {
	switch k {
	case ResizeKindGrow:
		return "grow"
	case ResizeKindShrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// ResizeEvent ...
type ResizeEvent struct {
	Kind        ResizeKind
	OldCapacity int
	NewCapacity int
	Size        int // number of entries at the time of resizing
}

// ResizeObserver is notified after the bucket array has been rebuilt
type ResizeObserver interface {
	OnResize(event ResizeEvent)
}
