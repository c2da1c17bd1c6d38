package rope

// Error is the package's error type, grounded on the same shape
// npillmayer-cords uses for its package errors (a named string
// implementing error, paired with sentinel constants) rather than a
// struct type, since none of these carry any payload beyond their
// message.
type Error string

func (e Error) Error() string { return string(e) }

// ErrOutOfRange is returned by the Try-prefixed variants of Index and
// Extract when pos is not a valid element position. The base Index and
// Extract methods instead return a nil/zero result silently, per
// spec.md §7's "OutOfRange (silent)" taxonomy entry — ErrOutOfRange
// exists only for callers that prefer an error-returning API shape.
const ErrOutOfRange = Error("rope: position out of range")

// ErrIterMisuse is the panic value an Iterator raises, in debug builds
// (see DebugIterators), when it detects that its Rope was mutated while
// the iterator was still live — spec.md §5's documented-but-undefined
// misuse case, made loud instead of silent.
const ErrIterMisuse = Error("rope: iterator used after its rope was mutated")
