package als

// Registry is how this package talks to the OS hardware service registry.
// This is a PORT - the real IOKit adapter (internal/ioreg) and the test
// fake (internal/fakereg) implement it.
type Registry interface {
	// Services returns an enumeration cursor over every registered
	// service of the given class. The caller owns the cursor and must
	// Close it.
	Services(class string) (Cursor, error)
}

// Cursor is a one-pass, non-restartable enumeration of service entries.
type Cursor interface {
	// Next advances the enumeration. It returns false when the cursor is
	// exhausted. The caller owns the returned Service and must Close it.
	Next() (Service, bool)

	// Close releases the native cursor. Safe to call more than once.
	Close()
}

// Service is one hardware service registry entry.
type Service interface {
	// Name returns the entry's display name as registered with the OS.
	Name() (string, error)

	// Property reads a named property off the live entry. The second
	// return is false when the property is absent.
	Property(key string) (any, bool)

	// Close releases the native handle. Safe to call more than once.
	Close()
}
