package als

import "fmt"

// Iterator lazily produces Sensors from an enumeration cursor. It is
// one-pass and non-restartable: once exhausted it stays exhausted. The
// iterator exclusively owns the cursor; candidate handles pulled during
// iteration are released as soon as they are consumed or skipped.
type Iterator struct {
	hub  *Hub
	cur  Cursor
	done bool
}

// Next produces the next sensor. It returns (nil, false, nil) when the
// enumeration is exhausted, and keeps doing so on further calls.
//
// Candidates that lack the illuminance property are skipped. A candidate
// that has it is re-resolved by display name through a fresh registry scan
// rather than by reusing the candidate handle; an entry that vanishes
// between the property probe and that re-lookup therefore surfaces as
// ErrNotFound, which is propagated rather than swallowed.
func (it *Iterator) Next() (*Sensor, bool, error) {
	if it.done {
		return nil, false, nil
	}

	for {
		cand, ok := it.cur.Next()
		if !ok {
			it.finish()
			return nil, false, nil
		}

		if _, has := cand.Property(it.hub.property); !has {
			cand.Close()
			continue
		}

		name, err := cand.Name()
		if err != nil {
			cand.Close()
			return nil, false, fmt.Errorf("reading sensor service name: %w", err)
		}

		s, err := it.hub.OpenSensor(name)
		cand.Close()
		if err != nil {
			return nil, false, err
		}
		return s, true, nil
	}
}

// Close releases the enumeration cursor. Safe to call more than once.
func (it *Iterator) Close() {
	if !it.done {
		it.finish()
	}
}

func (it *Iterator) finish() {
	it.done = true
	it.cur.Close()
}
