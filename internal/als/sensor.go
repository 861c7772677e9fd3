package als

import (
	"fmt"

	"go.uber.org/zap"
)

// maxNameLen bounds the cached display name, matching the registry's own
// 128-byte name buffer.
const maxNameLen = 127

// Sensor wraps one ambient light sensor service entry. It exclusively owns
// the underlying native handle until Close releases it.
type Sensor struct {
	hub  *Hub
	svc  Service
	name string
}

// Reopen re-constructs the sensor against the named registry entry. A new
// handle is acquired first; only then is any previously held handle
// released, so a failed Reopen leaves the sensor as it was.
func (s *Sensor) Reopen(name string) error {
	if s.hub == nil {
		return ErrInvalidState
	}

	cur, err := s.hub.services()
	if err != nil {
		return err
	}
	defer cur.Close()

	var found Service
	for {
		cand, ok := cur.Next()
		if !ok {
			break
		}
		// Entries whose name cannot be read are skipped, as are
		// non-matching ones. First exact match wins.
		n, err := cand.Name()
		if err == nil && n == name {
			found = cand
			break
		}
		cand.Close()
	}
	if found == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if s.svc != nil {
		s.svc.Close()
	}
	s.svc = found
	s.name = truncate(name, maxNameLen)
	s.hub.log.Debug("sensor opened", zap.String("name", s.name))
	return nil
}

// CurrentLux reads the illuminance property off the live hardware entry.
// Nothing is cached; every call re-queries the registry. The native value
// is a 32-bit float, widened to float64 for the caller.
func (s *Sensor) CurrentLux() (float64, error) {
	if s.svc == nil {
		return 0, ErrInvalidState
	}

	v, ok := s.svc.Property(s.hub.property)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPropertyMissing, s.hub.property)
	}
	lux, ok := asFloat32(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T", ErrTypeMismatch, s.hub.property, v)
	}
	return float64(lux), nil
}

// Name returns the cached display name. No native call is made.
func (s *Sensor) Name() string {
	return s.name
}

// String returns a human-readable representation of the sensor.
func (s *Sensor) String() string {
	return fmt.Sprintf("LightSensor('%s')", s.name)
}

// Close releases the native handle. Safe to call more than once; only the
// first call releases.
func (s *Sensor) Close() {
	if s.svc != nil {
		s.svc.Close()
		s.svc = nil
	}
}

// asFloat32 narrows any numeric property value through a 32-bit float, the
// precision the native registry stores illuminance at.
func asFloat32(v any) (float32, bool) {
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	case int8:
		return float32(n), true
	case int16:
		return float32(n), true
	case int32:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint:
		return float32(n), true
	case uint8:
		return float32(n), true
	case uint16:
		return float32(n), true
	case uint32:
		return float32(n), true
	case uint64:
		return float32(n), true
	default:
		return 0, false
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
