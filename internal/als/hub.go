package als

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Defaults matching the registry entries ambient light sensors are
// published under.
const (
	// DefaultClass is the generic service class queried for sensors.
	DefaultClass = "IOService"

	// DefaultLuxProperty is the property key holding the current
	// illuminance in lux.
	DefaultLuxProperty = "CurrentLux"
)

// Hub binds a hardware service registry to a service class and an
// illuminance property key. All sensor access goes through a Hub.
type Hub struct {
	reg      Registry
	class    string
	property string
	log      *zap.Logger
}

// Option configures a Hub.
type Option func(*Hub)

// WithClass overrides the service class queried during enumeration.
func WithClass(class string) Option {
	return func(h *Hub) { h.class = class }
}

// WithLuxProperty overrides the property key read for lux values.
func WithLuxProperty(key string) Option {
	return func(h *Hub) { h.property = key }
}

// WithLogger attaches a zap logger for debug traces of registry traffic.
func WithLogger(log *zap.Logger) Option {
	return func(h *Hub) { h.log = log }
}

// NewHub creates a Hub over the given registry.
func NewHub(reg Registry, opts ...Option) *Hub {
	h := &Hub{
		reg:      reg,
		class:    DefaultClass,
		property: DefaultLuxProperty,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// services queries the registry for all entries of the configured class.
func (h *Hub) services() (Cursor, error) {
	cur, err := h.reg.Services(h.class)
	if err != nil {
		h.log.Debug("registry query failed",
			zap.String("class", h.class),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return cur, nil
}

// Class returns the registry service class this hub queries.
func (h *Hub) Class() string {
	return h.class
}

// OpenSensor constructs a Sensor by display name. The full registry is
// scanned and the first entry whose name equals the given string
// byte-for-byte wins; enumeration order is whatever the OS registry
// produces. Fails with ErrNotFound when no entry matches and
// ErrQueryFailed when the registry query itself fails.
func (h *Hub) OpenSensor(name string) (*Sensor, error) {
	s := &Sensor{hub: h}
	if err := s.Reopen(name); err != nil {
		return nil, err
	}
	return s, nil
}

// ListSensors queries the registry and returns an iterator over every
// entry that exposes the illuminance property. No sensor is read eagerly;
// all work happens in Iterator.Next.
func (h *Hub) ListSensors() (*Iterator, error) {
	cur, err := h.services()
	if err != nil {
		return nil, err
	}
	return &Iterator{hub: h, cur: cur}, nil
}

// FindSensor returns the first ambient light sensor the registry yields.
// Exactly one item is pulled; a failed or empty first pull reports
// ErrNoSensorFound.
func (h *Hub) FindSensor() (*Sensor, error) {
	it, err := h.ListSensors()
	if err != nil {
		return nil, err
	}
	defer it.Close()

	s, ok, err := it.Next()
	if err != nil {
		h.log.Debug("first sensor pull failed", zap.Error(err))
		return nil, ErrNoSensorFound
	}
	if !ok {
		return nil, ErrNoSensorFound
	}
	return s, nil
}

// WriteReport writes one "<name>: <lux> lux" line per readable sensor to w.
// This is a best-effort diagnostic: sensors whose lux read fails are
// skipped silently rather than aborting the report.
func (h *Hub) WriteReport(w io.Writer) error {
	it, err := h.ListSensors()
	if err != nil {
		return err
	}
	defer it.Close()

	for {
		s, ok, err := it.Next()
		if err != nil {
			h.log.Debug("report enumeration stopped", zap.Error(err))
			return nil
		}
		if !ok {
			return nil
		}

		lux, err := s.CurrentLux()
		if err != nil {
			h.log.Debug("skipping unreadable sensor",
				zap.String("name", s.Name()),
				zap.Error(err),
			)
			s.Close()
			continue
		}
		fmt.Fprintf(w, "%s: %.1f lux\n", s.Name(), lux)
		s.Close()
	}
}

// ReportAll prints the diagnostic report to standard output.
func (h *Hub) ReportAll() error {
	return h.WriteReport(os.Stdout)
}
