package als

import "errors"

var (
	// ErrQueryFailed indicates the registry query itself failed
	ErrQueryFailed = errors.New("hardware registry query failed")

	// ErrNotFound indicates no service entry matched the requested name
	ErrNotFound = errors.New("sensor service not found")

	// ErrInvalidState indicates an operation on a sensor that holds no handle
	ErrInvalidState = errors.New("no valid sensor service")

	// ErrPropertyMissing indicates the illuminance property is absent
	ErrPropertyMissing = errors.New("illuminance property missing")

	// ErrTypeMismatch indicates the illuminance property is not numeric
	ErrTypeMismatch = errors.New("illuminance property is not a number")

	// ErrNoSensorFound indicates enumeration produced no sensor at all
	ErrNoSensorFound = errors.New("no ambient light sensor found")
)
