// Package als exposes the host's ambient light sensor hardware services.
//
// The package enumerates hardware service registry entries of a generic
// service class, filters for entries that expose a current-illuminance
// property, and reads that property as a lux value. It is a thin accessor
// over the native registry: there is no caching, no polling and no
// background work. Every call is a direct, synchronous query against live
// hardware state.
//
// # Ports
//
// The native registry is consumed through three small interfaces: Registry
// ("all services of a class"), Cursor ("advance the enumeration") and
// Service ("display name, property read, release"). The real backend lives
// in internal/ioreg; tests substitute internal/fakereg.
//
// # Usage Example
//
//	hub := als.NewHub(ioreg.New())
//
//	sensor, err := hub.FindSensor()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sensor.Close()
//
//	lux, err := sensor.CurrentLux()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %.1f lux\n", sensor.Name(), lux)
//
// # Handle Ownership
//
// Each Sensor exclusively owns one native service handle and each Iterator
// exclusively owns one enumeration cursor. Close releases the handle and is
// safe to call more than once; the handle is nilled out on the first call so
// a second release is a no-op. Handles must stay on the goroutine that
// created them — native registry handles are not safe for concurrent use.
package als
