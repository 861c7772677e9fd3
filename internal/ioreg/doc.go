// Package ioreg adapts the macOS IOKit service registry to the als ports.
//
// On darwin (with cgo) the registry enumerates live IOKit service entries:
// a matching dictionary is built for the requested class, the kernel hands
// back an io_iterator_t cursor, and each io_service_t entry answers name
// and property reads directly against the registry. Every native object is
// wrapped in a Go value that releases it exactly once; the handle field is
// zeroed on release so a second Close is a no-op.
//
// On any other platform, or when cgo is disabled, Services always fails.
// The accessor layer reports that as a registry query failure, which keeps
// the CLI buildable and honest everywhere without pretending a sensor
// registry exists.
package ioreg
