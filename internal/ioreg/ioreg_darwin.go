//go:build darwin && cgo

package ioreg

/*
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation
#include <stdlib.h>
#include <IOKit/IOKitLib.h>
#include <CoreFoundation/CoreFoundation.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/luxtap/luxtap/internal/als"
)

// Registry is the live IOKit service registry.
type Registry struct{}

// New returns the IOKit-backed registry.
func New() *Registry {
	return &Registry{}
}

// Services queries the kernel for every registered service of the given
// class and returns a cursor over the result set.
func (r *Registry) Services(class string) (als.Cursor, error) {
	cclass := C.CString(class)
	defer C.free(unsafe.Pointer(cclass))

	// IOServiceGetMatchingServices consumes one reference to the
	// matching dictionary, so no CFRelease here.
	matching := C.IOServiceMatching(cclass)
	if matching == nil {
		return nil, fmt.Errorf("creating matching dictionary for class %q", class)
	}

	var iter C.io_iterator_t
	// Port 0 selects the default main port on every macOS SDK.
	kr := C.IOServiceGetMatchingServices(C.mach_port_t(0), matching, &iter)
	if kr != C.KERN_SUCCESS || iter == 0 {
		return nil, fmt.Errorf("IOServiceGetMatchingServices for class %q: kern return 0x%x", class, uint32(kr))
	}
	return &cursor{it: iter}, nil
}

// cursor wraps one io_iterator_t. Exclusively owned; released once.
type cursor struct {
	it C.io_iterator_t
}

func (c *cursor) Next() (als.Service, bool) {
	if c.it == 0 {
		return nil, false
	}
	obj := C.IOIteratorNext(c.it)
	if obj == 0 {
		return nil, false
	}
	return &service{obj: obj}, true
}

func (c *cursor) Close() {
	if c.it != 0 {
		C.IOObjectRelease(C.io_object_t(c.it))
		c.it = 0
	}
}

// service wraps one io_service_t registry entry.
type service struct {
	obj C.io_object_t
}

func (s *service) Name() (string, error) {
	if s.obj == 0 {
		return "", errors.New("released service handle")
	}
	var name C.io_name_t
	kr := C.IORegistryEntryGetName(s.obj, &name[0])
	if kr != C.KERN_SUCCESS {
		return "", fmt.Errorf("IORegistryEntryGetName: kern return 0x%x", uint32(kr))
	}
	return C.GoString(&name[0]), nil
}

func (s *service) Property(key string) (any, bool) {
	if s.obj == 0 {
		return nil, false
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	cfKey := C.CFStringCreateWithCString(C.kCFAllocatorDefault, ckey, C.kCFStringEncodingUTF8)
	if cfKey == nil {
		return nil, false
	}
	defer C.CFRelease(C.CFTypeRef(cfKey))

	value := C.IORegistryEntryCreateCFProperty(s.obj, cfKey, C.kCFAllocatorDefault, 0)
	if value == nil {
		return nil, false
	}
	defer C.CFRelease(value)

	return decodeCFValue(value), true
}

func (s *service) Close() {
	if s.obj != 0 {
		C.IOObjectRelease(s.obj)
		s.obj = 0
	}
}

// opaqueValue stands in for CF types the accessor has no use for. It keeps
// the property report as "present but not numeric".
type opaqueValue struct{}

func (opaqueValue) String() string { return "opaque CF value" }

// decodeCFValue converts a CF property value to a plain Go value. Numbers
// come back as float32, the precision illuminance is registered at.
func decodeCFValue(v C.CFTypeRef) any {
	switch C.CFGetTypeID(v) {
	case C.CFNumberGetTypeID():
		var f C.float
		C.CFNumberGetValue(C.CFNumberRef(v), C.kCFNumberFloatType, unsafe.Pointer(&f))
		return float32(f)
	case C.CFStringGetTypeID():
		return goString(C.CFStringRef(v))
	case C.CFBooleanGetTypeID():
		return C.CFBooleanGetValue(C.CFBooleanRef(v)) != 0
	default:
		return opaqueValue{}
	}
}

func goString(s C.CFStringRef) string {
	if p := C.CFStringGetCStringPtr(s, C.kCFStringEncodingUTF8); p != nil {
		return C.GoString(p)
	}
	length := C.CFStringGetLength(s)
	size := C.CFStringGetMaximumSizeForEncoding(length, C.kCFStringEncodingUTF8) + 1
	buf := make([]C.char, int(size))
	if C.CFStringGetCString(s, &buf[0], size, C.kCFStringEncodingUTF8) == 0 {
		return ""
	}
	return C.GoString(&buf[0])
}
