//go:build !darwin || !cgo

package ioreg

import "testing"

func TestNullRegistry_ServicesFails(t *testing.T) {
	reg := New()

	cur, err := reg.Services("IOService")
	if err == nil {
		t.Fatal("Services() on the null registry should fail")
	}
	if cur != nil {
		t.Errorf("Services() cursor = %v, want nil", cur)
	}
}
