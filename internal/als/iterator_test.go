package als_test

import (
	"errors"
	"testing"

	"github.com/luxtap/luxtap/internal/als"
	"github.com/luxtap/luxtap/internal/fakereg"
)

func TestListSensors_YieldsOnlyLuxEntries(t *testing.T) {
	reg := fakereg.New()
	reg.Add("USBController", nil)
	reg.Add("FrontSensor", map[string]any{"CurrentLux": float32(10.0)})
	reg.Add("Battery", map[string]any{"Charge": 80})
	reg.Add("RearSensor", map[string]any{"CurrentLux": float32(20.0)})

	it, err := newTestHub(reg).ListSensors()
	if err != nil {
		t.Fatalf("ListSensors() error = %v", err)
	}
	defer it.Close()

	var names []string
	for {
		s, ok, err := it.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if !ok {
			break
		}
		names = append(names, s.Name())
		s.Close()
	}

	want := []string{"FrontSensor", "RearSensor"}
	if len(names) != len(want) {
		t.Fatalf("got %d sensors %v, want %d", len(names), names, len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("sensor[%d] = %q, want %q (registry order)", i, names[i], want[i])
		}
	}
}

func TestListSensors_QueryFailed(t *testing.T) {
	cause := errors.New("registry offline")
	reg := fakereg.New()
	reg.FailQueries(cause)

	_, err := newTestHub(reg).ListSensors()
	if !errors.Is(err, als.ErrQueryFailed) {
		t.Errorf("ListSensors() error = %v, want ErrQueryFailed", err)
	}
	// The backend's own error stays inspectable through the wrap.
	if !errors.Is(err, cause) {
		t.Errorf("ListSensors() error = %v, should wrap the backend cause", err)
	}
}

func TestIterator_ExhaustionIsSticky(t *testing.T) {
	reg := fakereg.New()
	reg.Add("OnlySensor", map[string]any{"CurrentLux": float32(1.0)})

	it, err := newTestHub(reg).ListSensors()
	if err != nil {
		t.Fatalf("ListSensors() error = %v", err)
	}

	s, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("Next() = (%v, %v, %v), want one sensor", s, ok, err)
	}
	s.Close()

	// Past the end the iterator keeps reporting exhaustion.
	for i := 0; i < 3; i++ {
		s, ok, err := it.Next()
		if s != nil || ok || err != nil {
			t.Fatalf("Next() past end = (%v, %v, %v), want (nil, false, nil)", s, ok, err)
		}
	}
}

func TestIterator_ExhaustionReleasesCursor(t *testing.T) {
	reg := fakereg.New()

	it, err := newTestHub(reg).ListSensors()
	if err != nil {
		t.Fatalf("ListSensors() error = %v", err)
	}

	if _, ok, _ := it.Next(); ok {
		t.Fatal("Next() on empty registry returned a sensor")
	}
	if got := reg.OpenCursors(); got != 0 {
		t.Errorf("open cursors after exhaustion = %d, want 0", got)
	}

	// Close after exhaustion stays a no-op.
	it.Close()
}

func TestIterator_VanishedEntryPropagatesNotFound(t *testing.T) {
	reg := fakereg.New()
	reg.Add("GhostSensor", map[string]any{"CurrentLux": float32(5.0)})

	it, err := newTestHub(reg).ListSensors()
	if err != nil {
		t.Fatalf("ListSensors() error = %v", err)
	}
	defer it.Close()

	// The entry disappears between the property probe on the held cursor
	// and the by-name re-lookup that constructs the Sensor.
	reg.Remove("GhostSensor")

	_, _, err = it.Next()
	if !errors.Is(err, als.ErrNotFound) {
		t.Errorf("Next() error = %v, want ErrNotFound", err)
	}
}

func TestIterator_NameFailurePropagates(t *testing.T) {
	nameErr := errors.New("entry name unavailable")
	reg := fakereg.New()
	reg.AddNameless(nameErr, map[string]any{"CurrentLux": float32(5.0)})

	it, err := newTestHub(reg).ListSensors()
	if err != nil {
		t.Fatalf("ListSensors() error = %v", err)
	}
	defer it.Close()

	_, _, err = it.Next()
	if !errors.Is(err, nameErr) {
		t.Errorf("Next() error = %v, want wrapped %v", err, nameErr)
	}
}

func TestIterator_ReleasesCandidateHandles(t *testing.T) {
	reg := fakereg.New()
	skipped := reg.Add("USBController", nil)
	consumed := reg.Add("FrontSensor", map[string]any{"CurrentLux": float32(10.0)})

	it, err := newTestHub(reg).ListSensors()
	if err != nil {
		t.Fatalf("ListSensors() error = %v", err)
	}
	defer it.Close()

	s, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("Next() = (_, %v, %v), want one sensor", ok, err)
	}

	// The skipped candidate was released once. The consumed entry had its
	// iteration candidate released plus the re-lookup's scan pass; the
	// sensor's own handle is still held.
	if got := skipped.Releases(); got == 0 {
		t.Error("skipped candidate handle was never released")
	}
	heldBefore := consumed.Releases()
	s.Close()
	if got := consumed.Releases() - heldBefore; got != 1 {
		t.Errorf("sensor handle releases on Close = %d, want 1", got)
	}
}

func TestIteratorClose_Idempotent(t *testing.T) {
	reg := fakereg.New()
	reg.Add("FrontSensor", map[string]any{"CurrentLux": float32(10.0)})

	it, err := newTestHub(reg).ListSensors()
	if err != nil {
		t.Fatalf("ListSensors() error = %v", err)
	}

	it.Close()
	it.Close()
	if got := reg.OpenCursors(); got != 0 {
		t.Errorf("open cursors after Close = %d, want 0", got)
	}
}
