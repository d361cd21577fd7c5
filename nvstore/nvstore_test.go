package nvstore

import (
	"errors"
	"testing"

	"tinygo.org/x/tinyfs"
)

type countingDevice struct {
	tinyfs.BlockDevice
	erases int
}

func (d *countingDevice) EraseBlocks(start, n int64) error {
	d.erases++
	return d.BlockDevice.EraseBlocks(start, n)
}

func newStore(t *testing.T, slots int) (*Store, *countingDevice) {
	t.Helper()
	dev := &countingDevice{BlockDevice: tinyfs.NewMemoryDevice(256, 4096, 2)}
	s, err := Open(dev, slots)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Factory(); err != nil {
		t.Fatal(err)
	}
	dev.erases = 0
	return s, dev
}

func TestFactoryState(t *testing.T) {
	s, _ := newStore(t, 7)
	for i := 0; i < s.Len(); i++ {
		if s.Slot(i) != Erased {
			t.Fatalf("slot %d = %08X", i, s.Slot(i))
		}
	}
	if s.Translating() {
		t.Fatal("translate mode on after factory reset")
	}
}

func TestSlotsPersist(t *testing.T) {
	s, dev := newStore(t, 7)
	if err := s.SetSlot(2, 0x12345678); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSlot(0, Empty); err != nil {
		t.Fatal(err)
	}

	re, err := Open(dev, 7)
	if err != nil {
		t.Fatal(err)
	}
	if re.Slot(2) != 0x12345678 || re.Slot(0) != Empty || re.Slot(1) != Erased {
		t.Fatalf("reopened slots = %08X %08X %08X", re.Slot(0), re.Slot(1), re.Slot(2))
	}

	// slot 2 lives at byte 8, little endian
	var raw [4]byte
	if _, err := dev.ReadAt(raw[:], 8); err != nil {
		t.Fatal(err)
	}
	if raw != [4]byte{0x78, 0x56, 0x34, 0x12} {
		t.Fatalf("raw slot 2 = % X", raw)
	}
}

func TestUpdateOnlyIfChanged(t *testing.T) {
	s, dev := newStore(t, 7)
	s.SetSlot(1, 0xAA)
	s.SetSlot(1, 0xAA)
	s.SetSlot(1, Erased)
	if dev.erases != 2 {
		t.Fatalf("erases = %d, want 2", dev.erases)
	}
	s.SetTranslating(false)
	if dev.erases != 2 {
		t.Fatalf("unchanged flag rewrote the block")
	}
}

func TestTranslateFlag(t *testing.T) {
	s, dev := newStore(t, 7)
	on, err := s.ToggleTranslate()
	if err != nil || !on {
		t.Fatalf("toggle = %v, %v", on, err)
	}
	var flag [1]byte
	dev.ReadAt(flag[:], 4096-4)
	if flag[0] != TranslateOn {
		t.Fatalf("flag byte = %02X", flag[0])
	}
	if on, _ := s.ToggleTranslate(); on {
		t.Fatal("second toggle left translate on")
	}
	re, _ := Open(dev, 7)
	if re.Translating() {
		t.Fatal("reopened store is translating")
	}
}

func TestRanges(t *testing.T) {
	s, _ := newStore(t, 3)
	if err := s.SetSlot(3, 1); !errors.Is(err, ErrSlotRange) {
		t.Fatalf("SetSlot(3) err = %v", err)
	}
	if s.Slot(-1) != Erased || s.Slot(9) != Erased {
		t.Fatal("out of range slots should read as erased")
	}
	if _, err := Open(tinyfs.NewMemoryDevice(16, 16, 1), 4); !errors.Is(err, ErrTooSmall) {
		t.Fatalf("Open err = %v", err)
	}
}
