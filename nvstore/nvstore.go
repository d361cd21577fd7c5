// Package nvstore keeps the user code table and the translate flag in one
// erase block of a tinyfs.BlockDevice.
//
// Layout, little endian:
//
//	0      slot 0
//	4      slot 1
//	...
//	bs-4   translate flag (first byte), 0xFF = off
//
// bs is the device's erase block size. The whole block is mirrored in RAM;
// writes rewrite the block, but only when a value actually changes.
package nvstore

import (
	"encoding/binary"
	"errors"
	"fmt"

	"tinygo.org/x/tinyfs"

	"github.com/sparques/irkbd/keymap"
)

const (
	Empty        = keymap.Empty
	Erased       = keymap.Erased
	TranslateOff = 0xFF
	TranslateOn  = 0x00
)

var (
	ErrTooSmall  = errors.New("block too small for slot table")
	ErrSlotRange = errors.New("slot out of range")
)

type Store struct {
	dev   tinyfs.BlockDevice
	img   []byte
	slots int
}

// Open loads the table from the first erase block of dev.
func Open(dev tinyfs.BlockDevice, slots int) (*Store, error) {
	bs := dev.EraseBlockSize()
	if bs < int64(slots*4+4) || dev.Size() < bs {
		return nil, fmt.Errorf("nvstore: %d slots in %d byte block: %w", slots, bs, ErrTooSmall)
	}
	s := &Store{
		dev:   dev,
		img:   make([]byte, bs),
		slots: slots,
	}
	if _, err := dev.ReadAt(s.img, 0); err != nil {
		return nil, fmt.Errorf("nvstore: read: %w", err)
	}
	return s, nil
}

func (s *Store) Len() int { return s.slots }

// Slot returns the code in slot i, or Erased when i is out of range.
func (s *Store) Slot(i int) uint32 {
	if i < 0 || i >= s.slots {
		return Erased
	}
	return binary.LittleEndian.Uint32(s.img[i*4:])
}

func (s *Store) SetSlot(i int, code uint32) error {
	if i < 0 || i >= s.slots {
		return ErrSlotRange
	}
	if s.Slot(i) == code {
		return nil
	}
	binary.LittleEndian.PutUint32(s.img[i*4:], code)
	return s.flush()
}

func (s *Store) flagOffset() int { return len(s.img) - 4 }

func (s *Store) Translating() bool {
	return s.img[s.flagOffset()] != TranslateOff
}

func (s *Store) SetTranslating(on bool) error {
	var v byte = TranslateOff
	if on {
		v = TranslateOn
	}
	if s.img[s.flagOffset()] == v {
		return nil
	}
	s.img[s.flagOffset()] = v
	return s.flush()
}

// ToggleTranslate flips translate mode and returns the new setting.
func (s *Store) ToggleTranslate() (bool, error) {
	on := !s.Translating()
	return on, s.SetTranslating(on)
}

// Factory erases every slot and turns translate mode off.
func (s *Store) Factory() error {
	for i := range s.img {
		s.img[i] = 0xFF
	}
	return s.flush()
}

func (s *Store) flush() error {
	if err := s.dev.EraseBlocks(0, 1); err != nil {
		return fmt.Errorf("nvstore: erase: %w", err)
	}
	if _, err := s.dev.WriteAt(s.img, 0); err != nil {
		return fmt.Errorf("nvstore: write: %w", err)
	}
	return nil
}
