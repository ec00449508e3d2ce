package bake

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/DragonQuiz/mcedit2/internal/blocks"
)

// exportMagic identifies a packed cooked-model file.
var exportMagic = [4]byte{'B', 'K', 'M', '1'}

// ErrNotCooked reports an export attempt before baking.
var ErrNotCooked = errors.New("store is not cooked")

// Export writes the dense (id, metadata) table as a packed
// little-endian binary stream:
//
//	magic "BKM1"
//	entryCount uint32
//	per entry: id uint16, meta uint8, quadCount uint32, quads
//	per quad:  cullface int8, then 4 vertices of
//	           x,y,z,u,v float32 + color uint32
func (s *Store) Export(w io.Writer) error {
	if !s.cooked {
		return ErrNotCooked
	}

	var count uint32
	for id := range s.byID {
		for meta := 0; meta < blocks.MaxMetadata; meta++ {
			if s.byID[id][meta] != nil {
				count++
			}
		}
	}

	if _, err := w.Write(exportMagic[:]); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("writing entry count: %w", err)
	}

	for id := range s.byID {
		for meta := 0; meta < blocks.MaxMetadata; meta++ {
			quads := s.byID[id][meta]
			if quads == nil {
				continue
			}
			if err := exportEntry(w, uint16(id), uint8(meta), quads); err != nil {
				return fmt.Errorf("entry (%d, %d): %w", id, meta, err)
			}
		}
	}
	return nil
}

func exportEntry(w io.Writer, id uint16, meta uint8, quads []CookedQuad) error {
	if err := binary.Write(w, binary.LittleEndian, id); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, meta); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(quads))); err != nil {
		return err
	}

	for i := range quads {
		if err := binary.Write(w, binary.LittleEndian, int8(quads[i].Cullface)); err != nil {
			return err
		}
		for _, v := range quads[i].Vertices {
			if err := binary.Write(w, binary.LittleEndian, [5]float32{v.X, v.Y, v.Z, v.U, v.V}); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, v.Color); err != nil {
				return err
			}
		}
	}
	return nil
}
