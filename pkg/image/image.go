// Package image is the simulator's external collaborator for loading
// raw binary images from disk (spec §6). It deliberately knows nothing
// about instruction decoding or execution; it only opens files, stats
// them, and hands back byte slices sized the way the memory unit
// expects them.
package image

import (
	"fmt"
	"io"
	"os"

	"github.com/hupraktikum/rv32i/pkg/memory"
)

// ErrDataImageTooLarge indicates the data image file is larger than the
// 4 MiB data-memory buffer it must fit into (spec §6).
var ErrDataImageTooLarge = fmt.Errorf("image: data image exceeds %d bytes", memory.DataSize)

// LoadInstructionImage reads the raw little-endian byte stream at path
// verbatim. Its length becomes the instruction memory length; there is
// no header and no size ceiling (spec §6 "Instruction image format").
func LoadInstructionImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("image: cannot open instruction image: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("image: cannot stat instruction image: %w", err)
	}
	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("image: cannot read instruction image: %w", err)
	}
	return buf, nil
}

// LoadDataImage reads the raw byte stream at path. Its size must not
// exceed memory.DataSize; the caller is expected to copy the result into
// the head of a zero-initialized 4 MiB buffer (spec §6 "Data image
// format").
func LoadDataImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("image: cannot open data image: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("image: cannot stat data image: %w", err)
	}
	if info.Size() > memory.DataSize {
		return nil, ErrDataImageTooLarge
	}
	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("image: cannot read data image: %w", err)
	}
	return buf, nil
}
