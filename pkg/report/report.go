// Package report renders the simulator's final output, byte for byte
// matching the banner format spec.md §6 specifies. The four-call split
// (Banner / InstrLoaded / DataLoaded / Final) mirrors the original
// implementation's interleaving of these lines with the loading steps
// rather than batching them into one call (SPEC_FULL.md §13).
package report

import (
	"fmt"
	"io"

	"github.com/hupraktikum/rv32i/pkg/cpu"
)

// Banner writes the fixed introductory banner, printed before any image
// is loaded.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "C Praktikum")
	fmt.Fprintln(w, "HU Risc-V  Emulator 2022")
}

// InstrLoaded writes the instruction-memory size line, printed as soon as
// the instruction image has been opened and stat'd.
func InstrLoaded(w io.Writer, instrBytes int) {
	fmt.Fprintf(w, "size of instruction memory: %d Byte\n\n", instrBytes)
}

// DataLoaded writes the data-memory size line, printed once the data
// image has been read.
func DataLoaded(w io.Writer, dataBytes int) {
	fmt.Fprintf(w, "read data for data memory: %d Byte\n\n", dataBytes)
}

// Final writes the termination banner and the register-file dump, in that
// order, after execution stops. Register values are printed in uppercase
// hexadecimal without a "0x" prefix and without leading zeros, one per
// line, registers 0 through 31.
func Final(w io.Writer, regs [cpu.NumRegisters]uint32) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "-----------------------RISC-V program terminate------------------------")
	fmt.Fprintln(w, "Regfile values:")
	for i, v := range regs {
		fmt.Fprintf(w, "%d: %X\n", i, v)
	}
}
