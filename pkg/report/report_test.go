package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupraktikum/rv32i/pkg/cpu"
	"github.com/hupraktikum/rv32i/pkg/report"
)

func TestBannerFormat(t *testing.T) {
	var buf bytes.Buffer
	report.Banner(&buf)
	assert.Equal(t, "C Praktikum\nHU Risc-V  Emulator 2022\n", buf.String())
}

func TestInstrLoadedFormat(t *testing.T) {
	var buf bytes.Buffer
	report.InstrLoaded(&buf, 64)
	assert.Equal(t, "size of instruction memory: 64 Byte\n\n", buf.String())
}

func TestDataLoadedFormat(t *testing.T) {
	var buf bytes.Buffer
	report.DataLoaded(&buf, 128)
	assert.Equal(t, "read data for data memory: 128 Byte\n\n", buf.String())
}

func TestFinalFormat(t *testing.T) {
	var regs [cpu.NumRegisters]uint32
	regs[1] = 0xFF
	regs[31] = 0x10
	var buf bytes.Buffer
	report.Final(&buf, regs)
	got := buf.String()
	assert.Contains(t, got, "-----------------------RISC-V program terminate------------------------\n")
	assert.Contains(t, got, "Regfile values:\n")
	assert.Contains(t, got, "0: 0\n")
	assert.Contains(t, got, "1: FF\n")
	assert.Contains(t, got, "31: 10\n")
}

func TestFullReportMatchesSpecLayout(t *testing.T) {
	var buf bytes.Buffer
	var regs [cpu.NumRegisters]uint32
	report.Banner(&buf)
	report.InstrLoaded(&buf, 12)
	report.DataLoaded(&buf, 0)
	report.Final(&buf, regs)

	want := "C Praktikum\n" +
		"HU Risc-V  Emulator 2022\n" +
		"size of instruction memory: 12 Byte\n" +
		"\n" +
		"read data for data memory: 0 Byte\n" +
		"\n" +
		"\n" +
		"-----------------------RISC-V program terminate------------------------\n" +
		"Regfile values:\n"
	assert.True(t, len(buf.String()) > len(want))
	assert.Contains(t, buf.String(), want)
}
