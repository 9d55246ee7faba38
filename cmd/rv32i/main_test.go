package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, words ...uint32) string {
	t.Helper()
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	path := filepath.Join(t.TempDir(), "instr.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o600))
	return path
}

func TestRunADDIChainEndToEnd(t *testing.T) {
	instrPath := writeWords(t, 0x00500513, 0x00A00593, 0x00B50633)
	dataPath := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(dataPath, nil, 0o600))

	var out bytes.Buffer
	require.NoError(t, run(&out, instrPath, dataPath))

	got := out.String()
	assert.Contains(t, got, "C Praktikum\nHU Risc-V  Emulator 2022\n")
	assert.Contains(t, got, "size of instruction memory: 12 Byte")
	assert.Contains(t, got, "read data for data memory: 0 Byte")
	assert.Contains(t, got, "10: 5\n")
	assert.Contains(t, got, "11: A\n")
	assert.Contains(t, got, "12: F\n")
}

func TestRunMMIOByteReachesOutput(t *testing.T) {
	// lui x5, 0x5 ; addi x6, x0, 0x41 ; sb x6, 0(x5)
	instrPath := writeWords(t, 0x000052B7, 0x04100313, 0x00628023)
	dataPath := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(dataPath, nil, 0o600))

	var out bytes.Buffer
	require.NoError(t, run(&out, instrPath, dataPath))
	assert.Contains(t, out.String(), "A")
}

func TestRunMissingInstructionImage(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(dataPath, nil, 0o600))
	var out bytes.Buffer
	err := run(&out, filepath.Join(t.TempDir(), "missing.bin"), dataPath)
	assert.Error(t, err)
}
