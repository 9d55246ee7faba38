package cpu

// NumRegisters is the number of RV32I general-purpose registers.
const NumRegisters = 32

// RegFile is the architectural register file: thirty-two 32-bit
// general-purpose registers with the hard-wired-zero invariant on
// register 0.
type RegFile struct {
	r [NumRegisters]uint32
}

// Read returns register i. Callers must pass i in [0, NumRegisters).
func (rf *RegFile) Read(i uint32) uint32 {
	return rf.r[i]
}

// Write stores v in register i. Register 0 writes are not rejected here;
// the engine restores the zero invariant once per step via Normalize,
// matching the source's post-step normalization strategy (spec §9 Open
// Question).
func (rf *RegFile) Write(i, v uint32) {
	rf.r[i] = v
}

// Normalize re-zeroes register 0. The engine calls this once after every
// executed step.
func (rf *RegFile) Normalize() {
	rf.r[0] = 0
}

// Snapshot returns a copy of the 32 register values, in index order.
func (rf *RegFile) Snapshot() [NumRegisters]uint32 {
	return rf.r
}
