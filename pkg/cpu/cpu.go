// Package cpu implements the RV32I execution engine: the fetch/decode/
// execute step, the outer run loop, and the register file the engine
// exclusively owns.
package cpu

import (
	"errors"
	"fmt"

	"github.com/hupraktikum/rv32i/pkg/decode"
	"github.com/hupraktikum/rv32i/pkg/memory"
)

// The following errors may be returned by Step and Run.
var (
	// ErrIllegalInstruction indicates that the fetched word did not match
	// any recognized (opcode, funct3, funct7) triple. Only returned when
	// Options.TrapOnIllegal is set.
	ErrIllegalInstruction = errors.New("cpu: illegal instruction")

	// ErrStepBudgetExhausted indicates Run stopped because it reached its
	// step budget without the program halting on its own. RV32I as
	// modeled here has no halt instruction, so this is the ordinary way
	// Run terminates (spec §5, §6).
	ErrStepBudgetExhausted = errors.New("cpu: step budget exhausted")
)

// DefaultStepBudget is the hard-coded step budget from spec §6.
const DefaultStepBudget = 1_000_000

// Options configures two behaviors where this simulator's reference
// implementation diverges from the RISC-V specification. Both default to
// that reference behavior; set them to switch to spec-conformant
// behavior instead.
type Options struct {
	// JALRClearLowBit, when true, clears bit 0 of the JALR target as the
	// RISC-V specification mandates. The reference implementation does
	// not clear it; the zero value reproduces that.
	JALRClearLowBit bool

	// TrapOnIllegal, when true, makes Step return ErrIllegalInstruction
	// on an unrecognized encoding instead of silently skipping it without
	// advancing PC. The reference implementation does the latter, which
	// can spin until the step budget expires; trapping is the preferred
	// behavior for a reimplementation (spec §9 "Unknown-opcode handling").
	TrapOnIllegal bool
}

// CPU is one simulator instance: a register file, a program counter, and
// the memory unit it was constructed with. It owns all three exclusively
// for its lifetime and is not safe for concurrent use (spec §5).
type CPU struct {
	Regs RegFile
	PC   uint32
	Mem  *memory.Memory
	opts Options
}

// New creates a CPU with PC initialized to 0 and all registers zero,
// bound to mem.
func New(mem *memory.Memory, opts Options) *CPU {
	return &CPU{Mem: mem, opts: opts}
}

// Step performs one fetch/decode/execute cycle. It returns
// ErrIllegalInstruction if the fetched word doesn't decode to a known
// instruction and Options.TrapOnIllegal is set; otherwise unrecognized
// encodings are skipped without advancing PC, matching the reference
// implementation (spec §7 "Decode misses").
func (c *CPU) Step() error {
	instr := c.Mem.FetchWord(c.PC)
	advanced, err := c.execute(instr)
	if err != nil {
		return err
	}
	if !advanced && c.opts.TrapOnIllegal {
		return fmt.Errorf("%w: opcode=0x%02x funct3=0x%x funct7=0x%x at pc=0x%08x",
			ErrIllegalInstruction, decode.Opcode(instr), decode.Funct3(instr), decode.Funct7(instr), c.PC)
	}
	c.Regs.Normalize()
	return nil
}

// Run executes up to budget steps, stopping early only if Step returns an
// error. It returns ErrStepBudgetExhausted if the budget is reached
// without error — this is the ordinary termination path for RV32I as
// modeled here, since there is no halt instruction (spec §5, §6).
func (c *CPU) Run(budget int) error {
	for i := 0; i < budget; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return ErrStepBudgetExhausted
}

// execute dispatches instr and applies its semantic. It returns
// advanced=false, without having mutated PC, for any encoding it does
// not recognize — the caller decides whether that is fatal.
func (c *CPU) execute(instr uint32) (advanced bool, err error) {
	op := decode.Opcode(instr)
	rd := decode.RD(instr)
	rs1 := decode.RS1(instr)
	rs2 := decode.RS2(instr)
	f3 := decode.Funct3(instr)
	f7 := decode.Funct7(instr)

	switch op {
	case decode.OP:
		return c.execOP(rd, rs1, rs2, f3, f7), nil
	case decode.OPIMM:
		return c.execOPIMM(instr, rd, rs1, f3, f7), nil
	case decode.LOAD:
		return c.execLoad(instr, rd, rs1, f3), nil
	case decode.STORE:
		return c.execStore(instr, rs1, rs2, f3), nil
	case decode.BRANCH:
		return c.execBranch(instr, rs1, rs2, f3), nil
	case decode.JAL:
		imm := decode.ImmJ(instr)
		c.Regs.Write(rd, c.PC+4)
		c.PC = c.PC + imm
		return true, nil
	case decode.JALR:
		imm := decode.ImmI(instr)
		target := c.Regs.Read(rs1) + imm
		if c.opts.JALRClearLowBit {
			target &^= 1
		}
		c.Regs.Write(rd, c.PC+4)
		c.PC = target
		return true, nil
	case decode.LUI:
		c.Regs.Write(rd, decode.ImmU(instr))
		c.PC += 4
		return true, nil
	case decode.AUIPC:
		c.Regs.Write(rd, c.PC+decode.ImmU(instr))
		c.PC += 4
		return true, nil
	default:
		return false, nil
	}
}

func asSigned(v uint32) int32 {
	return int32(v)
}

func (c *CPU) execOP(rd, rs1, rs2, f3, f7 uint32) bool {
	a, b := c.Regs.Read(rs1), c.Regs.Read(rs2)
	var result uint32
	switch {
	case f3 == 0 && f7 == 0x00: // ADD
		result = a + b
	case f3 == 0 && f7 == 0x20: // SUB
		result = a - b
	case f3 == 1: // SLL
		result = a << (b & 0x1F)
	case f3 == 2: // SLT
		result = boolToWord(asSigned(a) < asSigned(b))
	case f3 == 3: // SLTU
		result = boolToWord(a < b)
	case f3 == 4: // XOR
		result = a ^ b
	case f3 == 5 && f7 == 0x00: // SRL
		result = a >> (b & 0x1F)
	case f3 == 5 && f7 == 0x20: // SRA
		result = uint32(asSigned(a) >> (b & 0x1F))
	case f3 == 6: // OR
		result = a | b
	case f3 == 7: // AND
		result = a & b
	default:
		return false
	}
	c.Regs.Write(rd, result)
	c.PC += 4
	return true
}

func (c *CPU) execOPIMM(instr uint32, rd, rs1, f3, f7 uint32) bool {
	a := c.Regs.Read(rs1)
	imm := decode.ImmI(instr)
	shamt := decode.Shamt(instr)
	var result uint32
	switch f3 {
	case 0: // ADDI
		result = a + imm
	case 2: // SLTI
		result = boolToWord(asSigned(a) < asSigned(imm))
	case 3: // SLTIU
		result = boolToWord(a < imm)
	case 4: // XORI
		result = a ^ imm
	case 6: // ORI
		result = a | imm
	case 7: // ANDI
		result = a & imm
	case 1: // SLLI
		if f7 != 0x00 {
			return false
		}
		result = a << shamt
	case 5: // SRLI / SRAI
		switch f7 {
		case 0x00:
			result = a >> shamt
		case 0x20:
			result = uint32(asSigned(a) >> shamt)
		default:
			return false
		}
	default:
		return false
	}
	c.Regs.Write(rd, result)
	c.PC += 4
	return true
}

func (c *CPU) execLoad(instr uint32, rd, rs1, f3 uint32) bool {
	ea := c.Regs.Read(rs1) + decode.ImmI(instr)
	var result uint32
	switch f3 {
	case 0: // LB
		result = c.Mem.LoadByteSigned(ea)
	case 1: // LH
		result = c.Mem.LoadHalfSigned(ea)
	case 2: // LW
		result = c.Mem.LoadWord(ea)
	case 4: // LBU
		result = c.Mem.LoadByteUnsigned(ea)
	case 5: // LHU
		result = c.Mem.LoadHalfUnsigned(ea)
	default:
		return false
	}
	c.Regs.Write(rd, result)
	c.PC += 4
	return true
}

func (c *CPU) execStore(instr uint32, rs1, rs2, f3 uint32) bool {
	base := c.Regs.Read(rs1)
	ea := base + decode.ImmS(instr)
	v := c.Regs.Read(rs2)
	switch f3 {
	case 0: // SB
		c.Mem.StoreByte(base, ea, v&0xFF)
	case 1: // SH
		c.Mem.StoreHalf(ea, v&0xFFFF)
	case 2: // SW
		c.Mem.StoreWord(ea, v)
	default:
		return false
	}
	c.PC += 4
	return true
}

func (c *CPU) execBranch(instr uint32, rs1, rs2, f3 uint32) bool {
	a, b := c.Regs.Read(rs1), c.Regs.Read(rs2)
	var taken bool
	switch f3 {
	case 0: // BEQ
		taken = a == b
	case 1: // BNE
		taken = a != b
	case 4: // BLT
		taken = asSigned(a) < asSigned(b)
	case 5: // BGE
		taken = asSigned(a) >= asSigned(b)
	case 6: // BLTU
		taken = a < b
	case 7: // BGEU
		taken = a >= b
	default:
		return false
	}
	if taken {
		c.PC += decode.ImmB(instr)
	} else {
		c.PC += 4
	}
	return true
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
