package disassembler

import "github.com/Urethramancer/ppc/cpu"

// MaxOperands is the most structured operands one instruction can carry.
const MaxOperands = 8

// OpType is the kind of a structured operand.
type OpType uint8

const (
	OpInvalid OpType = iota
	OpReg
	OpImm
	OpMem
)

func (t OpType) String() string {
	switch t {
	case OpReg:
		return "reg"
	case OpImm:
		return "imm"
	case OpMem:
		return "mem"
	}
	return "invalid"
}

// MemOperand is a base register plus displacement. Base is
// cpu.RegInvalid when the base is architectural register zero.
type MemOperand struct {
	Base cpu.Reg
	Disp int32
}

// Operand is one structured operand.
type Operand struct {
	Type OpType
	Reg  cpu.Reg
	Imm  int64
	Mem  MemOperand
}

// Detail is the structured view of a rendered instruction.
type Detail struct {
	// BC is the condition tested by a conditional branch.
	BC cpu.BranchCond
	// BH is the static prediction hint carried by the mnemonic.
	BH cpu.BranchHint
	// UpdateCR0 is set for record forms ("add.", "rlwinm.").
	UpdateCR0 bool
	OpCount   uint8
	Operands  [MaxOperands]Operand
}

// List returns the populated operands.
func (d *Detail) List() []Operand {
	return d.Operands[:d.OpCount]
}

// Reset clears d for reuse.
func (d *Detail) Reset() {
	*d = Detail{}
}

func (d *Detail) add(op Operand) {
	if d.OpCount >= MaxOperands {
		return
	}
	d.Operands[d.OpCount] = op
	d.OpCount++
}

func (d *Detail) addReg(r cpu.Reg) {
	d.add(Operand{Type: OpReg, Reg: r})
}

func (d *Detail) addImm(v int64) {
	d.add(Operand{Type: OpImm, Imm: v})
}

// open returns the slot being composed by a memory operand, or nil when
// the operand list is full.
func (d *Detail) open() *Operand {
	if d.OpCount >= MaxOperands {
		return nil
	}
	return &d.Operands[d.OpCount]
}
