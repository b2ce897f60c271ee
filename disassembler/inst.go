package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/ppc/cpu"
)

// ValueKind tells a register slot from an immediate slot.
type ValueKind uint8

const (
	KindInvalid ValueKind = iota
	KindReg
	KindImm
)

// Value is one raw operand slot as produced by the decoder.
type Value struct {
	Kind ValueKind
	Reg  cpu.Reg
	Imm  int64
}

// Reg returns a register operand slot.
func Reg(r cpu.Reg) Value { return Value{Kind: KindReg, Reg: r} }

// Imm returns an immediate operand slot.
func Imm(v int64) Value { return Value{Kind: KindImm, Imm: v} }

// IsReg reports whether v holds a register.
func (v Value) IsReg() bool { return v.Kind == KindReg }

// IsImm reports whether v holds an immediate.
func (v Value) IsImm() bool { return v.Kind == KindImm }

func (v Value) String() string {
	switch v.Kind {
	case KindReg:
		return v.Reg.String()
	case KindImm:
		return fmt.Sprintf("#%d", v.Imm)
	}
	return "?"
}

// Inst is a decoded instruction: the opcode, its operand slots in the order
// the operand template expects them, and the address it was decoded at.
// The printer never modifies an Inst.
type Inst struct {
	Opcode   cpu.Opcode
	Operands []Value
	Address  uint64
}

// NewInst builds an instruction record.
func NewInst(op cpu.Opcode, addr uint64, operands ...Value) *Inst {
	return &Inst{Opcode: op, Operands: operands, Address: addr}
}

func (i *Inst) String() string {
	parts := make([]string, len(i.Operands))
	for n, v := range i.Operands {
		parts[n] = v.String()
	}
	return fmt.Sprintf("%s %s @%#x", i.Opcode, strings.Join(parts, ","), i.Address)
}
