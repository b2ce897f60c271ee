package disassembler

import (
	"strings"

	"github.com/Urethramancer/ppc/cpu"
)

// memState tracks whether a memory operand is being composed. Every
// memComposing cycle appends exactly one structured operand, however many
// formatter calls fill it in.
type memState uint8

const (
	memIdle memState = iota
	memComposing
)

// renderContext is the state of a single Print call.
type renderContext struct {
	p      *Printer
	inst   *Inst
	ops    []Value
	out    strings.Builder
	detail *Detail
	mem    memState
}

func (p *Printer) newContext(inst *Inst, d *Detail) *renderContext {
	c := &renderContext{
		p:    p,
		inst: inst,
		ops:  normalizeOperands(inst),
	}
	if p.Detail && d != nil {
		d.Reset()
		c.detail = d
	}
	return c
}

// normalizeOperands copies the operand slots, sign extending raw branch
// displacement fields. Applying it to its own output yields the same slots.
func normalizeOperands(inst *Inst) []Value {
	ops := make([]Value, len(inst.Operands))
	copy(ops, inst.Operands)

	extend := func(i int, bits uint) {
		if i < len(ops) && ops[i].IsImm() {
			ops[i].Imm = signExtend(ops[i].Imm, bits)
		}
	}

	switch op := inst.Opcode; {
	case op == cpu.OPB, op == cpu.OPBA, op == cpu.OPBL, op == cpu.OPBLA:
		extend(0, 24)
	case op.IsGenericBranch(), op == cpu.OPBCC:
		extend(2, 14)
	case op == cpu.OPGenBCat:
		extend(3, 14)
	case op.IsCTRBranch():
		extend(0, 14)
	}
	return ops
}

func (c *renderContext) operand(i int) Value {
	if i < 0 || i >= len(c.ops) {
		return Value{}
	}
	return c.ops[i]
}

func (c *renderContext) write(s string) {
	c.out.WriteString(s)
}

func (c *renderContext) beginMem() {
	c.mem = memComposing
	if c.detail == nil {
		return
	}
	if slot := c.detail.open(); slot != nil {
		*slot = Operand{Type: OpMem, Mem: MemOperand{Base: cpu.RegInvalid}}
	}
}

func (c *renderContext) endMem() {
	c.mem = memIdle
	if c.detail == nil || c.detail.OpCount >= MaxOperands {
		return
	}
	c.detail.OpCount++
}

// addReg records a register operand, or the base of the memory operand
// being composed.
func (c *renderContext) addReg(r cpu.Reg) {
	if c.detail == nil {
		return
	}
	if c.mem == memComposing {
		if slot := c.detail.open(); slot != nil {
			slot.Mem.Base = r
		}
		return
	}
	c.detail.addReg(r)
}

// addImm records an immediate operand, or the displacement of the memory
// operand being composed when memAware is set.
func (c *renderContext) addImm(v int64, memAware bool) {
	if c.detail == nil {
		return
	}
	if memAware && c.mem == memComposing {
		if slot := c.detail.open(); slot != nil {
			slot.Mem.Disp = int32(v)
		}
		return
	}
	c.detail.addImm(v)
}

func (c *renderContext) setBC(bc cpu.BranchCond) {
	if c.detail != nil {
		c.detail.BC = bc
	}
}
