package disassembler

import (
	"github.com/Urethramancer/ppc/cpu"
)

// printOperand renders a slot with no width information: registers by
// name, immediates as signed 32-bit values.
func (c *renderContext) printOperand(i int) {
	v := c.operand(i)
	switch v.Kind {
	case KindReg:
		name := c.p.Registers.Name(v.Reg)
		if c.p.NoRegName {
			c.write(stripRegisterPrefix(name))
		} else {
			c.write(name)
		}
		c.addReg(c.p.Registers.Public(name))
	case KindImm:
		imm := int32(v.Imm)
		c.write(formatInt32(imm))
		c.addImm(int64(imm), true)
	}
}

// printUImm renders the low bits of an immediate as an unsigned value.
func (c *renderContext) printUImm(i int, bits uint) {
	v := c.operand(i)
	if !v.IsImm() {
		c.printOperand(i)
		return
	}
	u := truncate(v.Imm, bits)
	c.write(formatUint32(uint32(u)))
	c.addImm(int64(u), false)
}

// printSImm renders the low bits of an immediate sign extended. Inside a
// memory operand the value becomes the displacement.
func (c *renderContext) printSImm(i int, bits uint) {
	v := c.operand(i)
	if !v.IsImm() {
		c.printOperand(i)
		return
	}
	s := signExtend(v.Imm, bits)
	c.write(formatInt32(int32(s)))
	c.addImm(s, true)
}

// printMemRegImm renders disp(base). Register zero as a base reads as the
// constant 0, so it is printed as "0" and leaves the base unset.
func (c *renderContext) printMemRegImm(i int) {
	c.beginMem()
	c.printSImm(i, 16)
	c.write("(")
	if base := c.operand(i + 1); base.IsReg() && base.Reg.IsZero() {
		c.write("0")
	} else {
		c.printOperand(i + 1)
	}
	c.write(")")
	c.endMem()
}

// printPSMemRegImm renders the paired-single disp(base) form, which has a
// 12-bit displacement.
func (c *renderContext) printPSMemRegImm(i int) {
	c.beginMem()
	c.printSImm(i, 12)
	c.write("(")
	c.printOperand(i + 1)
	c.write(")")
	c.endMem()
}

// printMemRegReg renders the indexed form "base, index".
func (c *renderContext) printMemRegReg(i int) {
	if base := c.operand(i); base.IsReg() && base.Reg.IsZero() {
		c.write("0")
	} else {
		c.printOperand(i)
	}
	c.write(", ")
	c.printOperand(i + 1)
}

// printBranchOperand renders a branch target. Operands that are not
// immediates (symbols, relocations) are printed as they are.
func (c *renderContext) printBranchOperand(i int) {
	if !c.operand(i).IsImm() {
		c.printOperand(i)
		return
	}
	c.printAbsBranchOperand(i)
}

// printAbsBranchOperand turns a word displacement into a target address.
// Relative branches add the address of the instruction itself.
func (c *renderContext) printAbsBranchOperand(i int) {
	v := c.operand(i)
	if !v.IsImm() {
		c.printOperand(i)
		return
	}
	addr := c.p.target(c.inst, v.Imm)
	c.write(formatUint64(addr))
	c.addImm(int64(addr), false)
}

// target turns a sign extended word displacement into an address.
func (p *Printer) target(inst *Inst, disp int64) uint64 {
	t := int64(int32(uint32(disp * 4)))
	if !p.Opcodes.IsAbsoluteBranch(inst.Opcode) {
		t += int64(inst.Address)
	}
	return uint64(t) & p.Mode.AddressMask()
}

// BranchTarget returns the address a direct branch goes to. Branches to LR
// or CTR, and all other instructions, have none.
func (p *Printer) BranchTarget(inst *Inst) (uint64, bool) {
	i := -1
	switch op := inst.Opcode; {
	case op >= cpu.OPB && op <= cpu.OPBLA:
		i = 0
	case op.IsGenericBranch(), op == cpu.OPBCC:
		i = 2
	case op == cpu.OPGenBCat:
		i = 3
	case op >= cpu.OPBDNZ && op <= cpu.OPBDNZLAPlus, op >= cpu.OPBDZ && op <= cpu.OPBDZLAPlus:
		i = 0
	}
	ops := normalizeOperands(inst)
	if i < 0 || i >= len(ops) || !ops[i].IsImm() {
		return 0, false
	}
	return p.target(inst, ops[i].Imm), true
}

// printCRBitM renders a condition register field as its mtcrf mask bit.
func (c *renderContext) printCRBitM(i int) {
	n := 0
	if v := c.operand(i); v.IsReg() && v.Reg.IsCRField() {
		n = v.Reg.CRField()
	}
	c.write(formatUint32(0x80 >> n))
}

func (c *renderContext) predicate(i int) cpu.Predicate {
	p := cpu.Predicate(c.operand(i).Imm)
	c.setBC(p.Cond())
	return p
}

// printPredicateCC renders the condition of a predicate operand.
func (c *renderContext) printPredicateCC(i int) {
	p := c.predicate(i)
	if !p.Valid() {
		c.write("invalid-predicate")
		return
	}
	c.write(p.Cond().String())
}

// printPredicatePM renders the prediction hint of a predicate operand.
func (c *renderContext) printPredicatePM(i int) {
	p := c.predicate(i)
	if p == cpu.PredBitSet || p == cpu.PredBitUnset {
		c.write("invalid-predicate")
		return
	}
	c.write(p.Hint().String())
}

// printPredicateReg renders the condition register a predicate tests,
// which is the slot after the predicate itself.
func (c *renderContext) printPredicateReg(i int) {
	c.predicate(i)
	c.printOperand(i + 1)
}

// printATBitsAsHint renders the AT field of a bc as a prediction suffix.
func (c *renderContext) printATBitsAsHint(i int) {
	switch c.operand(i).Imm {
	case 2:
		c.write("-")
	case 3:
		c.write("+")
	}
}

// stripRegisterPrefix drops the class letters from a register name, leaving
// the number: "r3" and "vs12" become "3" and "12", "cr2" and "cr2eq" both
// become "2".
func stripRegisterPrefix(name string) string {
	if len(name) < 2 {
		return name
	}
	switch name[0] {
	case 'r', 'f', 'q', 'v':
		if name[1] == 's' {
			return name[2:]
		}
		return name[1:]
	case 'c':
		if name[1] != 'r' {
			return name
		}
		n := name[2:]
		if len(n) > 2 && isLetter(n[len(n)-1]) && isLetter(n[len(n)-2]) {
			n = n[:len(n)-2]
		}
		return n
	}
	return name
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
