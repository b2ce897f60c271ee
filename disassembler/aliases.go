package disassembler

import "github.com/Urethramancer/ppc/cpu"

// alias is a table-driven extended mnemonic: when the guard holds, the
// instruction prints as asm instead of its own template.
type alias struct {
	when func(ops []Value) bool
	asm  string
}

func isReg(r cpu.Reg, i int) func([]Value) bool {
	return func(ops []Value) bool {
		return i < len(ops) && ops[i].IsReg() && ops[i].Reg == r
	}
}

// isZeroReg matches register zero, in either width.
func isZeroReg(i int) func([]Value) bool {
	return func(ops []Value) bool {
		return i < len(ops) && ops[i].IsReg() && ops[i].Reg.IsZero()
	}
}

func isImm(v int64, i int) func([]Value) bool {
	return func(ops []Value) bool {
		return i < len(ops) && ops[i].IsImm() && ops[i].Imm == v
	}
}

func sameReg(i, j int) func([]Value) bool {
	return func(ops []Value) bool {
		return i < len(ops) && j < len(ops) && ops[i].IsReg() && ops[j].IsReg() && ops[i].Reg == ops[j].Reg
	}
}

func all(preds ...func([]Value) bool) func([]Value) bool {
	return func(ops []Value) bool {
		for _, p := range preds {
			if !p(ops) {
				return false
			}
		}
		return true
	}
}

// aliases lists the extended mnemonics per opcode, first match wins.
var aliases = map[cpu.Opcode][]alias{
	cpu.OPADDI:  {{isZeroReg(1), asm("li ", arg(0), ", ", call(2, MethodS16Imm))}},
	cpu.OPADDI8: {{isZeroReg(1), asm("li ", arg(0), ", ", call(2, MethodS16Imm))}},
	cpu.OPADDIS: {{isZeroReg(1), asm("lis ", arg(0), ", ", call(2, MethodS16Imm))}},
	cpu.OPORI:   {{all(isZeroReg(0), isZeroReg(1), isImm(0, 2)), "nop"}},
	cpu.OPNOR:   {{sameReg(1, 2), asm("not ", arg(0), ", ", arg(1))}},
	cpu.OPSUBF:  {{func([]Value) bool { return true }, asm("sub ", arg(0), ", ", arg(2), ", ", arg(1))}},
	cpu.OPRLWINM: {
		{all(isImm(0, 3), isImm(31, 4)), asm("rotlwi ", arg(0), ", ", arg(1), ", ", call(2, MethodU5Imm))},
		{all(isImm(0, 2), isImm(31, 4)), asm("clrlwi ", arg(0), ", ", arg(1), ", ", call(3, MethodU5Imm))},
	},
	cpu.OPRLDICL: {
		{isImm(0, 3), asm("rotldi ", arg(0), ", ", arg(1), ", ", call(2, MethodU6Imm))},
		{isImm(0, 2), asm("clrldi ", arg(0), ", ", arg(1), ", ", call(3, MethodU6Imm))},
		{shiftsRightDouble, asm("srdi ", arg(0), ", ", arg(1), ", ", call(3, MethodU6Imm))},
	},
	cpu.OPMTSPR: {
		{isImm(1, 0), asm("mtxer ", arg(1))},
		{isImm(8, 0), asm("mtlr ", arg(1))},
		{isImm(9, 0), asm("mtctr ", arg(1))},
	},
	cpu.OPMFSPR: {
		{isImm(1, 1), asm("mfxer ", arg(0))},
		{isImm(8, 1), asm("mflr ", arg(0))},
		{isImm(9, 1), asm("mfctr ", arg(0))},
	},
	cpu.OPSYNC: {
		{isImm(0, 0), "sync"},
		{isImm(1, 0), "lwsync"},
		{isImm(2, 0), "ptesync"},
	},
	cpu.OPBCC: {
		{isReg(cpu.CR0, 1), asm("b", call(0, MethodPredicateCC), call(0, MethodPredicatePM), " ", call(2, MethodBranch))},
	},
	cpu.OPBCCLR: {
		{isReg(cpu.CR0, 1), asm("b", call(0, MethodPredicateCC), "lr", call(0, MethodPredicatePM))},
	},
	cpu.OPBCCCTR: {
		{isReg(cpu.CR0, 1), asm("b", call(0, MethodPredicateCC), "ctr", call(0, MethodPredicatePM))},
	},
	cpu.OPSC: {{isImm(0, 0), "sc"}},
	cpu.OPTW: {{all(isImm(31, 0), isZeroReg(1), isZeroReg(2)), "trap"}},
	cpu.OPCMPW: {
		{isReg(cpu.CR0, 0), asm("cmpw ", arg(1), ", ", arg(2))},
	},
	cpu.OPCMPWI: {
		{isReg(cpu.CR0, 0), asm("cmpwi ", arg(1), ", ", call(2, MethodS16Imm))},
	},
	cpu.OPCMPLW: {
		{isReg(cpu.CR0, 0), asm("cmplw ", arg(1), ", ", arg(2))},
	},
	cpu.OPCMPLWI: {
		{isReg(cpu.CR0, 0), asm("cmplwi ", arg(1), ", ", call(2, MethodU16Imm))},
	},
	cpu.OPCMPD: {
		{isReg(cpu.CR0, 0), asm("cmpd ", arg(1), ", ", arg(2))},
	},
	cpu.OPCMPDI: {
		{isReg(cpu.CR0, 0), asm("cmpdi ", arg(1), ", ", call(2, MethodS16Imm))},
	},
}

// rldicl rA, rS, 64-n, n is srdi rA, rS, n.
func shiftsRightDouble(ops []Value) bool {
	if len(ops) < 4 || !ops[2].IsImm() || !ops[3].IsImm() {
		return false
	}
	sh, mb := ops[2].Imm, ops[3].Imm
	return mb > 0 && sh+mb == 64
}

// expandAlias prints the first table alias whose guard holds. Guards only
// read operands, so a false return has written nothing.
func (c *renderContext) expandAlias() bool {
	for _, a := range aliases[c.inst.Opcode] {
		if a.when(c.ops) {
			c.emit(a.asm)
			return true
		}
	}
	return false
}

// printInstruction prints inst with its own template. Opcodes without one
// are printed as a directive naming the opcode, so a listing never stops at
// an instruction the tables do not cover.
func (c *renderContext) printInstruction() {
	tmpl, ok := c.p.Opcodes.Template(c.inst.Opcode)
	if !ok {
		c.write(".insn\t")
		c.write(c.inst.Opcode.String())
		return
	}
	c.expand(tmpl)
}
