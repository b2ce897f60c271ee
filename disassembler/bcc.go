package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/ppc/cpu"
)

// bccSkeletons maps each generic bc form to its mnemonic, with %s standing
// for the test.
var bccSkeletons = map[cpu.Opcode]string{
	cpu.OPGenBC:     "b%s",
	cpu.OPGenBCA:    "b%sa",
	cpu.OPGenBCCTR:  "b%sctr",
	cpu.OPGenBCCTRL: "b%sctrl",
	cpu.OPGenBCL:    "b%sl",
	cpu.OPGenBCLA:   "b%sla",
	cpu.OPGenBCLR:   "b%slr",
	cpu.OPGenBCLRL:  "b%slrl",
}

// Tests selected by BO when the CR bit must be clear and set.
var (
	crFalseTests = [4]string{cpu.CondEQ: "ne", cpu.CondGT: "le", cpu.CondLT: "ge", cpu.CondUN: "ns"}
	crTrueTests  = [4]string{cpu.CondEQ: "eq", cpu.CondGT: "gt", cpu.CondLT: "lt", cpu.CondUN: "so"}
	crBitConds   = [4]cpu.BranchCond{cpu.CondEQ: cpu.BCEQ, cpu.CondGT: cpu.BCGT, cpu.CondLT: cpu.BCLT, cpu.CondUN: cpu.BCSO}
)

// bccTest picks the mnemonic test for a BO value and the prediction suffix
// that follows the whole mnemonic. decCtr is set for the forms that also
// decrement CTR and take the CR bit as an operand.
func bccTest(bo int64, bi Value) (test, hint string, decCtr bool) {
	crbit := bi.IsReg() && bi.Reg.IsCRBit()
	switch {
	case bo >= 0 && bo <= 1:
		return "dnzf", "", true
	case bo >= 2 && bo <= 3:
		return "dzf", "", true
	case bo >= 4 && bo <= 7 && crbit:
		return crFalseTests[bi.Reg.CRCond()], hintSuffix(bo, 6, 7), false
	case bo >= 8 && bo <= 9:
		return "dnzt", "", true
	case bo >= 10 && bo <= 11:
		return "dzt", "", true
	case bo >= 12 && bo <= 15 && crbit:
		return crTrueTests[bi.Reg.CRCond()], hintSuffix(bo, 14, 15), false
	case bo&0x12 == 16:
		return "dnz", hintSuffix(bo, 24, 25), false
	case bo&0x12 == 18:
		return "dz", hintSuffix(bo, 26, 27), false
	}
	return "", "", false
}

func hintSuffix(bo, minus, plus int64) string {
	switch bo {
	case minus:
		return "-"
	case plus:
		return "+"
	}
	return ""
}

// expandBranchAlias prints the generic bc forms under their extended
// mnemonics ("bne", "bdnzt", "bgtlr+"). It reports false, having written
// nothing, when inst is not one of them or BO selects no known test.
func (c *renderContext) expandBranchAlias() bool {
	skel, ok := bccSkeletons[c.inst.Opcode]
	if !ok || len(c.ops) != 3 {
		return false
	}
	bo, bi := c.operand(0), c.operand(1)
	if !bo.IsImm() {
		return false
	}
	test, hint, decCtr := bccTest(bo.Imm, bi)
	if test == "" {
		return false
	}

	var b strings.Builder
	fmt.Fprintf(&b, skel, test)
	b.WriteString(hint)

	needComma := false
	if bi.IsReg() && bi.Reg.IsCRBit() && bo.Imm < 16 {
		cr, cond := bi.Reg.CRField(), bi.Reg.CRCond()
		if decCtr {
			needComma = true
			b.WriteString(" ")
			if cr > 0 {
				fmt.Fprintf(&b, "4*cr%d+", cr)
			}
			b.WriteString(crTrueTests[cond])
			c.setBC(crBitConds[cond])
			if cr == 0 {
				c.addReg(cpu.CRBit(0, cond))
			} else {
				c.addReg(bi.Reg)
			}
		} else if cr > 0 {
			needComma = true
			fmt.Fprintf(&b, " cr%d", cr)
			c.addReg(cpu.CRField(cr))
		}
	}

	if t := c.operand(2); t.IsImm() && t.Imm != 0 {
		if needComma {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(call(2, MethodBranch))
	}

	c.emit(b.String())
	return true
}

// emit writes an alias: the mnemonic up to the first blank, then a tab and
// the operand template, if there is one. Both halves may hold placeholders.
func (c *renderContext) emit(text string) {
	mn, ops := splitTemplate(text)
	c.expand(mn)
	if ops != "" {
		c.write("\t")
		c.expand(ops)
	}
}
