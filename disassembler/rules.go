package disassembler

import "github.com/Urethramancer/ppc/cpu"

// applyRules prints the handful of aliases that need more than a template:
// shift shorthands, mr and the cache hint forms. Each rule checks its guard
// before writing anything, so a false return leaves the context untouched.
func (c *renderContext) applyRules() bool {
	switch c.inst.Opcode {
	case cpu.OPRLWINM:
		return c.ruleShiftWord()
	case cpu.OPOR, cpu.OPOR8:
		return c.ruleMoveRegister()
	case cpu.OPRLDICR, cpu.OPRLDICR32:
		return c.ruleShiftDouble()
	case cpu.OPDCBT, cpu.OPDCBTST:
		return c.ruleDataTouch()
	case cpu.OPDCBF:
		return c.ruleDataFlush()
	}
	return false
}

// field returns an immediate slot as the byte-wide field it encodes.
func (c *renderContext) field(i int) int {
	return int(uint8(c.operand(i).Imm))
}

// shorthand writes "mn\trD, rS, n" with n recorded as an immediate.
func (c *renderContext) shorthand(mn string, n int) {
	c.write(mn)
	c.write("\t")
	c.printOperand(0)
	c.write(", ")
	c.printOperand(1)
	c.write(", ")
	c.write(formatUint32(uint32(n)))
	c.addImm(int64(n), false)
}

// rlwinm rA, rS, n, 0, 31-n is slwi; rlwinm rA, rS, 32-n, n, 31 is srwi.
func (c *renderContext) ruleShiftWord() bool {
	sh, mb, me := c.field(2), c.field(3), c.field(4)
	switch {
	case sh <= 31 && mb == 0 && me == 31-sh:
		c.shorthand("slwi", sh)
	case sh <= 31 && mb == 32-sh && me == 31:
		c.shorthand("srwi", 32-sh)
	default:
		return false
	}
	return true
}

// rldicr rA, rS, n, 63-n is sldi.
func (c *renderContext) ruleShiftDouble() bool {
	sh, me := c.field(2), c.field(3)
	if 63-sh != me {
		return false
	}
	c.shorthand("sldi", sh)
	return true
}

// or rA, rS, rS is mr.
func (c *renderContext) ruleMoveRegister() bool {
	a, b := c.operand(1), c.operand(2)
	if !a.IsReg() || !b.IsReg() || a.Reg != b.Reg {
		return false
	}
	c.write("mr\t")
	c.printOperand(0)
	c.write(", ")
	c.printOperand(1)
	return true
}

// ruleDataTouch prints dcbt and dcbtst. TH 0 is left out and TH 16 becomes
// the "t" suffix. Any other hint is an operand, first on embedded cores and
// last on server ones.
func (c *renderContext) ruleDataTouch() bool {
	th := c.field(0)
	c.write("dcbt")
	if c.inst.Opcode == cpu.OPDCBTST {
		c.write("st")
	}
	if th == 16 {
		c.write("t")
	}
	c.write("\t")

	explicit := th != 0 && th != 16
	booke := c.p.Mode.Has(cpu.ModeBookE)
	if explicit && booke {
		c.write(formatUint32(uint32(th)))
		c.write(", ")
		c.addImm(int64(th), false)
	}
	c.printOperand(1)
	c.write(", ")
	c.printOperand(2)
	if explicit && !booke {
		c.write(", ")
		c.write(formatUint32(uint32(th)))
		c.addImm(int64(th), false)
	}
	return true
}

// ruleDataFlush prints dcbf, dcbfl and dcbflp. Other L values are left to
// the plain template.
func (c *renderContext) ruleDataFlush() bool {
	var mn string
	switch c.field(0) {
	case 0:
		mn = "dcbf"
	case 1:
		mn = "dcbfl"
	case 3:
		mn = "dcbflp"
	default:
		return false
	}
	c.write(mn)
	c.write("\t")
	c.printOperand(1)
	c.write(", ")
	c.printOperand(2)
	return true
}
