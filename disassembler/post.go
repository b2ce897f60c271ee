package disassembler

import "github.com/Urethramancer/ppc/cpu"

// postProcess reads the hint and record suffixes off the final mnemonic
// and returns the public identity of what is left.
func (c *renderContext) postProcess(mn string) cpu.Insn {
	if mn == "" {
		return cpu.InsnInvalid
	}
	switch mn[len(mn)-1] {
	case '+':
		c.setHint(cpu.BHPlus)
		mn = mn[:len(mn)-1]
	case '-':
		c.setHint(cpu.BHMinus)
		mn = mn[:len(mn)-1]
	case '.':
		if c.detail != nil {
			c.detail.UpdateCR0 = true
		}
		mn = mn[:len(mn)-1]
	}
	if bc, ok := c.p.Mnemonics.ConditionAlias(mn); ok {
		c.setBC(bc)
	}
	return c.p.Mnemonics.Insn(mn)
}

func (c *renderContext) setHint(h cpu.BranchHint) {
	if c.detail != nil {
		c.detail.BH = h
	}
}
