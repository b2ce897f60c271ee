package disassembler

import "github.com/Urethramancer/ppc/cpu"

type defaultRegisters struct{}

func (defaultRegisters) Name(r cpu.Reg) string      { return cpu.RegName(r) }
func (defaultRegisters) Public(name string) cpu.Reg { return cpu.RegByName(name) }

type defaultMnemonics struct{}

func (defaultMnemonics) Insn(m string) cpu.Insn { return cpu.LookupInsn(m) }

func (defaultMnemonics) ConditionAlias(m string) (cpu.BranchCond, bool) {
	return cpu.BranchCondAlias(m)
}

type defaultOpcodes struct{}

func (defaultOpcodes) Template(op cpu.Opcode) (string, bool) {
	t, ok := templates[op]
	return t, ok
}

func (defaultOpcodes) IsAbsoluteBranch(op cpu.Opcode) bool {
	return absoluteBranches[op]
}

var absoluteBranches = map[cpu.Opcode]bool{
	cpu.OPBA:          true,
	cpu.OPBLA:         true,
	cpu.OPGenBCA:      true,
	cpu.OPGenBCLA:     true,
	cpu.OPBDNZA:       true,
	cpu.OPBDNZAMinus:  true,
	cpu.OPBDNZAPlus:   true,
	cpu.OPBDNZLA:      true,
	cpu.OPBDNZLAMinus: true,
	cpu.OPBDNZLAPlus:  true,
	cpu.OPBDZA:        true,
	cpu.OPBDZAMinus:   true,
	cpu.OPBDZAPlus:    true,
	cpu.OPBDZLA:       true,
	cpu.OPBDZLAMinus:  true,
	cpu.OPBDZLAPlus:   true,
}

// Operand templates shared by many opcodes.
var (
	rrr      = asm(arg(0), ", ", arg(1), ", ", arg(2))
	rr       = asm(arg(0), ", ", arg(1))
	rrS16    = asm(arg(0), ", ", arg(1), ", ", call(2, MethodS16Imm))
	rrU16    = asm(arg(0), ", ", arg(1), ", ", call(2, MethodU16Imm))
	rMem     = asm(arg(0), ", ", call(1, MethodMemRegImm))
	rMemX    = asm(arg(0), ", ", call(1, MethodMemRegReg))
	branchTo = call(0, MethodBranch)
)

// templates holds the canonical syntax of every opcode. Operand indexes
// refer to the decoder's slot order, which is not always print order.
var templates = map[cpu.Opcode]string{
	cpu.OPADD:    asm("add\t", rrr),
	cpu.OPADDRc:  asm("add.\t", rrr),
	cpu.OPADD8:   asm("add\t", rrr),
	cpu.OPADDI:   asm("addi\t", rrS16),
	cpu.OPADDI8:  asm("addi\t", rrS16),
	cpu.OPADDIS:  asm("addis\t", rrS16),
	cpu.OPSUBF:   asm("subf\t", rrr),
	cpu.OPSUBFRc: asm("subf.\t", rrr),
	cpu.OPNEG:    asm("neg\t", rr),
	cpu.OPMULLW:  asm("mullw\t", rrr),
	cpu.OPDIVW:   asm("divw\t", rrr),
	cpu.OPAND:    asm("and\t", rrr),
	cpu.OPANDRc:  asm("and.\t", rrr),
	cpu.OPOR:     asm("or\t", rrr),
	cpu.OPORRc:   asm("or.\t", rrr),
	cpu.OPOR8:    asm("or\t", rrr),
	cpu.OPXOR:    asm("xor\t", rrr),
	cpu.OPNOR:    asm("nor\t", rrr),
	cpu.OPORI:    asm("ori\t", rrU16),
	cpu.OPORIS:   asm("oris\t", rrU16),
	cpu.OPANDIRc: asm("andi.\t", rrU16),
	cpu.OPCMPW:   asm("cmpw\t", rrr),
	cpu.OPCMPWI:  asm("cmpwi\t", rrS16),
	cpu.OPCMPLW:  asm("cmplw\t", rrr),
	cpu.OPCMPLWI: asm("cmplwi\t", rrU16),
	cpu.OPCMPD:   asm("cmpd\t", rrr),
	cpu.OPCMPDI:  asm("cmpdi\t", rrS16),

	cpu.OPRLWINM:   asm("rlwinm\t", rr, ", ", call(2, MethodU5Imm), ", ", call(3, MethodU5Imm), ", ", call(4, MethodU5Imm)),
	cpu.OPRLWINMRc: asm("rlwinm.\t", rr, ", ", call(2, MethodU5Imm), ", ", call(3, MethodU5Imm), ", ", call(4, MethodU5Imm)),
	cpu.OPRLDICR:   asm("rldicr\t", rr, ", ", call(2, MethodU6Imm), ", ", call(3, MethodU6Imm)),
	cpu.OPRLDICR32: asm("rldicr\t", rr, ", ", call(2, MethodU6Imm), ", ", call(3, MethodU6Imm)),
	cpu.OPRLDICL:   asm("rldicl\t", rr, ", ", call(2, MethodU6Imm), ", ", call(3, MethodU6Imm)),
	cpu.OPSLW:      asm("slw\t", rrr),
	cpu.OPSRW:      asm("srw\t", rrr),
	cpu.OPSRAWI:    asm("srawi\t", rr, ", ", call(2, MethodU5Imm)),

	cpu.OPLBZ:   asm("lbz\t", rMem),
	cpu.OPLHZ:   asm("lhz\t", rMem),
	cpu.OPLWZ:   asm("lwz\t", rMem),
	cpu.OPLD:    asm("ld\t", rMem),
	cpu.OPSTB:   asm("stb\t", rMem),
	cpu.OPSTH:   asm("sth\t", rMem),
	cpu.OPSTW:   asm("stw\t", rMem),
	cpu.OPSTWU:  asm("stwu\t", rMem),
	cpu.OPSTD:   asm("std\t", rMem),
	cpu.OPSTDU:  asm("stdu\t", rMem),
	cpu.OPLWZX:  asm("lwzx\t", rMemX),
	cpu.OPSTWX:  asm("stwx\t", rMemX),
	cpu.OPLFD:   asm("lfd\t", rMem),
	cpu.OPSTFD:  asm("stfd\t", rMem),
	cpu.OPPSQL:  asm("psq_l\t", arg(0), ", ", call(1, MethodPSMemRegImm), ", ", call(3, MethodU1Imm), ", ", call(4, MethodU3Imm)),
	cpu.OPPSQST: asm("psq_st\t", arg(0), ", ", call(1, MethodPSMemRegImm), ", ", call(3, MethodU1Imm), ", ", call(4, MethodU3Imm)),

	cpu.OPB:   asm("b\t", branchTo),
	cpu.OPBA:  asm("ba\t", call(0, MethodAbsBranch)),
	cpu.OPBL:  asm("bl\t", branchTo),
	cpu.OPBLA: asm("bla\t", call(0, MethodAbsBranch)),

	cpu.OPGenBC:     asm("bc\t", call(0, MethodU5Imm), ", ", arg(1), ", ", call(2, MethodBranch)),
	cpu.OPGenBCA:    asm("bca\t", call(0, MethodU5Imm), ", ", arg(1), ", ", call(2, MethodAbsBranch)),
	cpu.OPGenBCL:    asm("bcl\t", call(0, MethodU5Imm), ", ", arg(1), ", ", call(2, MethodBranch)),
	cpu.OPGenBCLA:   asm("bcla\t", call(0, MethodU5Imm), ", ", arg(1), ", ", call(2, MethodAbsBranch)),
	cpu.OPGenBCLR:   asm("bclr\t", call(0, MethodU5Imm), ", ", arg(1), ", ", call(2, MethodU2Imm)),
	cpu.OPGenBCLRL:  asm("bclrl\t", call(0, MethodU5Imm), ", ", arg(1), ", ", call(2, MethodU2Imm)),
	cpu.OPGenBCCTR:  asm("bcctr\t", call(0, MethodU5Imm), ", ", arg(1), ", ", call(2, MethodU2Imm)),
	cpu.OPGenBCCTRL: asm("bcctrl\t", call(0, MethodU5Imm), ", ", arg(1), ", ", call(2, MethodU2Imm)),
	cpu.OPGenBCat:   asm("bc", call(1, MethodATBitsAsHint), "\t", call(0, MethodU5Imm), ", ", arg(2), ", ", call(3, MethodBranch)),

	cpu.OPBCC:    asm("b", call(0, MethodPredicateCC), call(0, MethodPredicatePM), "\t", call(0, MethodPredicateReg), ", ", call(2, MethodBranch)),
	cpu.OPBCCLR:  asm("b", call(0, MethodPredicateCC), "lr", call(0, MethodPredicatePM), "\t", call(0, MethodPredicateReg)),
	cpu.OPBCCCTR: asm("b", call(0, MethodPredicateCC), "ctr", call(0, MethodPredicatePM), "\t", call(0, MethodPredicateReg)),

	cpu.OPBLR:   "blr",
	cpu.OPBLRL:  "blrl",
	cpu.OPBCTR:  "bctr",
	cpu.OPBCTRL: "bctrl",

	cpu.OPMTSPR:  asm("mtspr\t", call(0, MethodU16Imm), ", ", arg(1)),
	cpu.OPMFSPR:  asm("mfspr\t", arg(0), ", ", call(1, MethodU16Imm)),
	cpu.OPMTLR:   asm("mtlr\t", arg(0)),
	cpu.OPMFLR:   asm("mflr\t", arg(0)),
	cpu.OPMTCTR:  asm("mtctr\t", arg(0)),
	cpu.OPMFCTR:  asm("mfctr\t", arg(0)),
	cpu.OPMFCR:   asm("mfcr\t", arg(0)),
	cpu.OPMTCRF:  asm("mtcrf\t", call(0, MethodCRBitM), ", ", arg(1)),
	cpu.OPMTFSFI: asm("mtfsfi\t", arg(0), ", ", call(1, MethodU4Imm), ", ", call(2, MethodU1Imm)),

	cpu.OPDCBT:   asm("dcbt\t", call(1, MethodMemRegReg), ", ", call(0, MethodU5Imm)),
	cpu.OPDCBTST: asm("dcbtst\t", call(1, MethodMemRegReg), ", ", call(0, MethodU5Imm)),
	cpu.OPDCBF:   asm("dcbf\t", call(1, MethodMemRegReg), ", ", call(0, MethodU5Imm)),
	cpu.OPDCBZ:   asm("dcbz\t", call(0, MethodMemRegReg)),
	cpu.OPDCBST:  asm("dcbst\t", call(0, MethodMemRegReg)),
	cpu.OPICBI:   asm("icbi\t", call(0, MethodMemRegReg)),
	cpu.OPSYNC:   asm("sync\t", call(0, MethodU2Imm)),
	cpu.OPISYNC:  "isync",
	cpu.OPSC:     asm("sc\t", call(0, MethodU7Imm)),
	cpu.OPTW:     asm("tw\t", call(0, MethodU5Imm), ", ", arg(1), ", ", arg(2)),

	cpu.OPVADDUWM:  asm("vadduwm\t", rrr),
	cpu.OPVSPLTISW: asm("vspltisw\t", arg(0), ", ", call(1, MethodS5Imm)),
}

func init() {
	// The bdnz/bdz families differ only in mnemonic and target kind.
	ctr := []struct {
		base cpu.Opcode
		name string
	}{
		{cpu.OPBDNZ, "bdnz"},
		{cpu.OPBDZ, "bdz"},
	}
	forms := []struct {
		suffix string
		abs    bool
		target bool
	}{
		{"", false, true},
		{"a", true, true},
		{"l", false, true},
		{"la", true, true},
		{"lr", false, false},
		{"lrl", false, false},
	}
	hints := []string{"", "-", "+"}
	for _, c := range ctr {
		op := c.base
		for _, f := range forms {
			for _, h := range hints {
				t := c.name + f.suffix + h
				switch {
				case f.target && f.abs:
					t = asm(t, "\t", call(0, MethodAbsBranch))
				case f.target:
					t = asm(t, "\t", call(0, MethodBranch))
				}
				templates[op] = t
				op++
			}
		}
	}
}
