package disassembler

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/arch/ppc64/ppc64asm"

	"github.com/Urethramancer/ppc/cpu"
)

// ErrUnsupported is returned for instructions the printer has no opcode for.
var ErrUnsupported = errors.New("unsupported instruction")

// Branch option values with a fixed meaning.
const (
	boAlways  = 20
	boCRFalse = 4
	boCRTrue  = 12
	boDecNZ   = 16
	boDecZ    = 18
)

// direct maps the instructions whose operands carry over unchanged.
var direct = map[ppc64asm.Op]cpu.Opcode{
	ppc64asm.ADD:      cpu.OPADD,
	ppc64asm.ADDCC:    cpu.OPADDRc,
	ppc64asm.ADDI:     cpu.OPADDI,
	ppc64asm.ADDIS:    cpu.OPADDIS,
	ppc64asm.SUBF:     cpu.OPSUBF,
	ppc64asm.SUBFCC:   cpu.OPSUBFRc,
	ppc64asm.NEG:      cpu.OPNEG,
	ppc64asm.MULLW:    cpu.OPMULLW,
	ppc64asm.DIVW:     cpu.OPDIVW,
	ppc64asm.AND:      cpu.OPAND,
	ppc64asm.ANDCC:    cpu.OPANDRc,
	ppc64asm.OR:       cpu.OPOR,
	ppc64asm.ORCC:     cpu.OPORRc,
	ppc64asm.XOR:      cpu.OPXOR,
	ppc64asm.NOR:      cpu.OPNOR,
	ppc64asm.ORI:      cpu.OPORI,
	ppc64asm.ORIS:     cpu.OPORIS,
	ppc64asm.ANDICC:   cpu.OPANDIRc,
	ppc64asm.CMPW:     cpu.OPCMPW,
	ppc64asm.CMPWI:    cpu.OPCMPWI,
	ppc64asm.CMPLW:    cpu.OPCMPLW,
	ppc64asm.CMPLWI:   cpu.OPCMPLWI,
	ppc64asm.CMPD:     cpu.OPCMPD,
	ppc64asm.CMPDI:    cpu.OPCMPDI,
	ppc64asm.RLWINM:   cpu.OPRLWINM,
	ppc64asm.RLWINMCC: cpu.OPRLWINMRc,
	ppc64asm.RLDICR:   cpu.OPRLDICR,
	ppc64asm.RLDICL:   cpu.OPRLDICL,
	ppc64asm.SLW:      cpu.OPSLW,
	ppc64asm.SRW:      cpu.OPSRW,
	ppc64asm.SRAWI:    cpu.OPSRAWI,
	ppc64asm.LBZ:      cpu.OPLBZ,
	ppc64asm.LHZ:      cpu.OPLHZ,
	ppc64asm.LWZ:      cpu.OPLWZ,
	ppc64asm.LD:       cpu.OPLD,
	ppc64asm.STB:      cpu.OPSTB,
	ppc64asm.STH:      cpu.OPSTH,
	ppc64asm.STW:      cpu.OPSTW,
	ppc64asm.STWU:     cpu.OPSTWU,
	ppc64asm.STD:      cpu.OPSTD,
	ppc64asm.STDU:     cpu.OPSTDU,
	ppc64asm.LWZX:     cpu.OPLWZX,
	ppc64asm.STWX:     cpu.OPSTWX,
	ppc64asm.LFD:      cpu.OPLFD,
	ppc64asm.STFD:     cpu.OPSTFD,
	ppc64asm.MTSPR:    cpu.OPMTSPR,
	ppc64asm.MFSPR:    cpu.OPMFSPR,
	ppc64asm.MFCR:     cpu.OPMFCR,
	ppc64asm.DCBZ:     cpu.OPDCBZ,
	ppc64asm.DCBST:    cpu.OPDCBST,
	ppc64asm.ICBI:     cpu.OPICBI,
	ppc64asm.SYNC:     cpu.OPSYNC,
	ppc64asm.ISYNC:    cpu.OPISYNC,
	ppc64asm.SC:       cpu.OPSC,
	ppc64asm.TW:       cpu.OPTW,
	ppc64asm.VADDUWM:  cpu.OPVADDUWM,
	ppc64asm.VSPLTISW: cpu.OPVSPLTISW,
}

// Instructions that only exist with 64-bit register operands.
var doubleword = map[ppc64asm.Op]bool{
	ppc64asm.LD:     true,
	ppc64asm.STD:    true,
	ppc64asm.STDU:   true,
	ppc64asm.RLDICR: true,
	ppc64asm.RLDICL: true,
	ppc64asm.CMPD:   true,
	ppc64asm.CMPDI:  true,
}

// Condition bit order inside a field, as the architecture numbers them.
var fieldBits = [4]cpu.CRCond{cpu.CondLT, cpu.CondGT, cpu.CondEQ, cpu.CondUN}

// Predicate condition index of each CR bit.
var predCond = [4]cpu.Predicate{cpu.CondLT: 0, cpu.CondGT: 1, cpu.CondEQ: 2, cpu.CondUN: 3}

// Decode decodes the instruction at the start of src, which was loaded at
// addr, into a record for the printer. It returns the record and the number
// of bytes consumed.
func Decode(src []byte, addr uint64, mode cpu.Mode) (*Inst, int, error) {
	in, err := ppc64asm.Decode(src, mode.ByteOrder())
	if err != nil {
		return nil, 0, err
	}
	inst, err := convert(in, addr, mode)
	if err != nil {
		return nil, in.Len, err
	}
	return inst, in.Len, nil
}

func convert(in ppc64asm.Inst, addr uint64, mode cpu.Mode) (*Inst, error) {
	wide := doubleword[in.Op] || mode.Has(cpu.Mode64)
	ops := make([]Value, 0, len(in.Args))
	for _, a := range in.Args {
		if a == nil {
			break
		}
		v, err := value(a, wide)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", in.Op, err)
		}
		ops = append(ops, v)
	}

	if op, ok := direct[in.Op]; ok {
		if mode.Has(cpu.Mode64) {
			op = widen(op)
		}
		return NewInst(op, addr, ops...), nil
	}

	zero := Reg(cpu.R0)
	if wide {
		zero = Reg(cpu.X0)
	}
	switch in.Op {
	case ppc64asm.LI, ppc64asm.LIS:
		// The decoder already folds addi/addis from r0 into li/lis.
		op := cpu.OPADDIS
		if in.Op == ppc64asm.LI {
			op = cpu.OPADDI
			if mode.Has(cpu.Mode64) {
				op = cpu.OPADDI8
			}
		}
		if len(ops) < 2 {
			return nil, fmt.Errorf("%s: %w", in.Op, ErrUnsupported)
		}
		return NewInst(op, addr, ops[0], zero, ops[1]), nil
	case ppc64asm.NOP:
		return NewInst(cpu.OPORI, addr, zero, zero, Imm(0)), nil
	case ppc64asm.B, ppc64asm.BA, ppc64asm.BL, ppc64asm.BLA:
		return branch(in.Op, addr, ops), nil
	case ppc64asm.BC, ppc64asm.BCA, ppc64asm.BCL, ppc64asm.BCLA:
		return conditional(in.Op, addr, ops), nil
	case ppc64asm.BCLR, ppc64asm.BCLRL, ppc64asm.BCCTR, ppc64asm.BCCTRL:
		return indirect(in.Op, addr, ops), nil
	case ppc64asm.DCBT, ppc64asm.DCBTST, ppc64asm.DCBF:
		return touch(in.Op, addr, ops), nil
	case ppc64asm.MTCRF, ppc64asm.MTOCRF:
		// Only single field masks have a register form.
		if len(ops) < 2 || bits.OnesCount8(uint8(ops[0].Imm)) != 1 {
			return nil, fmt.Errorf("%s: %w", in.Op, ErrUnsupported)
		}
		field := 7 - bits.TrailingZeros8(uint8(ops[0].Imm))
		return NewInst(cpu.OPMTCRF, addr, Reg(cpu.CRField(field)), ops[1]), nil
	case ppc64asm.MTFSFI:
		if len(ops) > 0 && ops[0].IsReg() {
			ops[0] = Imm(int64(ops[0].Reg.CRField()))
		}
		return NewInst(cpu.OPMTFSFI, addr, ops...), nil
	}
	return nil, fmt.Errorf("%s: %w", in.Op, ErrUnsupported)
}

// widen picks the 64-bit form of an opcode where there is one.
func widen(op cpu.Opcode) cpu.Opcode {
	switch op {
	case cpu.OPADD:
		return cpu.OPADD8
	case cpu.OPADDI:
		return cpu.OPADDI8
	case cpu.OPOR:
		return cpu.OPOR8
	}
	return op
}

func value(a ppc64asm.Arg, wide bool) (Value, error) {
	switch a := a.(type) {
	case ppc64asm.Reg:
		switch {
		case a >= ppc64asm.R0 && a <= ppc64asm.R31:
			if wide {
				return Reg(cpu.GPR64(int(a - ppc64asm.R0))), nil
			}
			return Reg(cpu.GPR(int(a - ppc64asm.R0))), nil
		case a >= ppc64asm.F0 && a <= ppc64asm.F31:
			return Reg(cpu.FPR(int(a - ppc64asm.F0))), nil
		case a >= ppc64asm.V0 && a <= ppc64asm.V31:
			return Reg(cpu.VR(int(a - ppc64asm.V0))), nil
		}
	case ppc64asm.CondReg:
		switch {
		case a >= ppc64asm.CR0 && a <= ppc64asm.CR7:
			return Reg(cpu.CRField(int(a - ppc64asm.CR0))), nil
		case a >= ppc64asm.Cond0LT && a <= ppc64asm.Cond7SO:
			n := int(a - ppc64asm.Cond0LT)
			return Reg(cpu.CRBit(n/4, fieldBits[n%4])), nil
		}
	case ppc64asm.Imm:
		return Imm(int64(a)), nil
	case ppc64asm.Offset:
		return Imm(int64(a)), nil
	case ppc64asm.SpReg:
		return Imm(int64(a)), nil
	case ppc64asm.PCRel:
		return Imm(int64(a)), nil
	case ppc64asm.Label:
		return Imm(int64(a)), nil
	}
	return Value{}, fmt.Errorf("operand %s: %w", a, ErrUnsupported)
}

// Displacement fields go back to their raw encoded form; the printer does
// the scaling and sign extension.
func rawField(v Value, width uint) Value {
	return Imm(int64(truncate(v.Imm>>2, width)))
}

func branch(op ppc64asm.Op, addr uint64, ops []Value) *Inst {
	codes := map[ppc64asm.Op]cpu.Opcode{
		ppc64asm.B:   cpu.OPB,
		ppc64asm.BA:  cpu.OPBA,
		ppc64asm.BL:  cpu.OPBL,
		ppc64asm.BLA: cpu.OPBLA,
	}
	return NewInst(codes[op], addr, rawField(ops[0], 24))
}

// crPredicate builds the predicate for a CR test, or reports false when BO
// is not a plain or hinted true/false test.
func crPredicate(bo int64, bit cpu.Reg) (cpu.Predicate, bool) {
	base := bo &^ 3
	if (base != boCRFalse && base != boCRTrue) || bo&3 == 1 {
		return 0, false
	}
	return predCond[bit.CRCond()]<<5 | cpu.Predicate(bo), true
}

// ctrTest reports which counter test BO encodes, and its hint as an offset
// from the unhinted opcode.
func ctrTest(bo int64) (cpu.Opcode, cpu.Opcode, bool) {
	switch bo {
	case boDecNZ:
		return cpu.OPBDNZ, 0, true
	case boDecNZ + 8:
		return cpu.OPBDNZ, 1, true
	case boDecNZ + 9:
		return cpu.OPBDNZ, 2, true
	case boDecZ:
		return cpu.OPBDZ, 0, true
	case boDecZ + 8:
		return cpu.OPBDZ, 1, true
	case boDecZ + 9:
		return cpu.OPBDZ, 2, true
	}
	return 0, 0, false
}

func conditional(op ppc64asm.Op, addr uint64, ops []Value) *Inst {
	form := map[ppc64asm.Op]int{ppc64asm.BC: 0, ppc64asm.BCA: 1, ppc64asm.BCL: 2, ppc64asm.BCLA: 3}[op]
	bo, bi, target := ops[0].Imm, ops[1], rawField(ops[2], 14)

	if base, hint, ok := ctrTest(bo); ok && bi.Reg == cpu.CRBit(0, cpu.CondLT) {
		return NewInst(base+cpu.Opcode(form*3)+hint, addr, target)
	}
	if p, ok := crPredicate(bo, bi.Reg); ok && form == 0 {
		return NewInst(cpu.OPBCC, addr, Imm(int64(p)), Reg(cpu.CRField(bi.Reg.CRField())), target)
	}
	generic := [4]cpu.Opcode{cpu.OPGenBC, cpu.OPGenBCA, cpu.OPGenBCL, cpu.OPGenBCLA}
	return NewInst(generic[form], addr, ops[0], bi, target)
}

func indirect(op ppc64asm.Op, addr uint64, ops []Value) *Inst {
	bo, bi := ops[0].Imm, ops[1]
	bh := Imm(0)
	if len(ops) > 2 {
		bh = ops[2]
	}
	toLR := op == ppc64asm.BCLR || op == ppc64asm.BCLRL
	link := op == ppc64asm.BCLRL || op == ppc64asm.BCCTRL

	if bo == boAlways && bh.Imm == 0 {
		switch {
		case toLR && link:
			return NewInst(cpu.OPBLRL, addr)
		case toLR:
			return NewInst(cpu.OPBLR, addr)
		case link:
			return NewInst(cpu.OPBCTRL, addr)
		}
		return NewInst(cpu.OPBCTR, addr)
	}
	if toLR && bh.Imm == 0 && bi.Reg == cpu.CRBit(0, cpu.CondLT) {
		if base, hint, ok := ctrTest(bo); ok {
			form := 4
			if link {
				form = 5
			}
			return NewInst(base+cpu.Opcode(form*3)+hint, addr)
		}
	}
	if p, ok := crPredicate(bo, bi.Reg); ok && !link && bh.Imm == 0 {
		cr := Reg(cpu.CRField(bi.Reg.CRField()))
		if toLR {
			return NewInst(cpu.OPBCCLR, addr, Imm(int64(p)), cr)
		}
		return NewInst(cpu.OPBCCCTR, addr, Imm(int64(p)), cr)
	}

	var generic cpu.Opcode
	switch {
	case toLR && link:
		generic = cpu.OPGenBCLRL
	case toLR:
		generic = cpu.OPGenBCLR
	case link:
		generic = cpu.OPGenBCCTRL
	default:
		generic = cpu.OPGenBCCTR
	}
	return NewInst(generic, addr, ops[0], bi, bh)
}

// touch moves the hint field of the cache instructions to the front.
func touch(op ppc64asm.Op, addr uint64, ops []Value) *Inst {
	codes := map[ppc64asm.Op]cpu.Opcode{
		ppc64asm.DCBT:   cpu.OPDCBT,
		ppc64asm.DCBTST: cpu.OPDCBTST,
		ppc64asm.DCBF:   cpu.OPDCBF,
	}
	hint := Imm(0)
	if len(ops) > 2 {
		hint = ops[2]
	}
	return NewInst(codes[op], addr, hint, ops[0], ops[1])
}
