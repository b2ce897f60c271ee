package disassembler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Urethramancer/ppc/cpu"
)

func TestFormatInt32(t *testing.T) {
	tests := []struct {
		v    int32
		want string
	}{
		{0, "0"},
		{9, "9"},
		{10, "0xa"},
		{-9, "-9"},
		{-10, "-0xa"},
		{0x7fff, "0x7fff"},
		{math.MinInt32, "-0x80000000"},
	}
	for _, tt := range tests {
		if got := formatInt32(tt.v); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
	assert.Equal(t, "9", formatUint32(9))
	assert.Equal(t, "0xffffffff", formatUint32(math.MaxUint32))
	assert.Equal(t, "0x100000000", formatUint64(1<<32))
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, int64(-1), signExtend(0xffffff, 24))
	assert.Equal(t, int64(0x7fffff), signExtend(0x7fffff, 24))
	assert.Equal(t, int64(-2), signExtend(0x3ffe, 14))
	// Extending twice changes nothing.
	assert.Equal(t, signExtend(0x2000, 14), signExtend(signExtend(0x2000, 14), 14))
	assert.Equal(t, uint64(0x1f), truncate(-1, 5))
}

func TestStripRegisterPrefix(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"r3", "3"},
		{"f31", "31"},
		{"v7", "7"},
		{"vs12", "12"},
		{"q2", "2"},
		{"cr2", "2"},
		{"cr5gt", "5"},
		{"lr", "lr"},
		{"ctr", "ctr"},
		{"x", "x"},
	}
	for _, tt := range tests {
		if got := stripRegisterPrefix(tt.name); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestNoRegName(t *testing.T) {
	p := New(Config{Mode: cpu.Mode32, NoRegName: true, Detail: true})
	var d Detail
	res := p.Print(NewInst(cpu.OPLWZ, 0, r3, Imm(16), r1), &d)
	assert.Equal(t, "lwz\t3, 0x10(1)", res.String())
	// The structured operands still carry real registers.
	assert.Equal(t, cpu.GPR(3), d.Operands[0].Reg)
	assert.Equal(t, cpu.GPR(1), d.Operands[1].Mem.Base)
}

func TestMemoryOperand(t *testing.T) {
	tests := []struct {
		name string
		inst *Inst
		text string
		base cpu.Reg
		disp int32
	}{
		{"base", NewInst(cpu.OPLWZ, 0, r3, Imm(8), r1), "lwz\tr3, 8(r1)", cpu.GPR(1), 8},
		{"negative", NewInst(cpu.OPSTWU, 0, r1, Imm(0xffc0), r1), "stwu\tr1, -0x40(r1)", cpu.GPR(1), -64},
		{"zero base", NewInst(cpu.OPLWZ, 0, r3, Imm(0x100), r0), "lwz\tr3, 0x100(0)", cpu.RegInvalid, 0x100},
		{"wide zero base", NewInst(cpu.OPLD, 0, x3, Imm(8), x0), "ld\tr3, 8(0)", cpu.RegInvalid, 8},
		{"paired single", NewInst(cpu.OPPSQL, 0, Reg(cpu.FPR(1)), Imm(0xff8), r3, Imm(1), Imm(5)), "psq_l\tf1, -8(r3), 1, 5", cpu.GPR(3), -8},
	}
	for _, tt := range tests {
		res, d := render(cpu.Mode32, tt.inst)
		assert.Equal(t, tt.text, res.String(), tt.name)

		var mems []Operand
		for _, op := range d.List() {
			if op.Type == OpMem {
				mems = append(mems, op)
			}
		}
		if assert.Len(t, mems, 1, tt.name) {
			assert.Equal(t, tt.base, mems[0].Mem.Base, tt.name)
			assert.Equal(t, tt.disp, mems[0].Mem.Disp, tt.name)
		}
		// The memory operand is one record next to the register one.
		assert.Equal(t, OpReg, d.Operands[0].Type, tt.name)
		assert.Equal(t, OpMem, d.Operands[1].Type, tt.name)
	}
}

func TestBranchTargets(t *testing.T) {
	const addr = 0x10000
	for _, raw := range []int64{0, 1, 0x10, 0x7fffff, 0x800000, 0xffffff, 0xfffff0} {
		want := uint32(int32(signExtend(raw, 24)*4) + addr)
		res, d := render(cpu.Mode32, NewInst(cpu.OPB, addr, Imm(raw)))
		assert.Equal(t, formatUint64(uint64(want)), res.Operands, "b %#x", raw)
		assert.Equal(t, int64(want), d.Operands[0].Imm)

		wantAbs := uint32(int32(signExtend(raw, 24) * 4))
		res, _ = render(cpu.Mode32, NewInst(cpu.OPBA, addr, Imm(raw)))
		assert.Equal(t, formatUint64(uint64(wantAbs)), res.Operands, "ba %#x", raw)
	}
}

func TestBranchTargetWidth(t *testing.T) {
	// One word back from zero wraps at the address width.
	res, _ := render(cpu.Mode32, NewInst(cpu.OPB, 0, Imm(0xffffff)))
	assert.Equal(t, "0xfffffffc", res.Operands)
	res, _ = render(cpu.Mode64, NewInst(cpu.OPB, 0, Imm(0xffffff)))
	assert.Equal(t, "0xfffffffffffffffc", res.Operands)
}

func TestBranchToSymbol(t *testing.T) {
	res, _ := render(cpu.Mode32, NewInst(cpu.OPBL, 0, Reg(cpu.LR)))
	assert.Equal(t, "bl\tlr", res.String())
}

func TestPredicateOperands(t *testing.T) {
	tests := []struct {
		pred cpu.Predicate
		cr   Value
		want string
		bc   cpu.BranchCond
	}{
		{cpu.PredLT, cr2, "blt\tcr2, 0x20", cpu.BCLT},
		{cpu.PredGEMinus, cr2, "bge-\tcr2, 0x20", cpu.BCGE},
		{cpu.PredEQPlus, cr0, "beq+\t0x20", cpu.BCEQ},
		{cpu.Predicate(13), cr2, "binvalid-predicate\tcr2, 0x20", cpu.BranchCond(13)},
	}
	for _, tt := range tests {
		res, d := render(cpu.Mode32, NewInst(cpu.OPBCC, 0x10, Imm(int64(tt.pred)), tt.cr, Imm(4)))
		assert.Equal(t, tt.want, res.String())
		assert.Equal(t, tt.bc, d.BC, tt.want)
	}
}

func TestATBitsHint(t *testing.T) {
	bit := Reg(cpu.CRBit(1, cpu.CondEQ))
	res, _ := render(cpu.Mode32, NewInst(cpu.OPGenBCat, 0, Imm(12), Imm(3), bit, Imm(2)))
	assert.Equal(t, "bc+\t0xc, cr1eq, 8", res.String())
	res, _ = render(cpu.Mode32, NewInst(cpu.OPGenBCat, 0, Imm(12), Imm(2), bit, Imm(2)))
	assert.Equal(t, "bc-\t0xc, cr1eq, 8", res.String())
	res, _ = render(cpu.Mode32, NewInst(cpu.OPGenBCat, 0, Imm(4), Imm(3), bit, Imm(2)))
	assert.Equal(t, "bc+\t4, cr1eq, 8", res.String())
}
