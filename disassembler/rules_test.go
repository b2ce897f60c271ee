package disassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Urethramancer/ppc/cpu"
)

func TestShiftRules(t *testing.T) {
	tests := []struct {
		name string
		mode cpu.Mode
		inst *Inst
		want string
		n    int64
	}{
		{"slwi", cpu.Mode32, NewInst(cpu.OPRLWINM, 0, r3, r4, Imm(2), Imm(0), Imm(29)), "slwi\tr3, r4, 2", 2},
		{"srwi", cpu.Mode32, NewInst(cpu.OPRLWINM, 0, r3, r4, Imm(30), Imm(2), Imm(31)), "srwi\tr3, r4, 2", 2},
		{"slwi 31", cpu.Mode32, NewInst(cpu.OPRLWINM, 0, r3, r4, Imm(31), Imm(0), Imm(0)), "slwi\tr3, r4, 0x1f", 31},
		{"sldi", cpu.Mode64, NewInst(cpu.OPRLDICR, 0, x3, Reg(cpu.GPR64(4)), Imm(4), Imm(59)), "sldi\tr3, r4, 4", 4},
	}
	for _, tt := range tests {
		res, d := render(tt.mode, tt.inst)
		assert.Equal(t, tt.want, res.String(), tt.name)
		if assert.Equal(t, uint8(3), d.OpCount, tt.name) {
			assert.Equal(t, OpImm, d.Operands[2].Type, tt.name)
			assert.Equal(t, tt.n, d.Operands[2].Imm, tt.name)
		}
		assert.Equal(t, cpu.LookupInsn(tt.name[:4]), res.ID, tt.name)
	}

	for sh := int64(0); sh <= 31; sh++ {
		res, d := render(cpu.Mode32, NewInst(cpu.OPRLWINM, 0, r3, r4, Imm(sh), Imm(0), Imm(31-sh)))
		assert.Equal(t, "slwi", res.Mnemonic, "sh=%d", sh)
		assert.Equal(t, "slwi\tr3, r4, "+formatUint32(uint32(sh)), res.String(), "sh=%d", sh)
		assert.Equal(t, cpu.LookupInsn("slwi"), res.ID, "sh=%d", sh)
		var imms []Operand
		for _, o := range d.List() {
			if o.Type == OpImm {
				imms = append(imms, o)
			}
		}
		if assert.Len(t, imms, 1, "sh=%d", sh) {
			assert.Equal(t, sh, imms[0].Imm, "sh=%d", sh)
		}
	}

	// Masks that are not a plain shift keep the rotate mnemonic.
	res, _ := render(cpu.Mode64, NewInst(cpu.OPRLDICR, 0, x3, x3, Imm(4), Imm(58)))
	assert.Equal(t, "rldicr\tr3, r3, 4, 0x3a", res.String())
}

func TestMoveRegister(t *testing.T) {
	res, d := render(cpu.Mode32, NewInst(cpu.OPOR, 0, r4, r3, r3))
	assert.Equal(t, "mr\tr4, r3", res.String())
	assert.Equal(t, cpu.LookupInsn("mr"), res.ID)
	assert.Equal(t, []Operand{{Type: OpReg, Reg: cpu.GPR(4)}, {Type: OpReg, Reg: cpu.GPR(3)}}, d.List())

	res, _ = render(cpu.Mode64, NewInst(cpu.OPOR8, 0, Reg(cpu.GPR64(4)), x3, x3))
	assert.Equal(t, "mr\tr4, r3", res.String())

	res, _ = render(cpu.Mode32, NewInst(cpu.OPOR, 0, r4, r3, r5))
	assert.Equal(t, "or\tr4, r3, r5", res.String())
}

func TestDataTouch(t *testing.T) {
	tests := []struct {
		op    cpu.Opcode
		th    int64
		booke bool
		want  string
	}{
		{cpu.OPDCBT, 0, false, "dcbt\tr3, r4"},
		{cpu.OPDCBT, 0, true, "dcbt\tr3, r4"},
		{cpu.OPDCBT, 16, false, "dcbtt\tr3, r4"},
		{cpu.OPDCBT, 16, true, "dcbtt\tr3, r4"},
		{cpu.OPDCBT, 8, false, "dcbt\tr3, r4, 8"},
		{cpu.OPDCBT, 8, true, "dcbt\t8, r3, r4"},
		{cpu.OPDCBTST, 0, false, "dcbtst\tr3, r4"},
		{cpu.OPDCBTST, 16, true, "dcbtstt\tr3, r4"},
		{cpu.OPDCBTST, 10, false, "dcbtst\tr3, r4, 0xa"},
		{cpu.OPDCBTST, 10, true, "dcbtst\t0xa, r3, r4"},
	}
	for _, tt := range tests {
		mode := cpu.Mode32
		if tt.booke {
			mode |= cpu.ModeBookE
		}
		res, d := render(mode, NewInst(tt.op, 0, Imm(tt.th), r3, r4))
		assert.Equal(t, tt.want, res.String())

		want := uint8(2)
		if tt.th != 0 && tt.th != 16 {
			want = 3
		}
		assert.Equal(t, want, d.OpCount, tt.want)
		assert.NotEqual(t, cpu.InsnInvalid, res.ID, tt.want)
	}
}

func TestDataFlush(t *testing.T) {
	tests := []struct {
		l    int64
		want string
	}{
		{0, "dcbf\tr3, r4"},
		{1, "dcbfl\tr3, r4"},
		{3, "dcbflp\tr3, r4"},
		{2, "dcbf\tr3, r4, 2"},
	}
	for _, tt := range tests {
		res, _ := render(cpu.Mode32, NewInst(cpu.OPDCBF, 0, Imm(tt.l), r3, r4))
		assert.Equal(t, tt.want, res.String())
	}
}
