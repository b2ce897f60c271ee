package disassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urethramancer/ppc/cpu"
)

func TestDecodeAndPrint(t *testing.T) {
	tests := []struct {
		word uint32
		addr uint64
		want string
	}{
		{0x7c641b78, 0, "mr\tr4, r3"},
		{0x38600001, 0, "li\tr3, 1"},
		{0x60000000, 0, "nop"},
		{0x4e800020, 0, "blr"},
		{0x4e800420, 0, "bctr"},
		{0x5464103a, 0, "slwi\tr4, r3, 2"},
		{0x80610008, 0, "lwz\tr3, 8(r1)"},
		{0x9421fff0, 0, "stwu\tr1, -0x10(r1)"},
		{0x2c030000, 0, "cmpwi\tr3, 0"},
		{0x4bfffffc, 0x100, "b\t0xfc"},
		{0x48000011, 0x100, "bl\t0x110"},
		{0x4182000c, 0, "beq\t0xc"},
		{0x4182fffc, 0x1008, "beq\t0x1004"},
		{0x4200fff8, 0x100, "bdnz\t0xf8"},
		{0x7c0802a6, 0, "mflr\tr0"},
		{0x7c0803a6, 0, "mtlr\tr0"},
	}
	p := New(Config{Mode: cpu.Mode32 | cpu.ModeBigEndian})
	for _, tt := range tests {
		src := cpu.WordsToBytes([]uint32{tt.word}, cpu.ModeBigEndian)
		inst, n, err := Decode(src, tt.addr, cpu.Mode32|cpu.ModeBigEndian)
		require.NoError(t, err, "%#08x", tt.word)
		assert.Equal(t, 4, n)
		if got := p.Print(inst, nil).String(); got != tt.want {
			t.Errorf("%#08x: got %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestDecodeLittleEndian(t *testing.T) {
	src := []byte{0x01, 0x00, 0x60, 0x38}
	inst, _, err := Decode(src, 0, cpu.Mode32)
	require.NoError(t, err)
	assert.Equal(t, "li\tr3, 1", New(Config{Mode: cpu.Mode32}).Print(inst, nil).String())
}

func TestDecode64(t *testing.T) {
	mode := cpu.Mode64 | cpu.ModeBigEndian
	// ld r3, 16(r1)
	inst, _, err := Decode(cpu.WordsToBytes([]uint32{0xe8610010}, mode), 0, mode)
	require.NoError(t, err)
	assert.Equal(t, cpu.OPLD, inst.Opcode)
	assert.Equal(t, cpu.GPR64(3), inst.Operands[0].Reg)

	// or r4, r3, r3 widens to the doubleword form.
	inst, _, err = Decode(cpu.WordsToBytes([]uint32{0x7c641b78}, mode), 0, mode)
	require.NoError(t, err)
	assert.Equal(t, cpu.OPOR8, inst.Opcode)
	assert.Equal(t, "mr\tr4, r3", New(Config{Mode: mode}).Print(inst, nil).String())
}

func TestDecodeBranchForms(t *testing.T) {
	tests := []struct {
		word uint32
		op   cpu.Opcode
	}{
		{0x4e800020, cpu.OPBLR},
		{0x4e800021, cpu.OPBLRL},
		{0x4e800420, cpu.OPBCTR},
		{0x4e800421, cpu.OPBCTRL},
		{0x42000008, cpu.OPBDNZ},
		{0x43200008, cpu.OPBDNZPlus},
		{0x42400008, cpu.OPBDZ},
		{0x42000009, cpu.OPBDNZL},
		{0x4e000020, cpu.OPBDNZLR},
		{0x41820008, cpu.OPBCC},
		{0x4d820020, cpu.OPBCCLR},
		{0x4c820420, cpu.OPBCCCTR},
		{0x41820009, cpu.OPGenBCL},
		{0x4182000a, cpu.OPGenBCA},
		{0x41000008, cpu.OPGenBC},
	}
	mode := cpu.Mode32 | cpu.ModeBigEndian
	for _, tt := range tests {
		inst, _, err := Decode(cpu.WordsToBytes([]uint32{tt.word}, mode), 0, mode)
		require.NoError(t, err, "%#08x", tt.word)
		assert.Equal(t, tt.op, inst.Opcode, "%#08x", tt.word)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := Decode([]byte{0x60, 0x00}, 0, cpu.Mode32|cpu.ModeBigEndian)
	assert.Error(t, err)

	// extsw has no opcode of its own here.
	_, n, err := Decode([]byte{0x7c, 0x63, 0x07, 0xb4}, 0, cpu.Mode32|cpu.ModeBigEndian)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, 4, n)
}
