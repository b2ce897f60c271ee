package disassembler

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urethramancer/ppc/cpu"
)

const be32 = cpu.Mode32 | cpu.ModeBigEndian

func program(words ...uint32) []byte {
	return cpu.WordsToBytes(words, be32)
}

func TestDisassembleListing(t *testing.T) {
	code := program(
		0x48000011, // bl    0x1010
		0x2c030000, // cmpwi r3, 0
		0x4182fffc, // beq   0x1004
		0x4e800020, // blr
		0x38600001, // li    r3, 1
		0x4e800020, // blr
	)
	code = append(code, "Hello!\x00\x00"...)

	out, err := Disassemble(code, Options{Config: Config{Mode: be32}, Origin: 0x1000})
	require.NoError(t, err)

	want := "    bl       sub_00001010\n" +
		"loc_00001004:\n" +
		"    cmpwi    r3, 0\n" +
		"    beq      loc_00001004\n" +
		"    blr\n" +
		"sub_00001010:\n" +
		"    li       r3, 1\n" +
		"    blr\n" +
		"string1: .asciz  \"Hello!\"\n" +
		"    .byte   0x00\n"
	assert.Equal(t, want, out)
}

func TestDisassembleLinear(t *testing.T) {
	code := program(0x4e800020, 0x38600001)

	out, err := Disassemble(code, Options{Config: Config{Mode: be32}})
	require.NoError(t, err)
	assert.Equal(t, "    blr\n    .byte   0x38,0x60\n    .byte   0x00,0x01\n", out)

	out, err = Disassemble(code, Options{Config: Config{Mode: be32}, Linear: true})
	require.NoError(t, err)
	assert.Equal(t, "    blr\n    li       r3, 1\n", out)
}

func TestDisassembleAddresses(t *testing.T) {
	code := program(0x60000000, 0x4e800020)
	out, err := Disassemble(code, Options{Config: Config{Mode: be32}, Origin: 0x100, Addresses: true})
	require.NoError(t, err)
	assert.Equal(t, "00000100:  60000000    nop\n00000104:  4e800020    blr\n", out)
}

func TestDisassembleEdges(t *testing.T) {
	out, err := Disassemble(nil, Options{Config: Config{Mode: be32}})
	require.NoError(t, err)
	assert.Empty(t, out)

	// Bytes past the last whole word are data.
	code := append(program(0x4e800020), 'A', 'B')
	out, err = Disassemble(code, Options{Config: Config{Mode: be32}})
	require.NoError(t, err)
	assert.Equal(t, "    blr\n    .byte   0x41,0x42\n", out)
}

func TestSweepLogsUndecodable(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lines := Sweep(program(0x7c6307b4, 0x60000000), Options{Config: Config{Mode: be32}, Logger: log})
	require.Len(t, lines, 2)
	assert.ErrorIs(t, lines[0].Err, ErrUnsupported)
	assert.Nil(t, lines[0].Inst)
	assert.Equal(t, uint32(0x7c6307b4), lines[0].Word)
	assert.NoError(t, lines[1].Err)
	assert.Equal(t, "nop", lines[1].Result.Mnemonic)
	assert.Equal(t, uint64(4), lines[1].Address)
	assert.Contains(t, buf.String(), "undecodable word")
}

func TestData(t *testing.T) {
	n := 1
	tests := []struct {
		name string
		data []byte
		base uint64
		want string
	}{
		{"tag", []byte("PPC!"), 0, "string1: .ascii  \"PPC!\"\n"},
		{"unaligned tag", []byte("PPC!"), 2, "    .byte   0x50,0x50,0x43,0x21\n"},
		{"short text", []byte("ab\x00"), 0, "    .byte   0x61,0x62\n    .byte   0x00\n"},
		{"string", []byte("text\x00"), 0, "string2: .asciz  \"text\"\n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, analyzeAndFormatData(tt.data, tt.base, &n), tt.name)
	}
	assert.Equal(t, 3, n)

	long := bytes.Repeat([]byte{0xff}, 17)
	out := formatHexBytes(long)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte(".byte")))
}
