package cpu

import "strings"

// Mode is a set of sub-architecture flags fixed before disassembly begins.
type Mode uint32

const (
	// Mode32 selects 32-bit addressing.
	Mode32 Mode = 1 << iota
	// Mode64 selects 64-bit addressing.
	Mode64
	// ModeBigEndian reads instruction words most significant byte first.
	ModeBigEndian
	// ModeBookE selects the embedded (Book E) operand syntax.
	ModeBookE
	// ModePS enables the paired-single instructions.
	ModePS
)

// Has reports whether all flags in f are set in m.
func (m Mode) Has(f Mode) bool { return m&f == f }

// AddressMask returns the mask that truncates an address to the mode's
// address width.
func (m Mode) AddressMask() uint64 {
	if m.Has(Mode32) && !m.Has(Mode64) {
		return 0xffffffff
	}
	return ^uint64(0)
}

func (m Mode) String() string {
	var parts []string
	names := []struct {
		f Mode
		s string
	}{
		{Mode32, "32"},
		{Mode64, "64"},
		{ModeBigEndian, "be"},
		{ModeBookE, "booke"},
		{ModePS, "ps"},
	}
	for _, n := range names {
		if m.Has(n.f) {
			parts = append(parts, n.s)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
