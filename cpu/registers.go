package cpu

import "fmt"

// Reg is an internal register identifier. Several internal registers may
// share a display name (the 32- and 64-bit views of a GPR, for instance);
// RegByName always returns the first of them, which is the public identity.
type Reg uint16

// Register layout. Each class is a contiguous block so the number inside the
// class is a subtraction away.
const (
	RegInvalid Reg = 0

	// R0 is the first 32-bit general purpose register.
	R0 Reg = 1
	// X0 is the first 64-bit general purpose register.
	X0 = R0 + 32
	// F0 is the first floating point register.
	F0 = X0 + 32
	// V0 is the first vector register.
	V0 = F0 + 32
	// CR0 is the first condition register field.
	CR0 = V0 + 32

	// Condition register bits are grouped by condition, then by field:
	// cr0eq..cr7eq, cr0gt..cr7gt, cr0lt..cr7lt, cr0un..cr7un.
	CR0EQ = CR0 + 8
	CR0GT = CR0EQ + 8
	CR0LT = CR0GT + 8
	CR0UN = CR0LT + 8

	LR     = CR0UN + 8
	CTR    = LR + 1
	LR8    = CTR + 1
	CTR8   = LR8 + 1
	XER    = CTR8 + 1
	VRSAVE = XER + 1

	regEnd = VRSAVE + 1
)

// CRCond names one of the four bits inside a condition register field.
type CRCond uint8

const (
	CondEQ CRCond = iota
	CondGT
	CondLT
	CondUN
)

var crCondSuffix = [4]string{"eq", "gt", "lt", "un"}

func (c CRCond) String() string {
	if int(c) < len(crCondSuffix) {
		return crCondSuffix[c]
	}
	return "??"
}

// GPR returns the 32-bit general purpose register n.
func GPR(n int) Reg { return R0 + Reg(n&31) }

// GPR64 returns the 64-bit general purpose register n.
func GPR64(n int) Reg { return X0 + Reg(n&31) }

// FPR returns floating point register n.
func FPR(n int) Reg { return F0 + Reg(n&31) }

// VR returns vector register n.
func VR(n int) Reg { return V0 + Reg(n&31) }

// CRField returns condition register field n (cr0-cr7).
func CRField(n int) Reg { return CR0 + Reg(n&7) }

// CRBit returns the bit c of condition register field n.
func CRBit(n int, c CRCond) Reg { return CR0EQ + Reg(c&3)*8 + Reg(n&7) }

// IsGPR reports whether r is a 32- or 64-bit general purpose register.
func (r Reg) IsGPR() bool { return r >= R0 && r < F0 }

// IsZero reports whether r is architectural register zero, which reads as
// the constant 0 when used as a base address.
func (r Reg) IsZero() bool { return r == R0 || r == X0 }

// IsCRField reports whether r is one of cr0-cr7.
func (r Reg) IsCRField() bool { return r >= CR0 && r < CR0EQ }

// IsCRBit reports whether r is a single condition register bit.
func (r Reg) IsCRBit() bool { return r >= CR0EQ && r < LR }

// CRField returns the field number of a condition register or condition
// register bit. The result is meaningless for other registers.
func (r Reg) CRField() int {
	if r.IsCRField() {
		return int(r - CR0)
	}
	return int(r-CR0EQ) & 7
}

// CRCond returns which of eq/gt/lt/un a condition register bit names.
func (r Reg) CRCond() CRCond {
	return CRCond((r - CR0EQ) >> 3)
}

var (
	regNames  [regEnd]string
	regByName map[string]Reg
)

func init() {
	for i := 0; i < 32; i++ {
		regNames[R0+Reg(i)] = fmt.Sprintf("r%d", i)
		regNames[X0+Reg(i)] = fmt.Sprintf("r%d", i)
		regNames[F0+Reg(i)] = fmt.Sprintf("f%d", i)
		regNames[V0+Reg(i)] = fmt.Sprintf("v%d", i)
	}
	for i := 0; i < 8; i++ {
		regNames[CR0+Reg(i)] = fmt.Sprintf("cr%d", i)
		for c := CondEQ; c <= CondUN; c++ {
			regNames[CRBit(i, c)] = fmt.Sprintf("cr%d%s", i, c)
		}
	}
	regNames[LR] = "lr"
	regNames[CTR] = "ctr"
	regNames[LR8] = "lr"
	regNames[CTR8] = "ctr"
	regNames[XER] = "xer"
	regNames[VRSAVE] = "vrsave"

	regByName = make(map[string]Reg, len(regNames))
	for r := Reg(1); r < regEnd; r++ {
		if _, ok := regByName[regNames[r]]; !ok {
			regByName[regNames[r]] = r
		}
	}
}

// RegName returns the assembler name of r, or "" for an unknown register.
func RegName(r Reg) string {
	if r < regEnd {
		return regNames[r]
	}
	return ""
}

// RegByName maps an assembler register name to its public register.
func RegByName(name string) Reg {
	return regByName[name]
}

func (r Reg) String() string {
	if n := RegName(r); n != "" {
		return n
	}
	return fmt.Sprintf("reg(%d)", uint16(r))
}
