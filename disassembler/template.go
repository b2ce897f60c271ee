package disassembler

import "strings"

// PrintMethod selects how an operand placeholder is rendered. The numbering
// is part of the template encoding and must not be reordered.
type PrintMethod uint8

const (
	MethodBranch PrintMethod = iota
	MethodAbsBranch
	MethodOperand
	MethodU1Imm
	MethodU2Imm
	MethodU3Imm
	MethodU4Imm
	MethodS5Imm
	MethodU5Imm
	MethodU6Imm
	MethodU7Imm
	MethodS12Imm
	MethodS16Imm
	MethodU16Imm
	MethodMemRegImm
	MethodPSMemRegImm
	MethodMemRegReg
	MethodCRBitM
	MethodPredicateCC
	MethodPredicatePM
	MethodPredicateReg
	MethodATBitsAsHint
)

// Template encoding. Literal text is copied as is. A '$' starts a
// placeholder: either one byte holding operand index + 1, or escCustom
// followed by operand index + 1 and print method + 1.
const escCustom = 0xff

// arg is a placeholder rendered with the default operand printer.
func arg(i int) string {
	return string([]byte{'$', byte(i + 1)})
}

// call is a placeholder rendered with print method m.
func call(i int, m PrintMethod) string {
	return string([]byte{'$', escCustom, byte(i + 1), byte(m) + 1})
}

// asm joins template pieces.
func asm(parts ...string) string {
	return strings.Join(parts, "")
}

// placeholderLen returns the length of the placeholder starting at tmpl[i],
// or 0 when there is none.
func placeholderLen(tmpl string, i int) int {
	switch {
	case tmpl[i] != '$' || i+1 >= len(tmpl):
		return 0
	case tmpl[i+1] == escCustom && i+3 < len(tmpl):
		return 4
	}
	return 2
}

// splitTemplate cuts an alias template at its first blank outside a
// placeholder, whose index bytes may themselves look like blanks.
func splitTemplate(tmpl string) (string, string) {
	for i := 0; i < len(tmpl); i++ {
		if n := placeholderLen(tmpl, i); n > 0 {
			i += n - 1
			continue
		}
		if tmpl[i] == ' ' || tmpl[i] == '\t' {
			return tmpl[:i], tmpl[i+1:]
		}
	}
	return tmpl, ""
}

// expand renders tmpl into the output.
func (c *renderContext) expand(tmpl string) {
	for i := 0; i < len(tmpl); i++ {
		switch placeholderLen(tmpl, i) {
		case 4:
			c.printMethod(int(tmpl[i+2])-1, PrintMethod(tmpl[i+3]-1))
			i += 3
		case 2:
			c.printOperand(int(tmpl[i+1]) - 1)
			i++
		default:
			c.out.WriteByte(tmpl[i])
		}
	}
}

// printMethod dispatches one custom placeholder.
func (c *renderContext) printMethod(i int, m PrintMethod) {
	switch m {
	case MethodBranch:
		c.printBranchOperand(i)
	case MethodAbsBranch:
		c.printAbsBranchOperand(i)
	case MethodOperand:
		c.printOperand(i)
	case MethodU1Imm:
		c.printUImm(i, 1)
	case MethodU2Imm:
		c.printUImm(i, 2)
	case MethodU3Imm:
		c.printUImm(i, 3)
	case MethodU4Imm:
		c.printUImm(i, 4)
	case MethodS5Imm:
		c.printSImm(i, 5)
	case MethodU5Imm:
		c.printUImm(i, 5)
	case MethodU6Imm:
		c.printUImm(i, 6)
	case MethodU7Imm:
		c.printUImm(i, 7)
	case MethodS12Imm:
		c.printSImm(i, 12)
	case MethodS16Imm:
		c.printSImm(i, 16)
	case MethodU16Imm:
		c.printUImm(i, 16)
	case MethodMemRegImm:
		c.printMemRegImm(i)
	case MethodPSMemRegImm:
		c.printPSMemRegImm(i)
	case MethodMemRegReg:
		c.printMemRegReg(i)
	case MethodCRBitM:
		c.printCRBitM(i)
	case MethodPredicateCC:
		c.printPredicateCC(i)
	case MethodPredicatePM:
		c.printPredicatePM(i)
	case MethodPredicateReg:
		c.printPredicateReg(i)
	case MethodATBitsAsHint:
		c.printATBitsAsHint(i)
	}
}
