package disassembler

import (
	"strings"

	"github.com/Urethramancer/ppc/cpu"
)

// Config is fixed before disassembly begins and shared read-only by every
// render call.
type Config struct {
	// Mode holds the sub-architecture flags.
	Mode cpu.Mode
	// Detail enables the structured operand list.
	Detail bool
	// NoRegName prints registers without their class prefix ("3" for "r3"),
	// as the Linux and AIX assemblers expect.
	NoRegName bool
}

// RegisterTable names registers.
type RegisterTable interface {
	// Name returns the display name of an internal register.
	Name(r cpu.Reg) string
	// Public maps a display name back to the public register identity.
	Public(name string) cpu.Reg
}

// OpcodeTable describes how each opcode is printed when no alias applies.
type OpcodeTable interface {
	// Template returns the operand template for op.
	Template(op cpu.Opcode) (string, bool)
	// IsAbsoluteBranch reports whether op's branch target is an absolute
	// address rather than relative to the instruction.
	IsAbsoluteBranch(op cpu.Opcode) bool
}

// MnemonicTable maps final mnemonics to public identities.
type MnemonicTable interface {
	Insn(mnemonic string) cpu.Insn
	ConditionAlias(mnemonic string) (cpu.BranchCond, bool)
}

// Printer renders decoded instructions. A Printer holds no per-instruction
// state and may be shared between goroutines.
type Printer struct {
	Config
	Registers RegisterTable
	Opcodes   OpcodeTable
	Mnemonics MnemonicTable
}

// New returns a Printer using the built-in tables.
func New(cfg Config) *Printer {
	return &Printer{
		Config:    cfg,
		Registers: defaultRegisters{},
		Opcodes:   defaultOpcodes{},
		Mnemonics: defaultMnemonics{},
	}
}

// Result is one rendered instruction.
type Result struct {
	Mnemonic string
	Operands string
	// ID is the public identity of the final mnemonic.
	ID cpu.Insn
}

func (r Result) String() string {
	if r.Operands == "" {
		return r.Mnemonic
	}
	return r.Mnemonic + "\t" + r.Operands
}

// Print renders inst. When detail capture is enabled and d is not nil, d is
// reset and filled with the structured operands.
//
// Specialised alias rules are tried first, then the generic branch and
// table-driven aliases, and finally the opcode's own template. Whichever
// produced the text, its mnemonic is normalised the same way.
func (p *Printer) Print(inst *Inst, d *Detail) Result {
	c := p.newContext(inst, d)

	ok := c.applyRules()
	if !ok {
		ok = c.expandBranchAlias()
	}
	if !ok {
		ok = c.expandAlias()
	}
	if !ok {
		c.printInstruction()
	}

	mn, ops := splitMnemonic(c.out.String())
	return Result{
		Mnemonic: mn,
		Operands: ops,
		ID:       c.postProcess(mn),
	}
}

// splitMnemonic cuts rendered text at its first tab or space.
func splitMnemonic(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
