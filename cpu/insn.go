package cpu

// Insn is the public instruction identifier reported for a rendered
// instruction. It is keyed by mnemonic, so every alias the printer can
// produce (slwi, mr, bdnz, ...) has an identity of its own.
type Insn uint16

// InsnInvalid is reported for mnemonics with no public identity.
const InsnInvalid Insn = 0

// baseMnemonics lists the mnemonics that are not part of the generated
// conditional branch families, without '.', '+' or '-' suffixes.
var baseMnemonics = []string{
	"add", "addi", "addis", "sub", "subf", "neg", "mullw", "divw",
	"and", "andi", "or", "ori", "oris", "xor", "nor", "not", "mr",
	"li", "lis", "nop",
	"cmpw", "cmpwi", "cmplw", "cmplwi", "cmpd", "cmpdi",
	"rlwinm", "rldicr", "rldicl", "slw", "srw", "srawi",
	"slwi", "srwi", "sldi", "srdi", "rotlwi", "clrlwi", "rotldi", "clrldi",
	"lbz", "lhz", "lwz", "ld", "stb", "sth", "stw", "stwu", "std", "stdu",
	"lwzx", "stwx", "lfd", "stfd", "psq_l", "psq_st",
	"b", "ba", "bl", "bla",
	"bc", "bca", "bcl", "bcla", "bclr", "bclrl", "bcctr", "bcctrl",
	"blr", "blrl", "bctr", "bctrl",
	"mtspr", "mfspr", "mtlr", "mflr", "mtctr", "mfctr", "mtxer", "mfxer",
	"mfcr", "mtcrf", "mtfsfi",
	"dcbt", "dcbtst", "dcbtt", "dcbtstt", "dcbf", "dcbfl", "dcbflp",
	"dcbz", "dcbst", "icbi",
	"sync", "lwsync", "ptesync", "isync", "sc", "tw", "trap",
	"vadduwm", "vspltisw",
}

// Branch mnemonics are "b" + test + target suffix.
var (
	branchCtrTests  = []string{"dnzf", "dzf", "dnzt", "dzt", "dnz", "dz"}
	branchTargets   = []string{"", "a", "l", "la", "lr", "lrl", "ctr", "ctrl"}
	branchCondTests = []struct {
		name string
		cond BranchCond
	}{
		{"lt", BCLT}, {"le", BCLE}, {"eq", BCEQ}, {"ge", BCGE}, {"gt", BCGT},
		{"ne", BCNE}, {"un", BCUN}, {"nu", BCNU}, {"so", BCSO}, {"ns", BCNS},
	}
)

var (
	insnNames    = []string{""}
	insnByName   = map[string]Insn{}
	condByBranch = map[string]BranchCond{}
)

func addInsn(name string) {
	if _, ok := insnByName[name]; ok {
		return
	}
	insnByName[name] = Insn(len(insnNames))
	insnNames = append(insnNames, name)
}

func init() {
	for _, m := range baseMnemonics {
		addInsn(m)
	}
	for _, t := range branchCtrTests {
		for _, s := range branchTargets {
			addInsn("b" + t + s)
		}
	}
	for _, c := range branchCondTests {
		for _, s := range branchTargets {
			m := "b" + c.name + s
			addInsn(m)
			condByBranch[m] = c.cond
		}
	}
}

// LookupInsn maps a mnemonic, already stripped of any '.', '+' or '-'
// suffix, to its public identifier.
func LookupInsn(mnemonic string) Insn {
	return insnByName[mnemonic]
}

// BranchCondAlias returns the condition a conditional branch mnemonic
// tests, for mnemonics such as "bne" or "bgelr".
func BranchCondAlias(mnemonic string) (BranchCond, bool) {
	c, ok := condByBranch[mnemonic]
	return c, ok
}

func (i Insn) String() string {
	if int(i) < len(insnNames) && i != InsnInvalid {
		return insnNames[i]
	}
	return "invalid"
}
