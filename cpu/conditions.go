package cpu

// BranchCond is the condition a conditional branch tests. The values match
// the predicate encoding: the condition register bit in the high bits and
// the BO field in the low five.
type BranchCond uint16

const (
	BCInvalid BranchCond = 0
	BCLT      BranchCond = (0 << 5) | 12
	BCLE      BranchCond = (1 << 5) | 4
	BCEQ      BranchCond = (2 << 5) | 12
	BCGE      BranchCond = (0 << 5) | 4
	BCGT      BranchCond = (1 << 5) | 12
	BCNE      BranchCond = (2 << 5) | 4
	BCUN      BranchCond = (3 << 5) | 12
	BCNU      BranchCond = (3 << 5) | 4
	// SO and NS have no predicate of their own; they come from the branch
	// mnemonics that test the summary overflow bit.
	BCSO BranchCond = (4 << 5) | 12
	BCNS BranchCond = (4 << 5) | 4
)

var branchCondNames = map[BranchCond]string{
	BCLT: "lt",
	BCLE: "le",
	BCEQ: "eq",
	BCGE: "ge",
	BCGT: "gt",
	BCNE: "ne",
	BCUN: "un",
	BCNU: "nu",
	BCSO: "so",
	BCNS: "ns",
}

func (c BranchCond) String() string {
	if n, ok := branchCondNames[c]; ok {
		return n
	}
	return "invalid"
}

// Predicate is the condition operand carried by the predicated branch
// forms. It is a BranchCond optionally carrying a static prediction hint
// in its low bits.
type Predicate uint16

const (
	PredLT Predicate = Predicate(BCLT)
	PredLE Predicate = Predicate(BCLE)
	PredEQ Predicate = Predicate(BCEQ)
	PredGE Predicate = Predicate(BCGE)
	PredGT Predicate = Predicate(BCGT)
	PredNE Predicate = Predicate(BCNE)
	PredUN Predicate = Predicate(BCUN)
	PredNU Predicate = Predicate(BCNU)

	PredLTMinus Predicate = (0 << 5) | 14
	PredLEMinus Predicate = (1 << 5) | 6
	PredEQMinus Predicate = (2 << 5) | 14
	PredGEMinus Predicate = (0 << 5) | 6
	PredGTMinus Predicate = (1 << 5) | 14
	PredNEMinus Predicate = (2 << 5) | 6
	PredUNMinus Predicate = (3 << 5) | 14
	PredNUMinus Predicate = (3 << 5) | 6

	PredLTPlus Predicate = (0 << 5) | 15
	PredLEPlus Predicate = (1 << 5) | 7
	PredEQPlus Predicate = (2 << 5) | 15
	PredGEPlus Predicate = (0 << 5) | 7
	PredGTPlus Predicate = (1 << 5) | 15
	PredNEPlus Predicate = (2 << 5) | 7
	PredUNPlus Predicate = (3 << 5) | 15
	PredNUPlus Predicate = (3 << 5) | 7

	// Bit predicates never reach the printer from a valid decode.
	PredBitSet   Predicate = 1024
	PredBitUnset Predicate = 1025
)

// hint returns the prediction carried by p and whether p is a known
// condition predicate at all.
func (p Predicate) hint() (BranchHint, bool) {
	if p>>5 > 3 {
		return BHInvalid, false
	}
	switch p & 0x1f {
	case 12, 4:
		return BHInvalid, true
	case 14, 6:
		return BHMinus, true
	case 15, 7:
		return BHPlus, true
	}
	return BHInvalid, false
}

// Valid reports whether p is one of the condition predicates.
func (p Predicate) Valid() bool {
	_, ok := p.hint()
	return ok
}

// Hint returns the static prediction encoded in p.
func (p Predicate) Hint() BranchHint {
	h, _ := p.hint()
	return h
}

// Cond strips the prediction hint from p. Values that are not condition
// predicates are returned unchanged.
func (p Predicate) Cond() BranchCond {
	if h, ok := p.hint(); ok && h != BHInvalid {
		return BranchCond(p &^ 3)
	}
	return BranchCond(p)
}

// BranchHint is a static branch prediction.
type BranchHint uint8

const (
	BHInvalid BranchHint = iota
	// BHPlus marks a branch as likely taken.
	BHPlus
	// BHMinus marks a branch as likely not taken.
	BHMinus
)

func (h BranchHint) String() string {
	switch h {
	case BHPlus:
		return "+"
	case BHMinus:
		return "-"
	}
	return ""
}
