package disassembler

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Urethramancer/ppc/cpu"
)

// LabelType defines the context of a label.
type LabelType int

const (
	// JumpTarget is for a plain or conditional branch.
	JumpTarget LabelType = iota
	// SubroutineEntry is for a bl or bla target.
	SubroutineEntry
)

// Options controls a listing.
type Options struct {
	Config
	// Origin is the address of the first byte of code.
	Origin uint64
	// Linear marks every decodable word as code instead of following
	// control flow from Origin.
	Linear bool
	// Addresses prefixes each instruction with its address and encoding.
	Addresses bool
	// Logger receives decode failures. It may be nil.
	Logger *slog.Logger
}

// Line is a single decoded word.
type Line struct {
	Address uint64
	Word    uint32
	Inst    *Inst
	Result  Result
	Detail  Detail
	// Err is set when the word could not be decoded.
	Err error
	// IsCode marks the line as reachable code.
	IsCode bool
}

// Sweep decodes every word of code in order.
func Sweep(code []byte, opts Options) []*Line {
	p := New(opts.Config)
	words := cpu.BytesToWords(code, opts.Mode)
	lines := make([]*Line, 0, len(words))
	for i, w := range words {
		pc := i * 4
		l := &Line{
			Address: opts.Origin + uint64(pc),
			Word:    w,
		}
		inst, _, err := Decode(code[pc:pc+4], l.Address, opts.Mode)
		if err != nil {
			l.Err = err
			if opts.Logger != nil {
				opts.Logger.Debug("undecodable word", "addr", fmt.Sprintf("%#x", l.Address), "word", fmt.Sprintf("%#08x", l.Word), "err", err)
			}
		} else {
			l.Inst = inst
			l.Result = p.Print(inst, &l.Detail)
		}
		lines = append(lines, l)
	}
	return lines
}

// Disassemble decodes code and returns it as a formatted listing. Words
// that are never reached from Origin are printed as data.
func Disassemble(code []byte, opts Options) (string, error) {
	if len(code) == 0 {
		return "", nil
	}
	p := New(opts.Config)

	// --- STAGE 1: Linear Sweep ---
	lines := Sweep(code, opts)
	byAddr := make(map[uint64]*Line, len(lines))
	for _, l := range lines {
		byAddr[l.Address] = l
	}

	// --- STAGE 2: Control Flow Analysis ---
	labelTargets := make(map[uint64]LabelType)
	q := newQueue()
	if opts.Linear {
		for _, l := range lines {
			l.IsCode = l.Err == nil
		}
	} else {
		q.push(opts.Origin)
	}
	for {
		addr, ok := q.pop()
		if !ok {
			break
		}
		l, exists := byAddr[addr]
		if !exists || l.IsCode || l.Err != nil {
			continue
		}
		l.IsCode = true
		if !isTerminal(l.Inst.Opcode) {
			q.push(addr + 4)
		}
		if target, ok := p.BranchTarget(l.Inst); ok {
			q.push(target)
		}
	}
	for _, l := range lines {
		if !l.IsCode {
			continue
		}
		target, ok := p.BranchTarget(l.Inst)
		if !ok {
			continue
		}
		if isCall(l.Inst.Opcode) {
			labelTargets[target] = SubroutineEntry
		} else if _, exists := labelTargets[target]; !exists {
			labelTargets[target] = JumpTarget
		}
	}

	// --- STAGE 3: Render Final Output ---
	var out strings.Builder
	stringCounter := 1
	for i := 0; i < len(lines); {
		l := lines[i]
		if !l.IsCode {
			end := i
			for end < len(lines) && !lines[end].IsCode {
				end++
			}
			start := int(l.Address - opts.Origin)
			stop := int(lines[end-1].Address-opts.Origin) + 4
			out.WriteString(analyzeAndFormatData(code[start:stop], l.Address, &stringCounter))
			i = end
			continue
		}

		if labelType, exists := labelTargets[l.Address]; exists {
			fmt.Fprintf(&out, "%s:\n", labelName(l.Address, labelType))
		}

		operands := l.Result.Operands
		if target, ok := p.BranchTarget(l.Inst); ok {
			if labelType, exists := labelTargets[target]; exists {
				operands = replaceTarget(operands, target, labelName(target, labelType))
			}
		}
		if opts.Addresses {
			fmt.Fprintf(&out, "%08x:  %08x", l.Address, l.Word)
		}
		if operands != "" {
			fmt.Fprintf(&out, "    %-8s %s\n", l.Result.Mnemonic, operands)
		} else {
			fmt.Fprintf(&out, "    %s\n", l.Result.Mnemonic)
		}
		i++
	}

	// Trailing bytes that do not fill a word.
	if tail := len(code) % 4; tail != 0 {
		base := opts.Origin + uint64(len(code)-tail)
		out.WriteString(analyzeAndFormatData(code[len(code)-tail:], base, &stringCounter))
	}
	return out.String(), nil
}

// isTerminal checks if an instruction unconditionally stops linear execution.
func isTerminal(op cpu.Opcode) bool {
	switch op {
	case cpu.OPB, cpu.OPBA, cpu.OPBLR, cpu.OPBCTR:
		return true
	}
	return false
}

// isCall reports whether op branches and links.
func isCall(op cpu.Opcode) bool {
	return op == cpu.OPBL || op == cpu.OPBLA
}

// replaceTarget swaps the printed target, always the last operand, for a
// label.
func replaceTarget(operands string, target uint64, label string) string {
	t := formatUint64(target)
	if !strings.HasSuffix(operands, t) {
		return operands
	}
	return operands[:len(operands)-len(t)] + label
}

// addrQueue is a simple worklist queue for addresses to decode.
type addrQueue struct {
	items []uint64
	seen  map[uint64]bool
}

func newQueue() *addrQueue {
	return &addrQueue{seen: make(map[uint64]bool)}
}

func (q *addrQueue) push(addr uint64) {
	addr &^= 3 // Align to word boundary
	if !q.seen[addr] {
		q.items = append(q.items, addr)
		q.seen[addr] = true
	}
}

func (q *addrQueue) pop() (uint64, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	a := q.items[0]
	q.items = q.items[1:]
	return a, true
}

func labelName(addr uint64, labelType LabelType) string {
	prefix := "loc_"
	if labelType == SubroutineEntry {
		prefix = "sub_"
	}
	return fmt.Sprintf("%s%08X", prefix, addr)
}
