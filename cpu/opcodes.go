package cpu

import "fmt"

// Opcode identifies a decoded instruction form. It covers the canonical
// encodings plus the generic forms the decoder synthesizes to stand for a
// whole family (the OPGen* conditional branches).
type Opcode uint16

// Integer arithmetic and logic.
const (
	OPInvalid Opcode = iota

	OPADD
	OPADDRc // add.
	OPADD8
	OPADDI
	OPADDI8
	OPADDIS
	OPSUBF
	OPSUBFRc
	OPNEG
	OPMULLW
	OPDIVW
	OPAND
	OPANDRc
	OPOR
	OPORRc
	OPOR8
	OPXOR
	OPNOR
	OPORI
	OPORIS
	OPANDIRc
	OPCMPW
	OPCMPWI
	OPCMPLW
	OPCMPLWI
	OPCMPD
	OPCMPDI

	// Rotates and shifts
	OPRLWINM
	OPRLWINMRc
	OPRLDICR
	OPRLDICR32
	OPRLDICL
	OPSLW
	OPSRW
	OPSRAWI

	// Loads and stores
	OPLBZ
	OPLHZ
	OPLWZ
	OPLD
	OPSTB
	OPSTH
	OPSTW
	OPSTWU
	OPSTD
	OPSTDU
	OPLWZX
	OPSTWX
	OPLFD
	OPSTFD
	OPPSQL
	OPPSQST

	// Unconditional branches
	OPB
	OPBA
	OPBL
	OPBLA

	// Generic conditional branches: bc with any BO/BI combination.
	OPGenBC
	OPGenBCA
	OPGenBCL
	OPGenBCLA
	OPGenBCLR
	OPGenBCLRL
	OPGenBCCTR
	OPGenBCCTRL
	OPGenBCat

	// Predicated conditional branches
	OPBCC
	OPBCCLR
	OPBCCCTR

	// Decrement-CTR branches. OPBDNZ..OPBDZLRLPlus must stay contiguous.
	OPBDNZ
	OPBDNZMinus
	OPBDNZPlus
	OPBDNZA
	OPBDNZAMinus
	OPBDNZAPlus
	OPBDNZL
	OPBDNZLMinus
	OPBDNZLPlus
	OPBDNZLA
	OPBDNZLAMinus
	OPBDNZLAPlus
	OPBDNZLR
	OPBDNZLRMinus
	OPBDNZLRPlus
	OPBDNZLRL
	OPBDNZLRLMinus
	OPBDNZLRLPlus
	OPBDZ
	OPBDZMinus
	OPBDZPlus
	OPBDZA
	OPBDZAMinus
	OPBDZAPlus
	OPBDZL
	OPBDZLMinus
	OPBDZLPlus
	OPBDZLA
	OPBDZLAMinus
	OPBDZLAPlus
	OPBDZLR
	OPBDZLRMinus
	OPBDZLRPlus
	OPBDZLRL
	OPBDZLRLMinus
	OPBDZLRLPlus

	OPBLR
	OPBLRL
	OPBCTR
	OPBCTRL

	// Special purpose and condition registers
	OPMTSPR
	OPMFSPR
	OPMTLR
	OPMFLR
	OPMTCTR
	OPMFCTR
	OPMFCR
	OPMTCRF
	OPMTFSFI

	// Cache management and synchronisation
	OPDCBT
	OPDCBTST
	OPDCBF
	OPDCBZ
	OPDCBST
	OPICBI
	OPSYNC
	OPISYNC
	OPSC
	OPTW

	// Vector
	OPVADDUWM
	OPVSPLTISW

	opEnd
)

// IsCTRBranch reports whether op is one of the bdnz/bdz forms.
func (op Opcode) IsCTRBranch() bool {
	return op >= OPBDNZ && op <= OPBDZLRLPlus
}

// IsGenericBranch reports whether op is one of the generic bc forms that
// carry a displacement (bc, bca, bcl, bcla).
func (op Opcode) IsGenericBranch() bool {
	return op >= OPGenBC && op <= OPGenBCLA
}

var opNames = [opEnd]string{
	OPADD: "ADD", OPADDRc: "ADDRc", OPADD8: "ADD8", OPADDI: "ADDI", OPADDI8: "ADDI8",
	OPADDIS: "ADDIS", OPSUBF: "SUBF", OPSUBFRc: "SUBFRc", OPNEG: "NEG",
	OPMULLW: "MULLW", OPDIVW: "DIVW", OPAND: "AND", OPANDRc: "ANDRc",
	OPOR: "OR", OPORRc: "ORRc", OPOR8: "OR8", OPXOR: "XOR", OPNOR: "NOR",
	OPORI: "ORI", OPORIS: "ORIS", OPANDIRc: "ANDIRc",
	OPCMPW: "CMPW", OPCMPWI: "CMPWI", OPCMPLW: "CMPLW", OPCMPLWI: "CMPLWI",
	OPCMPD: "CMPD", OPCMPDI: "CMPDI",
	OPRLWINM: "RLWINM", OPRLWINMRc: "RLWINMRc", OPRLDICR: "RLDICR",
	OPRLDICR32: "RLDICR32", OPRLDICL: "RLDICL", OPSLW: "SLW", OPSRW: "SRW",
	OPSRAWI: "SRAWI",
	OPLBZ: "LBZ", OPLHZ: "LHZ", OPLWZ: "LWZ", OPLD: "LD", OPSTB: "STB",
	OPSTH: "STH", OPSTW: "STW", OPSTWU: "STWU", OPSTD: "STD", OPSTDU: "STDU",
	OPLWZX: "LWZX", OPSTWX: "STWX", OPLFD: "LFD", OPSTFD: "STFD",
	OPPSQL: "PSQL", OPPSQST: "PSQST",
	OPB: "B", OPBA: "BA", OPBL: "BL", OPBLA: "BLA",
	OPGenBC: "GenBC", OPGenBCA: "GenBCA", OPGenBCL: "GenBCL", OPGenBCLA: "GenBCLA",
	OPGenBCLR: "GenBCLR", OPGenBCLRL: "GenBCLRL", OPGenBCCTR: "GenBCCTR",
	OPGenBCCTRL: "GenBCCTRL", OPGenBCat: "GenBCat",
	OPBCC: "BCC", OPBCCLR: "BCCLR", OPBCCCTR: "BCCCTR",
	OPBDNZ: "BDNZ", OPBDNZMinus: "BDNZm", OPBDNZPlus: "BDNZp",
	OPBDNZA: "BDNZA", OPBDNZAMinus: "BDNZAm", OPBDNZAPlus: "BDNZAp",
	OPBDNZL: "BDNZL", OPBDNZLMinus: "BDNZLm", OPBDNZLPlus: "BDNZLp",
	OPBDNZLA: "BDNZLA", OPBDNZLAMinus: "BDNZLAm", OPBDNZLAPlus: "BDNZLAp",
	OPBDNZLR: "BDNZLR", OPBDNZLRMinus: "BDNZLRm", OPBDNZLRPlus: "BDNZLRp",
	OPBDNZLRL: "BDNZLRL", OPBDNZLRLMinus: "BDNZLRLm", OPBDNZLRLPlus: "BDNZLRLp",
	OPBDZ: "BDZ", OPBDZMinus: "BDZm", OPBDZPlus: "BDZp",
	OPBDZA: "BDZA", OPBDZAMinus: "BDZAm", OPBDZAPlus: "BDZAp",
	OPBDZL: "BDZL", OPBDZLMinus: "BDZLm", OPBDZLPlus: "BDZLp",
	OPBDZLA: "BDZLA", OPBDZLAMinus: "BDZLAm", OPBDZLAPlus: "BDZLAp",
	OPBDZLR: "BDZLR", OPBDZLRMinus: "BDZLRm", OPBDZLRPlus: "BDZLRp",
	OPBDZLRL: "BDZLRL", OPBDZLRLMinus: "BDZLRLm", OPBDZLRLPlus: "BDZLRLp",
	OPBLR: "BLR", OPBLRL: "BLRL", OPBCTR: "BCTR", OPBCTRL: "BCTRL",
	OPMTSPR: "MTSPR", OPMFSPR: "MFSPR", OPMTLR: "MTLR", OPMFLR: "MFLR",
	OPMTCTR: "MTCTR", OPMFCTR: "MFCTR", OPMFCR: "MFCR", OPMTCRF: "MTCRF",
	OPMTFSFI: "MTFSFI",
	OPDCBT: "DCBT", OPDCBTST: "DCBTST", OPDCBF: "DCBF", OPDCBZ: "DCBZ",
	OPDCBST: "DCBST", OPICBI: "ICBI", OPSYNC: "SYNC", OPISYNC: "ISYNC",
	OPSC: "SC", OPTW: "TW",
	OPVADDUWM: "VADDUWM", OPVSPLTISW: "VSPLTISW",
}

func (op Opcode) String() string {
	if op < opEnd && opNames[op] != "" {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", uint16(op))
}
