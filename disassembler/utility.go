package disassembler

import (
	"fmt"
	"strconv"
)

// hexThreshold is the largest magnitude printed in decimal.
const hexThreshold = 9

// signExtend treats the low bits of v as a two's complement number.
func signExtend(v int64, bits uint) int64 {
	shift := 64 - bits
	return (v << shift) >> shift
}

// truncate keeps the low bits of v.
func truncate(v int64, bits uint) uint64 {
	if bits >= 64 {
		return uint64(v)
	}
	return uint64(v) & (1<<bits - 1)
}

// formatInt32 prints a signed value, in hex once its magnitude passes
// hexThreshold.
func formatInt32(v int32) string {
	if v >= 0 {
		if v > hexThreshold {
			return fmt.Sprintf("0x%x", v)
		}
		return strconv.Itoa(int(v))
	}
	if v < -hexThreshold {
		// Negating math.MinInt32 overflows, so go through uint32.
		return fmt.Sprintf("-0x%x", uint32(-int64(v)))
	}
	return strconv.Itoa(int(v))
}

func formatUint32(v uint32) string {
	if v > hexThreshold {
		return fmt.Sprintf("0x%x", v)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func formatUint64(v uint64) string {
	if v > hexThreshold {
		return fmt.Sprintf("0x%x", v)
	}
	return strconv.FormatUint(v, 10)
}
