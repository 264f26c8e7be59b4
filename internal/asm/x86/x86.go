package x86

import (
	"golang.org/x/arch/x86/x86asm"
)

// Stats summarizes the decoded body of one function.
type Stats struct {
	Instructions int
	Branches     int
	Calls        int
}

var branchOps = map[x86asm.Op]bool{
	x86asm.JMP:    true,
	x86asm.LJMP:   true,
	x86asm.JA:     true,
	x86asm.JAE:    true,
	x86asm.JB:     true,
	x86asm.JBE:    true,
	x86asm.JE:     true,
	x86asm.JNE:    true,
	x86asm.JG:     true,
	x86asm.JGE:    true,
	x86asm.JL:     true,
	x86asm.JLE:    true,
	x86asm.JO:     true,
	x86asm.JNO:    true,
	x86asm.JP:     true,
	x86asm.JNP:    true,
	x86asm.JS:     true,
	x86asm.JNS:    true,
	x86asm.JCXZ:   true,
	x86asm.JECXZ:  true,
	x86asm.JRCXZ:  true,
	x86asm.LOOP:   true,
	x86asm.LOOPE:  true,
	x86asm.LOOPNE: true,
}

// Scan decodes code in the given mode (32 or 64) and counts instructions,
// branches (jumps and loops) and calls. Bytes that don't decode are skipped
// one at a time without counting, so padding and inline data in the middle
// of a function don't abort the scan.
func Scan(code []byte, mode int) Stats {
	var s Stats
	for len(code) > 0 {
		inst, err := x86asm.Decode(code, mode)
		if err != nil || inst.Op == 0 {
			// A lone prefix byte decodes without error but carries no
			// opcode. Skip it like any other undecodable byte.
			code = code[1:]
			continue
		}
		s.Instructions++
		switch {
		case inst.Op == x86asm.CALL || inst.Op == x86asm.LCALL:
			s.Calls++
		case branchOps[inst.Op]:
			s.Branches++
		}
		code = code[inst.Len:]
	}
	return s
}
