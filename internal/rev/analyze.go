// SPDX-License-Identifier: Apache-2.0

package rev

import (
	"debug/elf"
	"fmt"
	"log"
	"sync"

	pb "github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"github.com/quantbagel/Claude-reverse/internal/asm/x86"
)

type funcSym struct {
	name string
	code []byte
}

// AnalyzeBinary disassembles every defined function in the ELF at path and
// builds a fresh state with per-function instruction, branch and call
// counts. batch is the number of functions handed to each scanning
// goroutine.
func AnalyzeBinary(path string, batch uint) (State, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	mode := 64
	switch f.Machine {
	case elf.EM_X86_64:
	case elf.EM_386:
		mode = 32
	default:
		return nil, fmt.Errorf("unsupported machine %s, only x86 binaries can be scanned", f.Machine)
	}

	syms, err := collectFuncSyms(f)
	if err != nil {
		return nil, err
	}
	if len(syms) == 0 {
		return nil, fmt.Errorf("no function symbols in %s (stripped binary?)", path)
	}

	if batch < 1 {
		batch = 1
	}

	log.Printf("Scanning %d functions...", len(syms))
	bar := pb.StartNew(len(syms))

	state := State{}
	var mu sync.Mutex
	var errg errgroup.Group

	scan := func(syms []funcSym) error {
		for _, sym := range syms {
			stats := x86.Scan(sym.code, mode)
			fi := &FuncInfo{
				Size:         uint64(len(sym.code)),
				Instructions: stats.Instructions,
				Branches:     stats.Branches,
				Calls:        stats.Calls,
				Status:       StatusUnmatched,
			}
			fi.Complexity = fi.ComplexityScore()

			mu.Lock()
			state[sym.name] = fi
			mu.Unlock()
			bar.Increment()
		}
		return nil
	}

	var i uint
	for i = 0; i+batch < uint(len(syms)); i += batch {
		chunk := syms[i : i+batch]
		errg.Go(func() error {
			return scan(chunk)
		})
	}
	if i < uint(len(syms)) {
		chunk := syms[i:]
		errg.Go(func() error {
			return scan(chunk)
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	bar.Finish()

	return state, nil
}

// collectFuncSyms slices each defined function's code bytes out of its
// section. Section payloads are read once and shared; the slices alias
// them.
func collectFuncSyms(f *elf.File) ([]funcSym, error) {
	symbols, err := f.Symbols()
	if err != nil {
		return nil, fmt.Errorf("reading symbol table: %w", err)
	}

	sections := map[elf.SectionIndex][]byte{}
	var out []funcSym
	for _, sym := range symbols {
		if elf.ST_TYPE(sym.Info) != elf.STT_FUNC || sym.Size == 0 {
			continue
		}
		idx := sym.Section
		if idx == elf.SHN_UNDEF || int(idx) >= len(f.Sections) {
			continue
		}
		sect := f.Sections[idx]
		if sect.Type != elf.SHT_PROGBITS {
			continue
		}

		data, ok := sections[idx]
		if !ok {
			data, err = sect.Data()
			if err != nil {
				return nil, fmt.Errorf("reading section %s: %w", sect.Name, err)
			}
			sections[idx] = data
		}

		start := sym.Value - sect.Addr
		end := start + sym.Size
		if start >= uint64(len(data)) || end > uint64(len(data)) || end < start {
			continue
		}
		out = append(out, funcSym{name: sym.Name, code: data[start:end]})
	}
	return out, nil
}
