// Package loader reads a ROM image off disk and turns it into a
// cart.Cartridge, wrapping I/O and header failures the same way the
// teacher's cmd/cpurunner did inline (os.ReadFile + log.Fatalf) but as a
// reusable, testable error type instead of a fatal log line.
package loader

import (
	"fmt"
	"os"

	"github.com/hallbjorn/sm83core/internal/cart"
)

// RomLoadFailure wraps the path and underlying cause of a failed ROM load,
// whether that's a filesystem error or a header that couldn't be parsed.
type RomLoadFailure struct {
	Path string
	Err  error
}

func (e *RomLoadFailure) Error() string {
	return fmt.Sprintf("load rom %q: %v", e.Path, e.Err)
}

func (e *RomLoadFailure) Unwrap() error { return e.Err }

// Result bundles the parsed cartridge with header metadata callers may
// want to report (e.g. a CLI printing title/logo status before running).
type Result struct {
	Cartridge cart.Cartridge
	Header    *cart.Header
}

// Load reads the ROM at path, parses its header, and constructs the
// matching cart.Cartridge implementation. A logo signature that does not
// match does not fail the load (spec: informational only) but is
// available on Result.Header.LogoOK; a file too short to hold the whole
// header does fail, with a RomLoadFailure.
func Load(path string) (*Result, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, &RomLoadFailure{Path: path, Err: err}
	}
	header, err := cart.ParseHeader(rom)
	if err != nil {
		return nil, &RomLoadFailure{Path: path, Err: err}
	}
	c := cart.NewCartridge(rom)
	return &Result{Cartridge: c, Header: header}, nil
}
