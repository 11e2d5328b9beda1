// Command sm83run runs a ROM headlessly against the CPU core, optionally
// tracing every instruction and watching serial output for a blargg-style
// test harness's pass/fail banner.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hallbjorn/sm83core/internal/emu"
	"github.com/hallbjorn/sm83core/internal/loader"
	"github.com/hallbjorn/sm83core/internal/register"
)

var (
	romPath     string
	steps       int
	trace       bool
	until       string
	auto        bool
	timeout     time.Duration
	traceOnFail bool
	traceWindow int
)

func main() {
	root := &cobra.Command{
		Use:   "sm83run",
		Short: "Run a Game Boy ROM headlessly against the sm83core CPU core",
		RunE:  run,
	}
	root.Flags().StringVar(&romPath, "rom", "", "path to ROM (.gb)")
	root.Flags().IntVar(&steps, "steps", 5_000_000, "max instructions to run")
	root.Flags().BoolVar(&trace, "trace", false, "print PC/opcode/register state every step")
	root.Flags().StringVar(&until, "until", "Passed", "stop when serial output contains this substring (case-insensitive); empty disables")
	root.Flags().BoolVar(&auto, "auto", false, "auto-detect 'Passed'/'Failed N tests' in serial output and exit 0/1")
	root.Flags().DurationVar(&timeout, "timeout", 0, "optional wall-clock timeout; 0 disables")
	root.Flags().BoolVar(&traceOnFail, "traceOnFail", false, "on --auto failure, dump a recent trace window")
	root.Flags().IntVar(&traceWindow, "traceWindow", 200, "instructions retained for traceOnFail")
	root.MarkFlagRequired("rom")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type traceEntry struct {
	pc  uint16
	op  byte
	cyc int
	af, bc, de, hl uint16
	sp  uint16
	ime bool
}

func run(cmd *cobra.Command, args []string) error {
	res, err := loader.Load(romPath)
	if err != nil {
		return err
	}
	if res.Header != nil && !res.Header.LogoOK {
		fmt.Fprintf(os.Stderr, "warning: %s has an invalid Nintendo logo signature\n", romPath)
	}

	sess := emu.New(res.Cartridge)
	sess.ResetPostBoot()

	var ser bytes.Buffer
	if until != "" || auto {
		sess.Serial.Writer = io.MultiWriter(os.Stdout, &ser)
	} else {
		sess.Serial.Writer = os.Stdout
	}

	start := time.Now()
	var deadline time.Time
	if timeout > 0 {
		deadline = start.Add(timeout)
	}
	failRe := regexp.MustCompile(`(?i)failed\s+(\d+)\s+tests?`)

	ring := make([]traceEntry, traceWindow)
	ringIdx, ringFill := 0, 0

	for i := 0; i < steps; i++ {
		regs := sess.CPU.Regs()
		pc := regs.Read16(register.PC)
		var op byte
		if trace || traceOnFail {
			op = sess.Bus.Read8(pc)
		}
		cyc, err := sess.Step()
		if err != nil {
			fmt.Printf("\nfault at step %d: %v\n", i, err)
			return err
		}
		if trace || traceOnFail {
			te := traceEntry{pc: pc, op: op, cyc: cyc,
				af: regs.Read16(register.AF), bc: regs.Read16(register.BC),
				de: regs.Read16(register.DE), hl: regs.Read16(register.HL),
				sp: regs.Read16(register.SP), ime: sess.CPU.IME()}
			if trace {
				printTrace(te)
			}
			if traceOnFail && traceWindow > 0 {
				ring[ringIdx] = te
				ringIdx = (ringIdx + 1) % traceWindow
				if ringFill < traceWindow {
					ringFill++
				}
			}
		}

		if auto {
			s := ser.String()
			if strings.Contains(strings.ToLower(s), "passed") {
				fmt.Printf("\nDetected PASS in serial output.\n")
				report(i, sess, start)
				os.Exit(0)
			}
			if m := failRe.FindStringSubmatch(s); m != nil {
				fmt.Printf("\nDetected %s in serial output.\n", m[0])
				if traceOnFail && ringFill > 0 {
					dumpTrace(ring, ringIdx, ringFill, traceWindow)
				}
				report(i, sess, start)
				os.Exit(1)
			}
		} else if until != "" {
			if strings.Contains(strings.ToLower(ser.String()), strings.ToLower(until)) {
				fmt.Printf("\nDetected %q in serial output.\n", until)
				report(i, sess, start)
				return nil
			}
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			fmt.Printf("\nTimeout after %s.\n", time.Since(start).Truncate(time.Millisecond))
			report(i, sess, start)
			os.Exit(2)
		}
	}
	report(steps-1, sess, start)
	return nil
}

func printTrace(te traceEntry) {
	fmt.Printf("PC=%04X OP=%02X cyc=%d AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X IME=%t\n",
		te.pc, te.op, te.cyc, te.af, te.bc, te.de, te.hl, te.sp, te.ime)
}

func dumpTrace(ring []traceEntry, ringIdx, ringFill, window int) {
	fmt.Printf("\n--- recent trace (last %d instructions) ---\n", ringFill)
	startIdx := (ringIdx - ringFill + window) % window
	for j := 0; j < ringFill; j++ {
		printTrace(ring[(startIdx+j)%window])
	}
	fmt.Printf("--- end trace ---\n")
}

func report(steps int, sess *emu.Session, start time.Time) {
	fmt.Printf("\nDone: steps=%d cycles=%d elapsed=%s\n", steps+1, sess.TotalCycles, time.Since(start).Truncate(time.Millisecond))
}
