// Command sm83ui opens a debug window onto the CPU core, running a ROM
// and rendering a live register/flag/cycle-count HUD instead of a game
// picture (this core has no pixel pipeline — spec Non-goal).
package main

import (
	"flag"
	"log"

	"github.com/hallbjorn/sm83core/internal/emu"
	"github.com/hallbjorn/sm83core/internal/loader"
	"github.com/hallbjorn/sm83core/internal/ui"
)

func main() {
	romPath := flag.String("rom", "", "path to ROM (.gb)")
	scale := flag.Int("scale", 3, "window scale")
	title := flag.String("title", "sm83core", "window title")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("-rom is required")
	}

	res, err := loader.Load(*romPath)
	if err != nil {
		log.Fatal(err)
	}
	if res.Header != nil {
		log.Printf("ROM: %q type=%s banks=%d ram=%dB logoOK=%v",
			res.Header.Title, res.Header.CartTypeStr, res.Header.ROMBanks,
			res.Header.RAMSizeBytes, res.Header.LogoOK)
	}

	sess := emu.New(res.Cartridge)
	sess.ResetPostBoot()

	app := ui.NewApp(ui.Config{Title: *title, Scale: *scale}, sess)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
