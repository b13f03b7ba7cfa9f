package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"fallgrid/internal/app"
	"fallgrid/internal/board"
	"fallgrid/internal/core"
	"fallgrid/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 25, "ticks to run")
	spawnEvery := flag.Int("spawn-every", 0, "spawn before every Nth tick (0 spawns once at the start)")
	realtime := flag.Bool("realtime", false, "wait for the configured tick period between steps")
	quiet := flag.Bool("quiet", false, "print per-tick stats only, no frames")
	flag.Parse()

	b, err := cfg.Load()
	if err != nil {
		log.Fatalf("load board: %v", err)
	}
	if p, ok := b.(core.ParameterProvider); ok {
		printParameters(os.Stdout, p.Parameters())
	}

	loop := app.NewLoop(b)
	tracker := render.NewTracker()
	tracker.Observe(b.Grid())
	tracker.Discard()

	if err := loop.Spawn(); err != nil {
		log.Fatalf("spawn: %v", err)
	}
	tracker.Observe(b.Grid())

	for tick := 1; tick <= *ticks; tick++ {
		if *spawnEvery > 0 && tick > 1 && (tick-1)%*spawnEvery == 0 {
			if err := loop.Spawn(); err != nil {
				log.Fatalf("spawn at tick %d: %v", tick, err)
			}
			tracker.Observe(b.Grid())
		}
		if *realtime {
			for !loop.Update() {
				time.Sleep(loop.Ticker().Period() / 20)
			}
		} else {
			loop.StepOnce()
			loop.Update()
		}
		tracker.Observe(b.Grid())

		redraw := tracker.Flush(func(board.Coord, *board.Block) {})
		fmt.Printf("tick %3d  active=%-3d redraw=%d\n", tick, board.ActiveCount(b.Grid()), redraw)
		if !*quiet {
			printFrame(os.Stdout, b.Grid())
		}
	}
}

func printParameters(w io.Writer, snap core.ParameterSnapshot) {
	for _, group := range snap.Groups {
		fmt.Fprintf(w, "[%s]\n", group.Name)
		for _, p := range group.Params {
			fmt.Fprintf(w, "  %-16s %s\n", p.Label, p.Value)
		}
	}
}

func printFrame(w io.Writer, g *board.Grid) {
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			sb.WriteString(g.Block(r, c).String())
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintln(w, sb.String())
}
