package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/toggleparty/broadcast"
	"github.com/delaneyj/toggleparty/decorate"
	"github.com/delaneyj/toggleparty/scope"
	"github.com/delaneyj/toggleparty/toggle"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	widths = []int{1, 10, 100, 1_000}
	depths = []int{1, 10, 100}
	iters  = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkBroadcast(true)
}

// benchmarkBroadcast mounts a provider over width decorated readers, each
// sitting depth scopes below the publisher, then measures how long one
// commit takes to re-render every reader.
func benchmarkBroadcast(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Toggle Broadcast")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "readers", "avg", "min", "p75", "p99", "max"})

	reader := decorate.WithToggle(&scope.Unit{
		Meta: scope.Meta{Name: "reader"},
		Render: func(sc *scope.Scope, in scope.Input) (string, error) {
			snap, _ := decorate.Snap(in.Params)
			if snap.On {
				return "1", nil
			}
			return "0", nil
		},
	})

	for _, w := range widths {
		for _, d := range depths {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			store := toggle.New(nil)
			var leaf *scope.Scope
			p := broadcast.Mount(scope.NewRoot(), store, func(sc *scope.Scope) (string, error) {
				if leaf == nil {
					leaf = sc
					for i := 0; i < d; i++ {
						leaf = leaf.Child()
					}
				}
				out := ""
				for i := 0; i < w; i++ {
					bit, err := scope.RenderUnit(leaf, reader, scope.Input{})
					if err != nil {
						return "", err
					}
					out += bit
				}
				return out, nil
			})

			for i := 0; i < iters; i++ {
				start := time.Now()
				store.Toggle()
				tach.AddTime(time.Since(start))
			}
			if _, err := p.Output(); err != nil {
				log.Panic(err)
			}
			p.Close()

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, d),
					humanize.Comma(int64(w)),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
