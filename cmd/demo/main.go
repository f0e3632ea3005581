package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/delaneyj/toggleparty/broadcast"
	"github.com/delaneyj/toggleparty/decorate"
	"github.com/delaneyj/toggleparty/renderfn"
	"github.com/delaneyj/toggleparty/scope"
	"github.com/delaneyj/toggleparty/toggle"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const initialOnKey = "on"

func main() {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  initialOnKey,
			Usage: "Start with the toggle on",
			Value: false,
		},
	}
	cmd := &cli.Command{
		Name:  "toggleparty",
		Usage: "Walk each state distribution variant through toggle/toggle/reset",
		Commands: []*cli.Command{
			{
				Name:   "broadcast",
				Usage:  "Ambient channel read by a subtree of display units",
				Flags:  flags,
				Action: demoBroadcast,
			},
			{
				Name:   "decorated",
				Usage:  "Decorator that injects the channel value per render",
				Flags:  flags,
				Action: demoDecorated,
			},
			{
				Name:   "renderfn",
				Usage:  "Render callback with a prop getter",
				Flags:  flags,
				Action: demoRenderFn,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// script runs the canonical toggle/toggle/reset interaction, capturing the
// rendered output after each step.
func script(store *toggle.Store, output func() (string, error)) ([][]string, error) {
	steps := []struct {
		name string
		act  func()
	}{
		{"mount", func() {}},
		{"toggle", store.Toggle},
		{"toggle", store.Toggle},
		{"reset", store.Reset},
	}

	var rows [][]string
	for _, step := range steps {
		step.act()
		out, err := output()
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{step.name, fmt.Sprintf("%v", store.On()), out})
	}
	return rows, nil
}

func renderRows(title string, rows [][]string) {
	log.Printf("%s variant", title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"step", "state", "output"})
	table.AppendBulk(rows)
	table.Render()
}

func newStore(cmd *cli.Command) *toggle.Store {
	return toggle.New(&toggle.Config{
		InitialOn: cmd.Bool(initialOnKey),
		OnToggle: func(on bool) {
			log.Printf("toggled, now %v", on)
		},
		OnReset: func(on bool) {
			log.Printf("reset, back to %v", on)
		},
	})
}

func demoBroadcast(ctx context.Context, cmd *cli.Command) error {
	store := newStore(cmd)
	p := broadcast.Mount(scope.NewRoot(), store, func(sc *scope.Scope) (string, error) {
		snap, err := broadcast.Use(sc)
		if err != nil {
			return "", err
		}
		if snap.On {
			return "the switch is on", nil
		}
		return "the switch is off", nil
	})
	defer p.Close()

	rows, err := script(store, p.Output)
	if err != nil {
		return err
	}
	renderRows("broadcast", rows)
	return nil
}

func demoDecorated(ctx context.Context, cmd *cli.Command) error {
	store := newStore(cmd)
	lamp := decorate.WithToggle(&scope.Unit{
		Meta: scope.Meta{Name: "lamp"},
		Render: func(sc *scope.Scope, in scope.Input) (string, error) {
			snap, ok := decorate.Snap(in.Params)
			if !ok {
				return "", fmt.Errorf("lamp rendered without a snapshot")
			}
			label, _ := in.Params["label"].(string)
			return fmt.Sprintf("%s lamp lit: %v", label, snap.On), nil
		},
	})
	log.Printf("rendering %s", lamp.Meta.Name)

	p := broadcast.Mount(scope.NewRoot(), store, func(sc *scope.Scope) (string, error) {
		return scope.RenderUnit(sc, lamp, scope.Input{
			Params: scope.Params{"label": "desk"},
		})
	})
	defer p.Close()

	rows, err := script(store, p.Output)
	if err != nil {
		return err
	}
	renderRows("decorated", rows)
	return nil
}

func demoRenderFn(ctx context.Context, cmd *cli.Command) error {
	store := newStore(cmd)
	a := renderfn.New(store, func(c renderfn.Context) string {
		attrs := c.Attrs(renderfn.NewAttrs().Set("role", "switch"))
		out := ""
		for _, name := range attrs.Names() {
			v, _ := attrs.Get(name)
			if _, isHandler := v.(renderfn.Handler); isHandler {
				v = "<handler>"
			}
			out += fmt.Sprintf("%s=%v ", name, v)
		}
		return out
	})
	defer a.Close()

	rows, err := script(store, func() (string, error) { return a.Output(), nil })
	if err != nil {
		return err
	}
	renderRows("renderfn", rows)
	return nil
}
