package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/celebrate/config"
	"github.com/lixenwraith/celebrate/effect"
	"github.com/lixenwraith/celebrate/engine"
	"github.com/lixenwraith/celebrate/render"
)

// planEpoch anchors dry runs so output is reproducible
var planEpoch = time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC)

// toneLog records played tones instead of sounding them
type toneLog struct {
	clock func() time.Time
	notes []time.Time
}

func (t *toneLog) PlayTone(freq float64, d time.Duration) error {
	t.notes = append(t.notes, t.clock())
	return nil
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	var width, height int
	var settle time.Duration

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Dry-run one celebration on a virtual clock and print what happens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadAuto(opts.configPath)
			if err != nil {
				return err
			}
			return runPlan(cmd.OutOrStdout(), cfg, opts, effect.Bounds{Width: float64(width), Height: float64(height)}, settle)
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "virtual screen width")
	cmd.Flags().IntVar(&height, "height", 24, "virtual screen height")
	cmd.Flags().DurationVar(&settle, "settle", 10*time.Second, "extra time after auto-stop to let effects expire")
	return cmd
}

// runPlan starts one celebration on a manual clock, runs it to the end and
// reports the timeline, effect counts and display changes
func runPlan(w io.Writer, cfg *config.Config, opts *rootOptions, bounds effect.Bounds, settle time.Duration) error {
	sched := engine.NewManualScheduler(planEpoch)
	rec := render.NewRecorder(sched.Now, bounds)
	tones := &toneLog{clock: sched.Now}

	a, err := newApp(appDeps{
		sched:   sched,
		surface: rec,
		display: rec,
		bounds:  rec.Bounds,
		tones:   tones,
		cfg:     cfg,
		rng:     opts.rand(),
	})
	if err != nil {
		return err
	}

	if !a.orch.Start() {
		return fmt.Errorf("celebration did not start")
	}
	sched.Advance(cfg.Celebration.Duration + settle)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "session\t%s\n", a.orch.Session())
	fmt.Fprintf(tw, "state\t%s\n\n", a.orch.State())

	fmt.Fprintln(tw, "OFFSET\tSTEP")
	for _, s := range a.orch.Timeline() {
		fmt.Fprintf(tw, "%s\t%s\n", s.Offset, s.Name)
	}
	fmt.Fprintln(tw)

	kinds := make(map[string]int)
	for _, ev := range rec.Events() {
		if ev.Action == "create" {
			kinds[ev.Detail]++
		}
	}
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)

	fmt.Fprintln(tw, "EFFECT\tCOUNT")
	for _, k := range names {
		fmt.Fprintf(tw, "%s\t%d\n", k, kinds[k])
	}
	fmt.Fprintln(tw)

	stats := a.effects.Stats()
	fmt.Fprintf(tw, "tracked\t%d\n", stats.Tracked)
	fmt.Fprintf(tw, "expired\t%d\n", stats.Expired)
	fmt.Fprintf(tw, "cleared\t%d\n", stats.Cleared)
	fmt.Fprintf(tw, "peak live\t%d\n", stats.Peak)
	fmt.Fprintf(tw, "live now\t%d\n", a.effects.Len())
	fmt.Fprintf(tw, "notes\t%d\n", len(tones.notes))
	fmt.Fprintf(tw, "messages\t%d\n", rec.Count("message"))
	fmt.Fprintf(tw, "themes\t%d\n", rec.Count("theme"))
	return tw.Flush()
}
