package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbar/pkg/cache"
	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/animate"
	"github.com/matzehuels/stackbar/pkg/chart/layout"
	"github.com/matzehuels/stackbar/pkg/chart/render"
	"github.com/matzehuels/stackbar/pkg/chart/scene"
	"github.com/matzehuels/stackbar/pkg/pipeline"
)

// Terminal grid used before the first WindowSizeMsg arrives.
const (
	defaultCols = 96
	defaultRows = 32
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	width  float64
	height float64
	yLabel string
	easing string
}

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	opts := playOpts{
		width:  c.Env.Width,
		height: c.Env.Height,
		yLabel: c.Env.YLabel,
		easing: c.Env.Easing,
	}

	cmd := &cobra.Command{
		Use:   "play <snapshot>...",
		Short: "Play snapshot transitions in the terminal",
		Long: `Play renders the first snapshot and animates to the next one on every keypress.

Keys:
  n, space   next snapshot
  p          previous snapshot
  r          rotate the stack order (start_index + 1)
  tab        show the next box's value
  esc        hide the value
  q          quit`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "chart width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "chart height")
	cmd.Flags().StringVar(&opts.yLabel, "y-label", opts.yLabel, "y axis caption")
	cmd.Flags().StringVar(&opts.easing, "easing", opts.easing, "easing curve")

	return cmd
}

func runPlay(ctx context.Context, paths []string, opts playOpts) error {
	logger := loggerFromContext(ctx)
	easing, err := animate.ParseEasing(opts.easing)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	datasets := make([]chart.Dataset, 0, len(paths))
	for _, path := range paths {
		ds, _, err := runner.Load(ctx, path)
		if err != nil {
			return err
		}
		datasets = append(datasets, ds)
	}

	// The program owns the terminal; log lines would corrupt the view.
	quiet := log.NewWithOptions(io.Discard, log.Options{})
	m, err := newPlayer(ctx, paths, datasets, layout.Viewport{Width: opts.width, Height: opts.height},
		render.WithYAxisLabel(opts.yLabel),
		render.WithEasing(easing),
		render.WithLogger(quiet),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	go animate.Loop{}.Run(ctx, func(now time.Time) bool {
		p.Send(tickMsg(now))
		return true
	})

	final, err := p.Run()
	if err != nil {
		return err
	}
	if pm, ok := final.(playerModel); ok && pm.err != nil {
		return pm.err
	}
	return nil
}

// tickMsg advances the chart's transitions to the given time.
type tickMsg time.Time

// playerModel is the bubbletea model of the terminal player.
type playerModel struct {
	ctx      context.Context
	paths    []string
	datasets []chart.Dataset
	current  int
	vp       layout.Viewport

	surface  *scene.Graph
	renderer *render.Renderer
	report   *render.Report

	cols, rows int
	hover      int // index into the bound boxes; -1 hides the overlay
	err        error
}

// newPlayer renders datasets[0] and returns the model showing it.
func newPlayer(ctx context.Context, paths []string, datasets []chart.Dataset, vp layout.Viewport, opts ...render.Option) (playerModel, error) {
	if len(datasets) == 0 {
		return playerModel{}, fmt.Errorf("no snapshots to play")
	}
	surface := scene.New(vp.Width, vp.Height)
	m := playerModel{
		ctx:      ctx,
		paths:    paths,
		datasets: datasets,
		vp:       vp,
		surface:  surface,
		renderer: render.New(surface, opts...),
		cols:     defaultCols,
		rows:     defaultRows,
		hover:    -1,
	}
	if err := m.render(); err != nil {
		return playerModel{}, err
	}
	return m, nil
}

func (m *playerModel) render() error {
	rep, err := m.renderer.Render(m.ctx, m.datasets[m.current], m.vp)
	if err != nil {
		return fmt.Errorf("%s: %w", m.paths[m.current], err)
	}
	m.report = rep
	m.hover = -1
	return nil
}

func (m playerModel) Init() tea.Cmd {
	return nil
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.renderer.Advance(time.Time(msg))
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.rows = max(msg.Height-3, 1)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", " ":
			return m.step(1)
		case "p":
			return m.step(-1)
		case "r":
			ds := &m.datasets[m.current]
			if n := len(ds.Legend); n > 0 {
				ds.Config.StartIndex = (ds.Config.StartIndex + 1) % n
			}
			return m.rerender()
		case "tab":
			boxes := m.report.Partition(render.CollectionBoxes)
			keys := append(append([]string{}, boxes.Enter...), boxes.Update...)
			if len(keys) == 0 {
				return m, nil
			}
			m.hover = (m.hover + 1) % len(keys)
			if err := m.renderer.Hover(keys[m.hover]); err != nil {
				m.hover = -1
			}
		case "esc":
			m.renderer.Unhover()
			m.hover = -1
		}
	}
	return m, nil
}

func (m playerModel) step(delta int) (tea.Model, tea.Cmd) {
	n := len(m.datasets)
	m.current = ((m.current+delta)%n + n) % n
	return m.rerender()
}

func (m playerModel) rerender() (tea.Model, tea.Cmd) {
	if err := m.render(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

func (m playerModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s (%d/%d)", m.paths[m.current], m.current+1, len(m.paths))))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(rasterize(m.surface, m.cols, m.rows))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("n/space next  p prev  r rotate  tab value  q quit"))
	return b.String()
}

// status summarizes the last reconciliation of the boxes.
func (m playerModel) status() string {
	p := m.report.Partition(render.CollectionBoxes)
	state := "idle"
	if !m.renderer.Idle() {
		state = "animating"
	}
	s := fmt.Sprintf("start %d · +%d ~%d -%d · %s",
		m.datasets[m.current].Config.StartIndex, len(p.Enter), len(p.Update), len(p.Exit), state)
	if id := m.renderer.Hovered(); id != "" {
		s += " · " + id
	}
	return s
}
