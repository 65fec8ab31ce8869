// SPDX-License-Identifier: MIT

// Package app implements the application layer for lvroute.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go.trai.ch/zerr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/allpairs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/graphfile"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/logger"
	"github.com/katalvlaran/lvroute/internal/ui/style"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/shortest"
	"github.com/katalvlaran/lvroute/tsp"
)

// Options carries command line overrides. Zero values leave the
// configured setting untouched.
type Options struct {
	ConfigPath string
	GraphPath  string
	LogLevel   string
	Workers    int
	Threshold  int
	Strict     bool
}

// TourOptions configures Tour.
type TourOptions struct {
	// Start anchors the tour; empty falls back to the configured start.
	Start string
	// Yes approves oversized searches without asking.
	Yes bool
	// Walk also prints the concrete node sequence between visits.
	Walk bool
}

// App represents the main application logic.
type App struct {
	loader   *config.Loader
	log      *logger.Logger
	prompter Prompter
	out      io.Writer
	styles   style.Styles
}

// New creates a new App instance printing to stdout.
func New(loader *config.Loader, log *logger.Logger, prompter Prompter) *App {
	return &App{
		loader:   loader,
		log:      log,
		prompter: prompter,
		out:      os.Stdout,
		styles:   style.New(os.Stdout),
	}
}

// WithOutput redirects command output.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	a.styles = style.New(w)
	return a
}

// Session is a loaded graph ready for queries.
type Session struct {
	Config  *config.Config
	Planner *planner.Planner
}

// Graph returns the session graph.
func (s *Session) Graph() *core.Graph { return s.Planner.Graph() }

// Open loads configuration and the graph file.
func (a *App) Open(opts Options) (*Session, error) {
	// 1. Configuration
	cfg, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := a.log.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.Graph == "" {
		return nil, ErrNoGraph
	}

	// 2. Graph
	began := time.Now()
	var gopts []core.Option
	if cfg.Strict {
		gopts = append(gopts, core.WithStrict())
	}
	g, err := graphfile.Load(cfg.Graph, gopts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load graph"), "graph", cfg.Graph)
	}
	a.log.Debug("graph loaded",
		zap.String("path", cfg.Graph),
		zap.Int("nodes", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Bool("weighted", g.Weighted()),
		zap.Duration("duration", time.Since(began)),
	)

	// 3. Planner
	p := planner.New(g,
		planner.WithWorkers(cfg.Workers),
		planner.WithThreshold(cfg.Threshold),
		planner.WithLogger(a.log.Logger),
	)

	return &Session{Config: cfg, Planner: p}, nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.GraphPath != "" {
		cfg.Graph = opts.GraphPath
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Workers != 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Threshold != 0 {
		cfg.Threshold = opts.Threshold
	}
	if opts.Strict {
		cfg.Strict = true
	}
}

// Path prints the shortest route between two stations.
func (a *App) Path(_ context.Context, opts Options, start, end string) error {
	s, err := a.Open(opts)
	if err != nil {
		return err
	}
	from, err := resolveStation(s.Graph(), start)
	if err != nil {
		return err
	}
	to, err := resolveStation(s.Graph(), end)
	if err != nil {
		return err
	}

	return a.printPath(s, from, to)
}

func (a *App) printPath(s *Session, start, end string) error {
	res, err := s.Planner.ShortestPath(start, end)
	if errors.Is(err, shortest.ErrUnreachable) {
		fmt.Fprintln(a.out, a.styles.Bad.Render(fmt.Sprintf("There is no route between %s and %s", start, end)))
		return zerr.With(zerr.With(zerr.Wrap(ErrNoRoute, "shortest route"), "start", start), "end", end)
	}
	if err != nil {
		return err
	}

	if s.Graph().Weighted() {
		fmt.Fprintln(a.out, a.styles.Title.Render(fmt.Sprintf("The shortest route between %s and %s costs %d", start, end, res.Cost)))
	} else {
		fmt.Fprintln(a.out, a.styles.Title.Render(fmt.Sprintf("The shortest route between %s and %s is %d stops long", start, end, res.Cost)))
	}
	for i, stop := range res.Route {
		fmt.Fprintf(a.out, "[%d] %s\n", i+1, stop)
	}

	return nil
}

// All prints the cost and route of every reachable pair.
func (a *App) All(ctx context.Context, opts Options) error {
	s, err := a.Open(opts)
	if err != nil {
		return err
	}
	table, err := a.buildTable(ctx, s)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tCOST\tROUTE")
	for _, from := range table.Sources() {
		for _, to := range table.Sources() {
			res, err := table.Get(from, to)
			if err != nil {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", from, to, res.Cost, strings.Join(res.Route, " -> "))
		}
	}

	return tw.Flush()
}

// Tour prints the cheapest order visiting every station once.
func (a *App) Tour(ctx context.Context, opts Options, topts TourOptions) error {
	s, err := a.Open(opts)
	if err != nil {
		return err
	}
	start := topts.Start
	if start == "" {
		start = s.Config.Start
	}
	if start != "" {
		if start, err = resolveStation(s.Graph(), start); err != nil {
			return err
		}
	}
	if _, err := a.buildTable(ctx, s); err != nil {
		return err
	}

	began := time.Now()
	res, err := s.Planner.TourVisitingAll(ctx, start, a.confirmFunc(topts.Yes))
	if errors.Is(err, tsp.ErrCancelled) {
		fmt.Fprintln(a.out, a.styles.Warn.Render("Search cancelled"))
		return nil
	}
	if err != nil {
		return zerr.Wrap(err, "tour search failed")
	}
	a.log.Info("calculated shortest path visiting all stations", zap.Duration("duration", time.Since(began)))

	fmt.Fprintln(a.out, a.styles.Good.Render(fmt.Sprintf("Cost: %d, %s", res.Cost, strings.Join(res.Order, " -> "))))
	if topts.Walk {
		legs, err := s.Planner.Legs(ctx, res.Order)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.styles.Muted.Render("Walk: "+strings.Join(tsp.Walk(legs), " -> ")))
	}

	return nil
}

// confirmFunc asks the prompter unless yes pre-approves.
func (a *App) confirmFunc(yes bool) tsp.ConfirmFunc {
	return func(ctx context.Context, est tsp.Estimate) (bool, error) {
		if yes {
			return true, nil
		}
		return a.prompter.Confirm(ctx, fmt.Sprintf("This will take a long time (%s permutations). Continue?", est.Candidates))
	}
}

// Info prints a summary of the graph.
func (a *App) Info(ctx context.Context, opts Options) error {
	s, err := a.Open(opts)
	if err != nil {
		return err
	}
	g := s.Graph()
	comps, err := dfs.StronglyConnected(g)
	if err != nil {
		return err
	}
	_, topoErr := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	if topoErr != nil && !errors.Is(topoErr, dfs.ErrCycleDetected) {
		return topoErr
	}
	start := s.Config.Start
	var reach *dfs.DFSResult
	if start != "" {
		if start, err = resolveStation(g, start); err != nil {
			return err
		}
		if reach, err = dfs.DFS(g, start); err != nil {
			return err
		}
	}
	feasible, err := s.Planner.Feasible(start)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "graph:\t%s\n", s.Config.Graph)
	fmt.Fprintf(tw, "nodes:\t%d\n", g.VertexCount())
	fmt.Fprintf(tw, "edges:\t%d\n", g.EdgeCount())
	fmt.Fprintf(tw, "weighted:\t%t\n", g.Weighted())
	fmt.Fprintf(tw, "fingerprint:\t%016x\n", g.Fingerprint())
	fmt.Fprintf(tw, "components:\t%d\n", len(comps))
	fmt.Fprintf(tw, "acyclic:\t%t\n", topoErr == nil)
	if reach != nil {
		fmt.Fprintf(tw, "reachable from %s:\t%d/%d\n", start, len(reach.Depth), g.VertexCount())
	}
	fmt.Fprintf(tw, "tour feasible:\t%t\n", feasible)
	fmt.Fprintf(tw, "tour permutations:\t%s\n", s.Planner.PermutationCount(g.VertexCount()))
	fmt.Fprintf(tw, "tour needs confirmation:\t%t\n", s.Planner.NeedsConfirmation())

	return tw.Flush()
}

// Export re-encodes the loaded graph in format.
func (a *App) Export(_ context.Context, opts Options, format graphfile.Format) error {
	s, err := a.Open(opts)
	if err != nil {
		return err
	}

	return graphfile.Encode(a.out, s.Graph().Definition(), format)
}

// ReplOptions configures REPL.
type ReplOptions struct {
	// Watch reloads the graph when its file changes between queries.
	Watch bool
}

// REPL repeatedly asks for a start and an end station and prints the
// shortest route between them until the input is closed.
func (a *App) REPL(ctx context.Context, opts Options, ropts ReplOptions) error {
	s, err := a.Open(opts)
	if err != nil {
		return err
	}
	if _, err := a.buildTable(ctx, s); err != nil {
		return err
	}

	var watcher *GraphWatcher
	if ropts.Watch {
		if watcher, err = WatchGraph(ctx, s.Config.Graph, a.log); err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()
	}

	for {
		if watcher != nil && watcher.Changed() {
			s = a.reload(ctx, opts, s)
		}
		start, err := a.askStation(ctx, s.Graph(), "Start: ")
		if err != nil {
			return endOfInput(err)
		}
		end, err := a.askStation(ctx, s.Graph(), "End: ")
		if err != nil {
			return endOfInput(err)
		}
		if err := a.printPath(s, start, end); err != nil && !errors.Is(err, ErrNoRoute) {
			return err
		}
	}
}

// reload reopens the graph, keeping the current session when the new
// file does not load.
func (a *App) reload(ctx context.Context, opts Options, current *Session) *Session {
	s, err := a.Open(opts)
	if err == nil {
		_, err = a.buildTable(ctx, s)
	}
	if err != nil {
		a.log.Warn("graph reload failed", zap.Error(err))
		fmt.Fprintln(a.out, a.styles.Bad.Render("Reload failed, keeping the previous graph"))
		return current
	}
	fmt.Fprintln(a.out, a.styles.Muted.Render(fmt.Sprintf("Graph reloaded (%d stations)", s.Graph().VertexCount())))

	return s
}

// askStation re-asks until the answer names a station.
func (a *App) askStation(ctx context.Context, g *core.Graph, label string) (string, error) {
	for {
		answer, err := a.prompter.Ask(ctx, label)
		if err != nil {
			return "", err
		}
		if id, err := resolveStation(g, answer); err == nil {
			return id, nil
		}
		fmt.Fprintln(a.out, a.styles.Bad.Render("Invalid station"))
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// buildTable computes the all-pairs table and logs how long it took.
func (a *App) buildTable(ctx context.Context, s *Session) (*allpairs.Table, error) {
	began := time.Now()
	table, err := s.Planner.AllPairs(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to calculate all routes")
	}
	a.log.Info("calculated all routes", zap.Duration("duration", time.Since(began)))

	return table, nil
}

// resolveStation maps user input to a node ID. An exact match wins;
// otherwise a unique case-insensitive match is accepted.
func resolveStation(g *core.Graph, name string) (string, error) {
	name = strings.TrimSpace(name)
	if g.HasVertex(name) {
		return name, nil
	}
	match := ""
	for _, id := range g.Vertices() {
		if !strings.EqualFold(id, name) {
			continue
		}
		if match != "" {
			return "", zerr.With(zerr.With(zerr.Wrap(ErrUnknownStation, "ambiguous name"), "station", name), "ambiguous", true)
		}
		match = id
	}
	if match == "" {
		return "", zerr.With(zerr.Wrap(ErrUnknownStation, "resolve station"), "station", name)
	}

	return match, nil
}
