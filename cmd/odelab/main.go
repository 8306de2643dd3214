package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/skoret/odelab/internal/analysis"
	"github.com/skoret/odelab/internal/config"
	"github.com/skoret/odelab/internal/experiment"
	"github.com/skoret/odelab/internal/export"
	"github.com/skoret/odelab/internal/noise"
	"github.com/skoret/odelab/internal/ode"
	"github.com/skoret/odelab/internal/stats"
	"github.com/skoret/odelab/internal/storage"
	"github.com/skoret/odelab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	dim        int
	seed       int64
	schemeName string
	sigma      float64
	forcing    float64
	rate       float64
	mean       float64
	configFile string
	preset     string
	component  int
	outPath    string
	components string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step ODE integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "terminal plot of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render a stored run to an image file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&outPath, "out", "trajectory.png", "output image path (png, svg, pdf)")
	renderCmd.Flags().StringVar(&components, "components", "0", "comma-separated component indices")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print a stored run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "power spectrum of one trajectory component",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&component, "component", 0, "state component index")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark the schemes on a model",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}
	benchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	benchCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time slots")
	benchCmd.Flags().IntVar(&dim, "dim", config.DefaultDim, "state dimension")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare scheme accuracy against the analytic mean-reversion decay",
		RunE:  compareSchemes,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0.01, "step size")
	compareCmd.Flags().IntVar(&steps, "steps", 1001, "number of time slots")
	compareCmd.Flags().Float64Var(&rate, "rate", 0.1, "reversion rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			sort.Strings(names)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "integrate with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, renderCmd, exportJSONCmd, exportCSVCmd,
		analyzeCmd, benchCmd, compareCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size (negative integrates backward)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time slots")
	cmd.Flags().IntVar(&dim, "dim", config.DefaultDim, "state dimension")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "noise seed")
	cmd.Flags().StringVar(&schemeName, "scheme", config.DefaultScheme, "integration scheme (euler, heun, rk4)")
	cmd.Flags().Float64Var(&sigma, "sigma", 0, "noise amplitude (0 disables pre-fill)")
	cmd.Flags().Float64Var(&forcing, "f", config.DefaultF, "lorenz96 forcing")
	cmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "meanrev reversion rate")
	cmd.Flags().Float64Var(&mean, "mean", 0, "meanrev mean level")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file and explicit
// flags, in that order of increasing precedence.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		copied := *p
		cfg = &copied
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		cfg.Model = model
	}

	flags := cmd.Flags()
	if flags.Changed("scheme") {
		cfg.Scheme = schemeName
	}
	if flags.Changed("dim") {
		cfg.Dim = dim
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Changed("sigma") {
		cfg.Noise.Sigma = sigma
	}
	if flags.Changed("f") {
		cfg.Params.F = forcing
	}
	if flags.Changed("rate") {
		cfg.Params.Rate = rate
	}
	if flags.Changed("mean") {
		cfg.Params.Mean = mean
	}

	// The scalar model defaults to one dimension unless asked otherwise.
	if cfg.Model == "meanrev" && !flags.Changed("dim") && preset == "" && configFile == "" {
		cfg.Dim = 1
	}

	return cfg, nil
}

func setup(cmd *cobra.Command, model string) (*config.Config, experiment.Field, ode.Scheme, error) {
	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return nil, nil, ode.Unknown, err
	}

	registry := experiment.NewRegistry()

	field, err := registry.Get(cfg.Model, cfg)
	if err != nil {
		return nil, nil, ode.Unknown, err
	}
	scheme, err := registry.Scheme(cfg.Scheme)
	if err != nil {
		return nil, nil, ode.Unknown, err
	}
	if err := field.ValidateDim(cfg.Dim); err != nil {
		return nil, nil, ode.Unknown, err
	}

	return cfg, field, scheme, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, field, scheme, err := setup(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("model                 = %s\n", cfg.Model)
	fmt.Printf("dimension             = %d\n", cfg.Dim)
	fmt.Printf("step size             = %g\n", cfg.Dt)
	fmt.Printf("integration steps     = %d\n", cfg.Steps)
	fmt.Printf("scheme                = %s (%d stages)\n", scheme, scheme.Stages())
	fmt.Printf("noise sigma           = %g\n", cfg.Noise.Sigma)
	params := field.GetParams()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-21s = %g\n", name, params[name])
	}

	traj := make([]float64, cfg.Dim*cfg.Steps)
	copy(traj, field.DefaultState(cfg.Dim))
	if cfg.Noise.Sigma > 0 {
		noise.NewWiener(cfg.Noise.Sigma, cfg.Seed).Prefill(traj, cfg.Dim, cfg.Steps, cfg.Dt)
	}

	start := time.Now()
	if err := ode.Integrate(traj, cfg.Dim, cfg.Steps, cfg.Dt, scheme, field.Eval); err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runStats := stats.RunStats(traj, cfg.Dim, cfg.Steps)
	runID, err := st.Save(storage.RunMetadata{
		Model:  cfg.Model,
		Scheme: scheme.String(),
		Dim:    cfg.Dim,
		Steps:  cfg.Steps,
		Dt:     cfg.Dt,
		Seed:   cfg.Seed,
		Sigma:  cfg.Noise.Sigma,
		Stats:  runStats,
	}, traj)
	if err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v (%.0f steps/sec)\n", elapsed, float64(cfg.Steps)/elapsed.Seconds())
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nstats:")
	statNames := make([]string, 0, len(runStats))
	for name := range runStats {
		statNames = append(statNames, name)
	}
	sort.Strings(statNames)
	for _, name := range statNames {
		fmt.Printf("  %s: %.6f\n", name, runStats[name])
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tSCHEME\tDIM\tSTEPS\tDT\tSIGMA\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%g\t%g\t%s\n",
			run.ID, run.Model, run.Scheme, run.Dim, run.Steps, run.Dt, run.Sigma,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, states, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s (%s)\n\n", meta.Model, meta.Scheme)

	numVars := len(states[0])
	if numVars > 4 {
		numVars = 4
	}
	for v := 0; v < numVars; v++ {
		data := make([]float64, len(states))
		for i := range states {
			data[i] = states[i][v]
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("x%d vs time", v)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, states, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	comps, err := parseComponents(components)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s, dt=%g)", meta.Model, meta.Scheme, meta.Dt)
	if err := export.SavePlot(outPath, title, times, states, comps); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func parseComponents(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad component list %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, states, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, *meta, times, states)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, states, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	fmt.Println(strings.Join(header, ","))

	for i := range states {
		row := make([]string, 0, len(states[i])+1)
		row = append(row, strconv.FormatFloat(times[i], 'g', -1, 64))
		for _, v := range states[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		fmt.Println(strings.Join(row, ","))
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, states, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 || component >= len(states[0]) {
		return fmt.Errorf("no data for component %d", component)
	}

	data := make([]float64, len(states))
	for i := range states {
		data[i] = states[i][component]
	}

	ps := analysis.PowerSpectrum(data)

	fmt.Printf("frequency analysis: %s (x%d)\n\n", meta.ID, component)
	graph := asciigraph.Plot(ps[:len(ps)/4],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (x%d)", component)),
	)
	fmt.Println(graph)

	idx, _ := analysis.DominantFrequency(ps)
	// bin width is sampleRate/paddedLength; the spectrum holds half the
	// padded window.
	freq := float64(idx) / (meta.Dt * float64(2*len(ps)))
	fmt.Printf("\ndominant frequency: %.4f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.4f s\n", 1.0/freq)
	}
	return nil
}

func benchModel(cmd *cobra.Command, args []string) error {
	cfg, field, _, err := setup(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s (dim=%d, steps=%d, dt=%g)\n\n", cfg.Model, cfg.Dim, cfg.Steps, cfg.Dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tSTAGES\tTIME\tSTEPS/SEC")

	traj := make([]float64, cfg.Dim*cfg.Steps)
	for _, scheme := range ode.Schemes() {
		clear(traj)
		copy(traj, field.DefaultState(cfg.Dim))

		start := time.Now()
		if err := ode.Integrate(traj, cfg.Dim, cfg.Steps, cfg.Dt, scheme, field.Eval); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n",
			scheme, scheme.Stages(), elapsed, float64(cfg.Steps)/elapsed.Seconds())
	}
	return w.Flush()
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	fmt.Printf("scalar decay dx/dt = -%g*x, dt=%g, %d slots, against exp(-a*t)\n\n", rate, dt, steps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tFINAL\tANALYTIC\tMAX ERROR")

	decay := func(x float64, p ...float64) float64 { return -p[0] * x }

	for _, scheme := range ode.Schemes() {
		traj := make([]float64, steps)
		traj[0] = 1.0

		if err := ode.IntegrateScalar(traj, steps, dt, scheme, decay, rate); err != nil {
			return err
		}

		maxErr := 0.0
		for k := range traj {
			exact := math.Exp(-rate * dt * float64(k))
			if diff := math.Abs(traj[k] - exact); diff > maxErr {
				maxErr = diff
			}
		}

		analytic := math.Exp(-rate * dt * float64(steps-1))
		fmt.Fprintf(w, "%s\t%.10f\t%.10f\t%.3e\n", scheme, traj[steps-1], analytic, maxErr)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, field, scheme, err := setup(cmd, args[0])
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Model, scheme, field.Eval, field.DefaultState(cfg.Dim), cfg.Dt)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
