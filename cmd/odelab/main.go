package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
	"github.com/san-kum/odelab/internal/report"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	dataDir string
	h       float64
	coarseH float64
	xEnd    float64
	method  string
	x0      float64
	y0      float64
	dy0     float64
	// Config file and preset
	configFile string
	preset     string
	// Frame rate for live view
	frameRate int
	// Output path for rendered plots
	outPath string
	// Halving levels for sweep
	levels int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step ODE method comparison lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "integrate one problem with one method",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addSolveFlags(solveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [problem]",
		Short: "run euler, rk4 and adams3 side by side",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	addSolveFlags(compareCmd)

	estimateCmd := &cobra.Command{
		Use:   "estimate [problem]",
		Short: "Runge error estimate from rk4 runs at h and 2h",
		Args:  cobra.ExactArgs(1),
		RunE:  runEstimate,
	}
	addSolveFlags(estimateCmd)
	estimateCmd.Flags().Float64Var(&coarseH, "coarse-h", 0, "coarse step (default 2h)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [problem] [method]",
		Short: "observed convergence order under step halving",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	addSolveFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&levels, "levels", 4, "number of halvings")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "watch the integration build up",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  runList,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportJSON,
	}

	renderCmd := &cobra.Command{
		Use:   "render [problem]",
		Short: "render a comparison plot to an image file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	addSolveFlags(renderCmd)
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "comparison.png", "output file (png, svg, pdf)")

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list available problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range problems.Names() {
				p, err := problems.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, p.Desc)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, compareCmd, estimateCmd, sweepCmd, plotCmd, liveCmd,
		listCmd, exportCSVCmd, exportJSONCmd, renderCmd, problemsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&h, "h", config.DefaultH, "step size")
	cmd.Flags().Float64Var(&xEnd, "x-end", 0, "interval end (default: problem interval)")
	cmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepping method")
	cmd.Flags().Float64Var(&x0, "x0", 0, "initial abscissa override")
	cmd.Flags().Float64Var(&y0, "y0", 0, "initial value override")
	cmd.Flags().Float64Var(&dy0, "dy0", 0, "initial slope override")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and flags; flags win.
func resolveConfig(cmd *cobra.Command, problem string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Problem = problem

	if preset != "" {
		pc := config.GetPreset(problem, preset)
		if pc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		copied := *pc
		cfg = &copied
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
		cfg.Problem = problem
	}

	if cmd.Flags().Changed("h") {
		cfg.H = h
	}
	if cmd.Flags().Changed("x-end") {
		cfg.XEnd = xEnd
	}
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	return cfg, nil
}

// resolveProblem loads the named problem and applies initial-condition
// overrides from the config or flags. Returns the problem and the
// effective interval end.
func resolveProblem(cmd *cobra.Command, cfg *config.Config) (problems.Problem, float64, error) {
	p, err := problems.Get(cfg.Problem)
	if err != nil {
		return p, 0, err
	}

	if cfg.Init.Override {
		p.X0 = cfg.Init.X0
		p.Y0 = cfg.Init.Y0
		p.DY0 = cfg.Init.DY0
	}
	if cmd.Flags().Changed("x0") {
		p.X0 = x0
	}
	if cmd.Flags().Changed("y0") {
		p.Y0 = y0
	}
	if cmd.Flags().Changed("dy0") {
		p.DY0 = dy0
	}

	end := cfg.XEnd
	if end <= 0 {
		end = p.XEnd
	}
	return p, end, nil
}

func formatMaxError(v float64) string {
	if math.IsNaN(v) || v < 0 {
		return "-"
	}
	return fmt.Sprintf("%.3e", v)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	p, end, err := resolveProblem(cmd, cfg)
	if err != nil {
		return err
	}

	res, err := report.Run(p, cfg.Method, cfg.H, end)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(p.Name, cfg.Method, cfg.H, end, res.MaxError, res.Traj)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s / %s", p.Name, cfg.Method)))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d (h=%g over [%g, %g])\n", len(res.Traj.Xs), cfg.H, p.X0, end)
	fmt.Printf("max error: %s\n", formatMaxError(res.MaxError))
	fmt.Printf("elapsed: %v\n\n", res.Elapsed)
	fmt.Println(viz.Plot(res.Traj.Ys, "y(x)"))

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	p, end, err := resolveProblem(cmd, cfg)
	if err != nil {
		return err
	}

	cmp, err := report.Compare(p, cfg.H, end)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("comparing methods on %s (h=%g)", p.Name, cfg.H)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tMAX_ERROR\tTIME")
	for _, res := range cmp.Results {
		fmt.Fprintf(w, "%s\t%s\t%v\n", res.Method, formatMaxError(res.MaxError), res.Elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !math.IsNaN(cmp.RungeEstimate) {
		fmt.Printf("\nrunge estimate (rk4, h vs 2h): %.3e\n", cmp.RungeEstimate)
	}

	series := make([][]float64, 0, len(cmp.Results)+1)
	labels := make([]string, 0, len(cmp.Results)+1)
	if p.Exact != nil {
		xs := cmp.Results[0].Traj.Xs
		exact := make([]float64, len(xs))
		for i, x := range xs {
			exact[i] = p.Exact(x)
		}
		series = append(series, exact)
		labels = append(labels, "exact")
	}
	for _, res := range cmp.Results {
		series = append(series, res.Traj.Ys)
		labels = append(labels, res.Method)
	}

	fmt.Println()
	fmt.Println(viz.Overlay(series, labels, "y(x)"))
	return nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("coarse-h") {
		cfg.CoarseH = coarseH
	}
	p, end, err := resolveProblem(cmd, cfg)
	if err != nil {
		return err
	}

	fine, err := ode.New(p.F, p.X0, p.Y0, p.DY0, cfg.H, end)
	if err != nil {
		return err
	}
	coarse, err := ode.New(p.F, p.X0, p.Y0, p.DY0, cfg.ComparisonH(), end)
	if err != nil {
		return err
	}

	est, err := ode.RungeError(fine.RK4().Ys, coarse.RK4().Ys)
	if err != nil {
		return err
	}

	fmt.Printf("%s: estimated maximum rk4 error (h=%g vs %g): %.3e\n",
		p.Name, cfg.H, cfg.ComparisonH(), est)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	p, end, err := resolveProblem(cmd, cfg)
	if err != nil {
		return err
	}

	sweep, err := report.Sweep(p, args[1], cfg.H, levels, end)
	if err != nil {
		return err
	}

	fmt.Printf("convergence of %s on %s\n\n", args[1], p.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "H\tMAX_ERROR\tOBSERVED_ORDER")
	for _, level := range sweep {
		order := "-"
		if !math.IsNaN(level.Order) {
			order = fmt.Sprintf("%.2f", level.Order)
		}
		fmt.Fprintf(w, "%g\t%.3e\t%s\n", level.H, level.MaxError, order)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(traj.Ys) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s  method: %s  h: %g\n", meta.Problem, meta.Method, meta.H)
	fmt.Printf("samples: %d  max error: %s\n\n", meta.Samples, formatMaxError(meta.MaxError))
	fmt.Println(viz.Plot(traj.Ys, "y(x)"))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	p, end, err := resolveProblem(cmd, cfg)
	if err != nil {
		return err
	}

	res, err := report.Run(p, cfg.Method, cfg.H, end)
	if err != nil {
		return err
	}

	m := viz.NewLive(p.Name, cfg.Method, cfg.H, res.Traj, frameRate)
	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tMETHOD\tTIME\tH\tSAMPLES\tMAX_ERROR")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%d\t%s\n",
			run.ID,
			run.Problem,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.H,
			run.Samples,
			formatMaxError(run.MaxError),
		)
	}
	return w.Flush()
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(traj.Xs) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range traj.Xs {
		row := []string{
			strconv.FormatFloat(traj.Xs[i], 'f', 6, 64),
			strconv.FormatFloat(traj.Ys[i], 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, traj)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	p, end, err := resolveProblem(cmd, cfg)
	if err != nil {
		return err
	}

	cmp, err := report.Compare(p, cfg.H, end)
	if err != nil {
		return err
	}
	if err := export.RenderComparison(outPath, cmp, p.Exact); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}
