package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/gokturkdogan/journey/internal/config"
	"github.com/gokturkdogan/journey/internal/sim"
	"github.com/gokturkdogan/journey/internal/telemetry"
	"github.com/gokturkdogan/journey/internal/vehicle"
	"github.com/gokturkdogan/journey/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	duration   float64
	frameRate  int
	navigateTo string
	teleportTo string
)

// main registers the journey commands. With no subcommand the
// interactive drive starts directly.
func main() {
	rootCmd := &cobra.Command{
		Use:   "journey",
		Short: "drive-through memory timeline",
		RunE:  runDrive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".journey", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	driveCmd := &cobra.Command{
		Use:   "drive",
		Short: "interactive drive in the terminal",
		RunE:  runDrive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless scripted run, telemetry saved to the data directory",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 60.0, "duration in seconds")
	runCmd.Flags().IntVar(&frameRate, "fps", 60, "simulated frame rate")
	runCmd.Flags().StringVar(&navigateTo, "navigate", "", "navigate to a landmark id at t=0")
	runCmd.Flags().StringVar(&teleportTo, "teleport", "", "teleport to a landmark id at t=0")

	routeCmd := &cobra.Command{
		Use:   "route",
		Short: "list the route's landmarks",
		RunE:  listRoute,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for name := range config.Presets {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(driveCmd, runCmd, routeCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, then config file, then defaults.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.Preset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

func runDrive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sched, err := cfg.Build()
	if err != nil {
		return err
	}
	return viz.Run(cfg, sched)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sched, err := cfg.Build()
	if err != nil {
		return err
	}

	recorder := telemetry.NewRecorder()
	sched.AddObserver(recorder)

	steps := cfg.Script
	if navigateTo != "" {
		lm := sched.Registry().ByID(navigateTo)
		if lm == nil {
			return fmt.Errorf("unknown landmark: %s", navigateTo)
		}
		pos := lm.Position.WithY(cfg.Vehicle.RestingHeight)
		steps = append(steps, sim.ScriptStep{Navigate: &pos})
	}
	if teleportTo != "" {
		lm := sched.Registry().ByID(teleportTo)
		if lm == nil {
			return fmt.Errorf("unknown landmark: %s", teleportTo)
		}
		pos := lm.Position.WithY(cfg.Vehicle.RestingHeight)
		steps = append(steps, sim.ScriptStep{Teleport: &pos})
	}
	if len(steps) == 0 {
		// Nothing scripted: hold forward for the whole run.
		steps = append(steps, sim.ScriptStep{Input: &vehicle.Input{Forward: true}})
	}
	script := sim.NewScript(steps)

	if frameRate <= 0 {
		frameRate = config.DefaultFrameRate
	}
	frameDelta := 1.0 / float64(frameRate)

	fmt.Printf("running %.0fs drive...\n", duration)
	start := time.Now()
	if err := sched.Run(context.Background(), duration, frameDelta, script.Drive); err != nil {
		return err
	}
	elapsed := time.Since(start)

	store := telemetry.NewStore(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(telemetry.RunMetadata{
		Preset:    preset,
		Steering:  cfg.Steering,
		Duration:  duration,
		FrameRate: frameRate,
		Landmarks: sched.Registry().Len(),
		Metrics:   recorder.Metrics(),
	}, recorder.Track())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for name, val := range recorder.Metrics() {
		fmt.Printf("  %s: %.4f\n", name, val)
	}
	return nil
}

func listRoute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	registry, err := cfg.BuildRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDINAL\tID\tYEAR\tTITLE\tPOSITION")
	for _, lm := range registry.Ordered() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t(%.0f, %.0f, %.0f)\n",
			lm.Ordinal, lm.ID, lm.Year, lm.Title,
			lm.Position.X, lm.Position.Y, lm.Position.Z,
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := telemetry.NewStore(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tSTEERING\tLANDMARKS\tACTIVATIONS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1fs\t%s\t%d\t%.0f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Steering,
			run.Landmarks,
			run.Metrics["activations"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := telemetry.NewStore(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	track, err := store.LoadTrack(args[0])
	if err != nil {
		return err
	}
	if len(track) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(track))

	speed := make([]float64, len(track))
	intensity := make([]float64, len(track))
	for i, p := range track {
		speed[i] = p.Speed
		intensity[i] = p.Intensity
	}

	fmt.Println(asciigraph.Plot(speed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("forward speed"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(intensity,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("active landmark intensity"),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := telemetry.NewStore(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
