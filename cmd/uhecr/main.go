package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/uhecr/internal/analysis"
	"github.com/san-kum/uhecr/internal/config"
	"github.com/san-kum/uhecr/internal/metrics"
	"github.com/san-kum/uhecr/internal/nucleus"
	"github.com/san-kum/uhecr/internal/photodis"
	"github.com/san-kum/uhecr/internal/photonfield"
	"github.com/san-kum/uhecr/internal/prop"
	"github.com/san-kum/uhecr/internal/storage"
	"github.com/san-kum/uhecr/internal/viz"
)

var (
	dataDir    string
	runsDir    string
	field      string
	energyEeV  float64
	redshift   float64
	runs       int
	seed       int64
	maxDistMpc float64
	maxEvents  int
	configFile string
	preset     string
	scanPoints int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "uhecr",
		Short: "photo-disintegration of ultra-high-energy cosmic-ray nuclei",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "rate table directory")
	rootCmd.PersistentFlags().StringVar(&runsDir, "runs-dir", ".uhecr", "stored runs directory")
	rootCmd.PersistentFlags().StringVar(&field, "field", "CMB", "photon field (CMB, IRB, CMB_IRB)")

	runCmd := &cobra.Command{
		Use:   "run [nuclide]",
		Short: "propagate an ensemble of nuclei",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnsemble,
	}
	runCmd.Flags().Float64Var(&energyEeV, "energy", config.DefaultEnergyEeV, "injection energy in EeV")
	runCmd.Flags().Float64Var(&redshift, "redshift", 0.0, "source redshift")
	runCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "number of candidates")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().Float64Var(&maxDistMpc, "max-distance", config.DefaultMaxDistMpc, "distance budget in Mpc")
	runCmd.Flags().IntVar(&maxEvents, "max-events", config.DefaultMaxEvents, "event cap per candidate")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	losslenCmd := &cobra.Command{
		Use:   "losslen [nuclide]",
		Short: "plot the energy-loss length over the tabulated range",
		Args:  cobra.ExactArgs(1),
		RunE:  plotLossLength,
	}
	losslenCmd.Flags().IntVar(&scanPoints, "points", 120, "scan points")
	losslenCmd.Flags().IntVar(&plotHeight, "height", 16, "plot height")

	channelsCmd := &cobra.Command{
		Use:   "channels [nuclide]",
		Short: "list the disintegration channels of a nuclide",
		Args:  cobra.ExactArgs(1),
		RunE:  listChannels,
	}

	liveCmd := &cobra.Command{
		Use:   "live [nuclide]",
		Short: "propagate an ensemble with a live view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&energyEeV, "energy", config.DefaultEnergyEeV, "injection energy in EeV")
	liveCmd.Flags().Float64Var(&redshift, "redshift", 0.0, "source redshift")
	liveCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "number of candidates")
	liveCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	liveCmd.Flags().Float64Var(&maxDistMpc, "max-distance", config.DefaultMaxDistMpc, "distance budget in Mpc")
	liveCmd.Flags().IntVar(&maxEvents, "max-events", config.DefaultMaxEvents, "event cap per candidate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "list photon fields and their data sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tDATA FILE\tSCALE(z=1)")
			for _, k := range photonfield.Kinds() {
				file, _ := k.DataFile()
				fmt.Fprintf(w, "%v\t%s\t%.2f\n", k, file, photonfield.Scaling(k, 1))
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [nuclide]",
		Short: "list available presets for a nuclide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for nuclide: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, losslenCmd, channelsCmd, liveCmd, listCmd, fieldsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildConfig merges defaults, config file, preset and flags for an
// ensemble run.
func buildConfig(nuclide string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(nuclide, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for nuclide %s", preset, nuclide)
		}
		copied := *p
		cfg = &copied
	}

	cfg.Nuclide = nuclide
	if configFile == "" && preset == "" {
		cfg.Field = field
		cfg.DataDir = dataDir
		cfg.EnergyEeV = energyEeV
		cfg.Redshift = redshift
		cfg.Runs = runs
		cfg.MaxDistMpc = maxDistMpc
		cfg.MaxEvents = maxEvents
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	cfg.Seed = seed

	return cfg, cfg.Validate()
}

func buildEngine(cfg *config.Config) (*photodis.PhotoDisintegration, error) {
	kind, err := photonfield.Parse(cfg.Field)
	if err != nil {
		return nil, err
	}
	return photodis.New(kind, cfg.DataDir, rand.New(rand.NewSource(cfg.Seed)))
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}
	n, err := nucleus.Parse(cfg.Nuclide)
	if err != nil {
		return err
	}
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	inj := prop.Injection{Nuclide: n, Energy: cfg.Energy(), Redshift: cfg.Redshift}
	pcfg := prop.Config{MaxDistance: cfg.MaxDistMpc * photodis.Mpc, MaxEvents: cfg.MaxEvents}

	tally := metrics.NewChannelTally()
	base := prop.New(engine)
	base.AddObserver(tally)

	ens := prop.NewEnsemble(base, cfg.Runs, cfg.Seed)
	results, err := ens.Run(context.Background(), inj, pcfg)
	if err != nil {
		return err
	}

	store := storage.New(runsDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Field:     cfg.Field,
		Nuclide:   cfg.Nuclide,
		EnergyEeV: cfg.EnergyEeV,
		Redshift:  cfg.Redshift,
		Seed:      cfg.Seed,
	}, results)
	if err != nil {
		return err
	}

	survived, exhausted, events := 0, 0, 0
	for _, r := range results {
		if r.Survived {
			survived++
		}
		if r.Exhausted {
			exhausted++
		}
		events += len(r.Events)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "injected\t%d × %s at %.1f EeV, z=%.2f (%s)\n",
		cfg.Runs, n, cfg.EnergyEeV, cfg.Redshift, engine.Field())
	fmt.Fprintf(w, "survived\t%d (%.1f%%)\n", survived, 100*float64(survived)/float64(cfg.Runs))
	fmt.Fprintf(w, "disintegrated\t%d\n", cfg.Runs-survived)
	fmt.Fprintf(w, "exhausted\t%d\n", exhausted)
	fmt.Fprintf(w, "events\t%d (%.2f per run)\n", events, float64(events)/float64(cfg.Runs))
	for code, count := range tally.Counts() {
		em := nucleus.DecodeChannel(code)
		fmt.Fprintf(w, "channel %06d\t%d events (dA=%d dZ=%d)\n", code, count, em.DeltaA(), em.DeltaZ())
	}
	return w.Flush()
}

func plotLossLength(cmd *cobra.Command, args []string) error {
	n, err := nucleus.Parse(args[0])
	if err != nil {
		return err
	}
	kind, err := photonfield.Parse(field)
	if err != nil {
		return err
	}
	engine, err := photodis.New(kind, dataDir, nil)
	if err != nil {
		return err
	}

	scan := analysis.LossLengthScan(engine, n, scanPoints)
	caption := fmt.Sprintf("%s energy-loss length on %v", n, kind)
	fmt.Println(viz.LossLengthPlot(scan, caption, plotHeight))
	return nil
}

func listChannels(cmd *cobra.Command, args []string) error {
	n, err := nucleus.Parse(args[0])
	if err != nil {
		return err
	}
	kind, err := photonfield.Parse(field)
	if err != nil {
		return err
	}
	engine, err := photodis.New(kind, dataDir, nil)
	if err != nil {
		return err
	}

	channels := engine.Table().Channels(n.Z, n.N())
	if len(channels) == 0 {
		fmt.Printf("no disintegration channels for %s on %v\n", n, kind)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL\tEMITS\tdA\tdZ\tPEAK RATE (1/Mpc)")
	for _, ch := range channels {
		peak := 0.0
		for _, r := range ch.Rate {
			if r > peak {
				peak = r
			}
		}
		emits := ""
		for _, p := range ch.Emission.Products() {
			if emits != "" {
				emits += " + "
			}
			emits += fmt.Sprintf("%d %s", p.Count, p.Nuclide)
		}
		fmt.Fprintf(w, "%06d\t%s\t%d\t%d\t%.3g\n",
			ch.Code, emits, ch.Emission.DeltaA(), ch.Emission.DeltaZ(), peak*photodis.Mpc)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	n, err := nucleus.Parse(args[0])
	if err != nil {
		return err
	}
	kind, err := photonfield.Parse(field)
	if err != nil {
		return err
	}
	engine, err := photodis.New(kind, dataDir, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	inj := prop.Injection{Nuclide: n, Energy: energyEeV * config.EeV, Redshift: redshift}
	pcfg := prop.Config{MaxDistance: maxDistMpc * photodis.Mpc, MaxEvents: maxEvents}

	model := viz.NewModel(prop.New(engine), inj, pcfg, seed, runs)
	_, err = tea.NewProgram(model).Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(runsDir)
	ids, err := store.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tFIELD\tNUCLIDE\tENERGY (EeV)\tRUNS\tSURVIVED\tMEAN PATH (Mpc)")
	for _, id := range ids {
		meta, err := store.LoadMetadata(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%d\t%d\t%.2f\n",
			meta.ID, meta.Field, meta.Nuclide, meta.EnergyEeV, meta.Runs, meta.Survived, meta.MeanPathMpc)
	}
	return w.Flush()
}
