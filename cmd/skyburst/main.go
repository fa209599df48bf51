package main

import (
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/avensel/skyburst/internal/analysis"
	"github.com/avensel/skyburst/internal/audio"
	"github.com/avensel/skyburst/internal/banner"
	"github.com/avensel/skyburst/internal/config"
	"github.com/avensel/skyburst/internal/show"
)

var (
	configFile string
	fps        int
	noAudio    bool
	noIntro    bool
	target     string
	seed       int64
	cols       int
	rows       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skyburst",
		Short: "fireworks countdown for your terminal",
		RunE:  runShow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable sound")
	rootCmd.Flags().BoolVar(&noIntro, "no-intro", false, "skip the intro panel")
	rootCmd.Flags().StringVar(&target, "target", "", "countdown target (RFC3339, default next New Year UTC)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.Flags().IntVar(&cols, "width", 0, "terminal columns (0 = autodetect)")
	rootCmd.Flags().IntVar(&rows, "height", 0, "terminal rows (0 = autodetect)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "inspect the synthesized explosion clip",
		RunE:  analyzeClip,
	}
	analyzeCmd.Flags().Int64Var(&seed, "seed", 1, "synth seed")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the default configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(config.DefaultConfig())
			if err != nil {
				return err
			}
			os.Stdout.Write(data)
			return nil
		},
	}

	rootCmd.AddCommand(analyzeCmd, configCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers flags over the config file over the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("fps") {
		cfg.Display.FPS = fps
	}
	if cmd.Flags().Changed("width") {
		cfg.Display.Width = cols
	}
	if cmd.Flags().Changed("height") {
		cfg.Display.Height = rows
	}
	if noAudio {
		cfg.Audio.Enabled = false
	}
	if cmd.Flags().Changed("target") {
		cfg.Countdown.Target = target
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	targetTime, err := cfg.Target(time.Now())
	if err != nil {
		return err
	}

	if !noIntro {
		start, err := banner.Intro(targetTime.Format("Mon Jan 2 15:04:05 MST 2006"))
		if err != nil {
			return err
		}
		if !start {
			return nil
		}
	}

	if err := show.Run(cfg); err != nil {
		return err
	}
	fmt.Println(banner.Outro())
	return nil
}

func analyzeClip(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	clip, err := audio.NewClip(audio.Config{
		SampleRate: cfg.Audio.SampleRate,
		Seed:       uint64(seed),
	})
	if err != nil {
		return err
	}

	env := analysis.Envelope(clip.Base, 100)
	fmt.Println(asciigraph.Plot(env,
		asciigraph.Height(8),
		asciigraph.Width(100),
		asciigraph.Caption("envelope (peak per bin)")))
	fmt.Println()

	ps := analysis.PowerSpectrum(clip.Base)
	fftSize := 2 * len(ps)
	// The interesting content sits well below 1 kHz; plot the bottom slice.
	low := ps[:len(ps)/16]
	fmt.Println(asciigraph.Plot(analysis.Envelope(low, 100),
		asciigraph.Height(8),
		asciigraph.Width(100),
		asciigraph.Caption("power spectrum (low band)")))
	fmt.Println()

	dur := float64(len(clip.Base)) / float64(clip.SampleRate)
	fmt.Printf("clip: %d samples, %.2fs at %d Hz\n", len(clip.Base), dur, clip.SampleRate)
	fmt.Printf("dominant frequency: %.1f Hz\n", analysis.DominantFrequency(ps, clip.SampleRate, fftSize))
	fmt.Printf("pan variants: %d (%.3f apart)\n", audio.NumPanVariants, audio.PanValue(1)-audio.PanValue(0))
	return nil
}
