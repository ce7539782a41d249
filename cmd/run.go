package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/devonmarsh/octastep/internal/chip8"
	"github.com/devonmarsh/octastep/internal/frontend"
	"github.com/devonmarsh/octastep/internal/kernel"
	"github.com/devonmarsh/octastep/internal/pixelui"
)

const hostFrameRate = 60

var (
	platformFlag string
	seedFlag     int64
	headlessFlag bool
	traceFlag    bool
)

// runCmd runs a ROM through the emulation core, either in a desktop window
// or, with --headless, with no frontend at all.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run a ROM",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().StringVar(&platformFlag, "platform", "chip8", "quirk profile: chip8 or superchip")
	runCmd.Flags().Int64Var(&seedFlag, "seed", 0, "seed for the CXNN random number generator (0 picks a random seed)")
	runCmd.Flags().BoolVar(&headlessFlag, "headless", false, "run without opening a window")
	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "print CPU diagnostic text to stdout (no output with --headless)")
}

func runChippy(cmd *cobra.Command, args []string) {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error reading rom: %v\n", err)
		os.Exit(1)
	}

	platform, err := parsePlatform(platformFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var rng *rand.Rand
	if seedFlag != 0 {
		rng = rand.New(rand.NewSource(seedFlag))
	}

	options := chip8.Options{
		ROM:      rom,
		Platform: platform,
		RNG:      rng,
		Trace:    traceFlag,
	}

	if headlessFlag {
		runHeadless(options)
		return
	}

	pixelgl.Run(func() {
		runWindowed(args[0], options)
	})
}

func parsePlatform(name string) (chip8.Platform, error) {
	switch name {
	case "chip8", "":
		return chip8.PlatformCHIP8, nil
	case "superchip":
		return chip8.PlatformSUPERCHIP, nil
	default:
		return 0, fmt.Errorf("unknown platform %q: want chip8 or superchip", name)
	}
}

func runHeadless(options chip8.Options) {
	backend, err := chip8.CreateBackend(frontend.Null{}, options)
	if err != nil {
		fmt.Printf("error creating backend: %v\n", err)
		os.Exit(1)
	}

	for {
		if err := backend.Step(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func runWindowed(title string, options chip8.Options) {
	window, err := pixelui.NewWindow(title)
	if err != nil {
		fmt.Printf("error creating window: %v\n", err)
		os.Exit(1)
	}

	backend, err := chip8.CreateBackend(window, options)
	if err != nil {
		fmt.Printf("error creating backend: %v\n", err)
		os.Exit(1)
	}

	frameDuration := kernel.DurationFromNanos(1_000_000_000 / hostFrameRate)
	for !window.Closed() {
		if err := backend.RunFor(frameDuration); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		window.Update()
	}
}
