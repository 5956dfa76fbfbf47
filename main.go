package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/sakura/config"
	"github.com/automoto/sakura/fonts"
	"github.com/automoto/sakura/scenes"
	"github.com/automoto/sakura/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(options scenes.GardenOptions) *Game {
	if err := fonts.LoadFontWithSize(fonts.Debug, goregular.TTF, config.Debug.FontSize); err != nil {
		log.Printf("Warning: Could not load debug font: %v", err)
	}

	g := &Game{}
	g.scene = scenes.NewGardenScene(g, options)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

// cliFlags holds the command line. Set records which flags were passed, so
// an explicit zero can still override a value from the config file.
type cliFlags struct {
	ConfigPath string
	Seed       int64
	Count      int
	Debug      bool
	Set        map[string]bool
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	set := flag.NewFlagSet("sakura", flag.ContinueOnError)
	set.StringVar(&f.ConfigPath, "config", "", "path to a YAML config override file")
	set.Int64Var(&f.Seed, "seed", 0, "random seed for blossom placement (0 = time based)")
	set.IntVar(&f.Count, "count", 0, "number of blossoms (default from config)")
	set.BoolVar(&f.Debug, "debug", false, "show the debug overlay")
	if err := set.Parse(args); err != nil {
		return f, err
	}

	f.Set = map[string]bool{}
	set.Visit(func(fl *flag.Flag) {
		f.Set[fl.Name] = true
	})
	return f, nil
}

// gardenOptions combines the loaded config with the flags that were passed
func gardenOptions(f cliFlags) scenes.GardenOptions {
	options := scenes.GardenOptions{
		Count: config.Blossom.Count,
		Seed:  config.C.Seed,
	}
	if f.Set["count"] && f.Count >= 0 {
		options.Count = f.Count
	}
	if f.Set["seed"] {
		options.Seed = f.Seed
	}
	return options
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if flags.ConfigPath != "" {
		f, err := config.LoadFile(flags.ConfigPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("Warning: Config file %s not found, using defaults", flags.ConfigPath)
		case err != nil:
			log.Printf("Warning: %v, using defaults", err)
		default:
			f.Apply()
		}
	}

	options := gardenOptions(flags)

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadPreferences(); err == nil && saved != nil {
		options.Preferences = saved
	}
	if flags.Debug {
		if options.Preferences == nil {
			options.Preferences = &systems.SavedPreferences{}
		}
		options.Preferences.Debug = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(options)); err != nil {
		log.Fatal(err)
	}
}
