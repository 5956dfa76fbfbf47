package scenes

import (
	"log"
	"math/rand"
	"time"

	cfg "github.com/automoto/sakura/config"
	"github.com/automoto/sakura/systems"
	"github.com/automoto/sakura/systems/factory"
	"github.com/automoto/sakura/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GardenOptions configures a garden scene
type GardenOptions struct {
	Count       int
	Seed        int64 // 0 = seed from the wall clock
	Preferences *systems.SavedPreferences
}

// GardenScene is the blossom field: a fixed set of blossoms, the bloom
// button and the optional debug overlay.
type GardenScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      GardenOptions
	control      *ui.ControlUI
	rng          *rand.Rand
	spawned      bool
}

// NewGardenScene creates the scene. Blossoms are spawned on the first
// Layout call, once the surface size is known.
func NewGardenScene(sc SceneChanger, options GardenOptions) *GardenScene {
	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gs := &GardenScene{
		sceneChanger: sc,
		options:      options,
		rng:          rand.New(rand.NewSource(seed)),
	}
	gs.configure()
	return gs
}

func (gs *GardenScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock runs first so every system sees the same tick time
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateInteraction)
	ecs.AddSystem(systems.UpdateSpin)
	ecs.AddSystem(systems.UpdateMist)

	ecs.AddRenderer(cfg.Default, systems.DrawBlossoms)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	gs.ecs = ecs

	systems.GetOrCreateSurface(ecs)
	systems.GetOrCreateSettings(ecs)
	systems.ApplyPreferences(ecs, gs.options.Preferences)
	factory.CreateSpace(ecs, 0, 0, cfg.Interaction.HitCellSize)
}

func (gs *GardenScene) Update() error {
	if systems.QuitRequested(gs.ecs) {
		return ebiten.Termination
	}

	if gs.spawned {
		gs.ensureControlUI()
		gs.control.Update()
		systems.SetPointerBlockers(gs.ecs, gs.control.ButtonRect())
	}

	gs.ecs.Update()
	return nil
}

func (gs *GardenScene) Draw(screen *ebiten.Image) {
	systems.ClearSurface(screen)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	if gs.control != nil {
		gs.control.Draw(screen)
	}
}

// Layout configures the surface for the window's layout size and the
// monitor's pixel density, spawning the blossoms on the first call and
// repositioning them on every resize after that.
func (gs *GardenScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	surface := systems.GetOrCreateSurface(gs.ecs)
	sx, sy, resized := systems.ConfigureSurface(surface,
		float64(outsideWidth), float64(outsideHeight), systems.DeviceScaleFactor())

	switch {
	case !gs.spawned && surface.Configured:
		systems.RebuildHitSpace(gs.ecs, surface.LayoutWidth, surface.LayoutHeight)
		factory.SpawnBlossoms(gs.ecs, gs.options.Count, surface.LayoutWidth, surface.LayoutHeight, gs.rng)
		gs.spawned = true
		log.Printf("[garden] spawned %d blossoms on a %.0fx%.0f surface (density %.2f)",
			gs.options.Count, surface.LayoutWidth, surface.LayoutHeight, surface.Density)
	case resized:
		systems.Reposition(gs.ecs, sx, sy)
	}

	return max(surface.BackingWidth, 1), max(surface.BackingHeight, 1)
}

// ensureControlUI builds the button overlay, rebuilding it when the window
// moves to a monitor with a different density.
func (gs *GardenScene) ensureControlUI() {
	density := systems.GetOrCreateSurface(gs.ecs).Density
	if gs.control != nil && gs.control.Scale() == density {
		return
	}
	control, err := ui.NewControlUI(density, func() {
		systems.RequestBloom(gs.ecs)
	})
	if err != nil {
		log.Printf("Warning: Could not build control UI: %v", err)
		return
	}
	gs.control = control
}
