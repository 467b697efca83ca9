package scenes

import (
	"sync"

	"github.com/automoto/orbitrig/assets"
	cfg "github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/input"
	"github.com/automoto/orbitrig/logger"
	"github.com/automoto/orbitrig/render"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/automoto/orbitrig/systems"
	"github.com/automoto/orbitrig/systems/factory"
	"github.com/automoto/orbitrig/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// SkirmishOptions are the host resources a skirmish scene uses. Nil fields disable the
// matching feature.
type SkirmishOptions struct {
	LevelPath string
	Watcher   *cfg.Watcher      // Rig config reloads
	Store     systems.PoseStore // Rig pose persistence
	PoseKey   string
}

// SkirmishScene is one rig orbiting a field of patrolling units.
type SkirmishScene struct {
	ecs     *ecs.ECS
	options SkirmishOptions
	poller  *input.Poller
	panel   *ui.FollowPanel
	once    sync.Once
}

func NewSkirmishScene(options SkirmishOptions) *SkirmishScene {
	if options.LevelPath == "" {
		options.LevelPath = cfg.Scene.LevelPath
	}
	if options.PoseKey == "" {
		options.PoseKey = cfg.Scene.PersistKey
	}
	return &SkirmishScene{options: options, poller: input.NewPoller()}
}

func (s *SkirmishScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
	if s.panel != nil {
		s.panel.SetFollowed(systems.FollowedIndex(s.ecs.World))
		s.panel.Update()
	}
}

func (s *SkirmishScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Background)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	if s.panel != nil {
		s.panel.UI.Draw(screen)
	}
}

// World exposes the scene's entities, nil before the first Update.
func (s *SkirmishScene) World() donburi.World {
	if s.ecs == nil {
		return nil
	}
	return s.ecs.World
}

// Close saves the rig pose and stops the config watcher.
func (s *SkirmishScene) Close() {
	if s.ecs != nil && s.options.Store != nil {
		if err := systems.SaveRigPose(s.options.Store, s.ecs.World, s.options.PoseKey); err != nil {
			logger.Log.Warn("rig pose not saved", zap.Error(err))
		}
	}
	if s.options.Watcher != nil {
		if err := s.options.Watcher.Close(); err != nil {
			logger.Log.Warn("config watcher close", zap.Error(err))
		}
	}
}

func (s *SkirmishScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input first, the rig reads it this frame
	e.AddSystem(s.poller.Update)
	e.AddSystem(s.applyConfigReloads)
	e.AddSystem(func(e *ecs.ECS) { systems.UpdateRigFreeze(e.World) })
	e.AddSystem(func(e *ecs.ECS) { systems.UpdateUnits(e.World) })
	e.AddSystem(func(e *ecs.ECS) {
		systems.UpdateFollowControls(e.World, rigmath.Viewport{Width: cfg.C.Width, Height: cfg.C.Height})
	})

	// Movement strictly before follow, then propagation
	for _, phase := range systems.RigPhases() {
		e.AddSystem(func(e *ecs.ECS) { phase.Run(e.World) })
	}

	e.AddRenderer(layerWorld, render.DrawGround)
	e.AddRenderer(layerWorld, render.DrawDebug)
	e.AddRenderer(layerWorld, render.DrawUnits)
	e.AddRenderer(layerWorld, render.DrawRigPivot)
	e.AddRenderer(layerHUD, render.DrawHUD)
	e.AddRenderer(layerHUD, render.DrawFrozen)

	s.ecs = e

	layout, err := assets.LoadSkirmish(s.options.LevelPath)
	if err != nil {
		logger.Log.Error("level not loaded, starting on an empty field",
			zap.String("path", s.options.LevelPath), zap.Error(err))
	}
	factory.PopulateSkirmish(e.World, layout, factory.DefaultRigSpec())
	systems.PropagateTransforms(e.World)

	if s.options.Store != nil {
		restored, err := systems.LoadRigPose(s.options.Store, e.World, s.options.PoseKey)
		if err != nil {
			logger.Log.Warn("rig pose not restored", zap.Error(err))
		} else if restored {
			logger.Log.Info("rig pose restored", zap.String("key", s.options.PoseKey))
		}
	}

	s.buildPanel()
}

func (s *SkirmishScene) buildPanel() {
	w := s.ecs.World
	var names []string
	for _, entry := range systems.Followables(w) {
		names = append(names, systems.UnitName(entry))
	}

	panel, err := ui.NewFollowPanel(names,
		func(index int) {
			if err := systems.FollowIndex(w, index); err != nil {
				logger.Log.Warn("follow", zap.Int("index", index), zap.Error(err))
			}
		},
		func() { systems.StopFollowing(w) },
	)
	if err != nil {
		logger.Log.Error("follow panel disabled", zap.Error(err))
		return
	}
	if len(names) == 0 {
		panel.SetStatus("no units in level")
	}
	s.panel = panel
}

// applyConfigReloads drains the watcher without blocking.
func (s *SkirmishScene) applyConfigReloads(e *ecs.ECS) {
	if s.options.Watcher == nil {
		return
	}
	for {
		select {
		case rigCfg, ok := <-s.options.Watcher.Configs:
			if !ok {
				s.options.Watcher = nil
				return
			}
			cfg.Rig = rigCfg
			systems.ApplyRigConfig(e.World, rigCfg)
		case err, ok := <-s.options.Watcher.Errors:
			if !ok {
				s.options.Watcher = nil
				return
			}
			logger.Log.Warn("config reload rejected", zap.Error(err))
			if s.panel != nil {
				s.panel.SetStatus("config rejected")
			}
		default:
			return
		}
	}
}
