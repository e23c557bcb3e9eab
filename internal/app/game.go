// internal/app/game.go
package app

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hex-defense/internal/component"
	"hex-defense/internal/config"
	"hex-defense/internal/defs"
	"hex-defense/internal/event"
	"hex-defense/internal/shop"
	"hex-defense/internal/system"
	"hex-defense/internal/types"
	"hex-defense/internal/utils"
	"hex-defense/pkg/hexmap"
)

// Options настраивает новую сессию. Нулевые поля получают значения по умолчанию,
// кроме WallThreshold: 0 означает поле без стен.
type Options struct {
	Radius        int
	Seed          int64 // 0: от текущего времени
	WallThreshold float64
	Logger        *slog.Logger
	Library       defs.Library
}

// DefaultOptions returns the settings the game host starts with.
func DefaultOptions() Options {
	return Options{
		Radius:        config.GridRadius,
		WallThreshold: config.WallThreshold,
	}
}

// Session владеет всем состоянием одной партии: полем, башнями, врагами,
// волной и экономикой. Все изменения идут через Update и команды.
type Session struct {
	ID     uuid.UUID
	HexMap *hexmap.HexMap
	Seed   int64

	path    []hexmap.Hex
	turrets []*component.Turret
	enemies []*component.Enemy
	nextID  types.EntityID

	gold     int
	lives    int
	score    int
	gameOver bool

	library         defs.Library
	rng             *utils.PRNGService
	shop            *shop.Shop
	sellHold        *sellHold
	lastShots       []system.Shot
	gameTime        float64
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger

	waveSystem     *system.WaveSystem
	movementSystem *system.MovementSystem
	combatSystem   *system.CombatSystem
	chainSystem    *system.ChainSystem
}

// sellHold — удержание указателя над башней для продажи.
type sellHold struct {
	hex     hexmap.Hex
	elapsed float64
}

// NewSession builds the board, scatters walls, computes the first path and
// stocks the shop.
func NewSession(opts Options) *Session {
	if opts.Radius < 1 {
		opts.Radius = config.GridRadius
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Library == nil {
		opts.Library = defs.DefaultLibrary()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	id := uuid.New()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	s := &Session{
		ID:              id,
		HexMap:          hexmap.NewHexMap(opts.Radius),
		Seed:            opts.Seed,
		gold:            config.StartGold,
		lives:           config.StartLives,
		library:         opts.Library,
		rng:             rng,
		shop:            shop.NewShop(rng),
		eventDispatcher: eventDispatcher,
		logger:          opts.Logger.With("session", id.String()),
		waveSystem:      system.NewWaveSystem(eventDispatcher),
		movementSystem:  system.NewMovementSystem(),
		combatSystem:    system.NewCombatSystem(opts.Library),
		chainSystem:     system.NewChainSystem(),
	}

	if opts.WallThreshold > 0 {
		walls := hexmap.ScatterWalls(s.HexMap, opts.Seed, opts.WallThreshold)
		s.logger.Debug("walls scattered", "count", walls, "threshold", opts.WallThreshold)
	}
	path, ok := s.HexMap.ComputePath()
	if !ok {
		// ScatterWalls keeps Start and End connected, so this is a defect.
		s.logger.Error("no initial path", "start", s.HexMap.Start, "end", s.HexMap.End)
	}
	s.path = path

	s.logger.Info("session started", "radius", opts.Radius, "seed", opts.Seed, "path_len", len(path))
	return s
}

// Subscribe registers a listener for one event type.
func (s *Session) Subscribe(eventType event.EventType, listener event.Listener) event.SubscriptionID {
	return s.eventDispatcher.Subscribe(eventType, listener)
}

// Unsubscribe removes a listener added with Subscribe.
func (s *Session) Unsubscribe(eventType event.EventType, id event.SubscriptionID) {
	s.eventDispatcher.Unsubscribe(eventType, id)
}

// Update progresses the session by one frame. Within a frame the order is
// fixed: sell-hold timer, wave and spawning, enemy movement and removal,
// then turret fire. Negative deltas count as zero; after game over the
// session is frozen.
func (s *Session) Update(deltaTime float64) {
	if s.gameOver {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	s.gameTime += deltaTime

	s.updateSellHold(deltaTime)

	before := s.waveSystem.Wave()
	s.waveSystem.Update(deltaTime, s.spawnEnemy, s.liveEnemies)
	if after := s.waveSystem.Wave(); after.Phase != before.Phase {
		s.logger.Info("wave phase changed", "wave", after.Number, "phase", after.Phase.String())
	}

	s.movementSystem.Update(deltaTime, s.enemies)
	s.cleanupEnemies()
	if s.gameOver {
		s.lastShots = nil
		return
	}

	s.lastShots = s.combatSystem.Update(deltaTime, s.turrets, s.enemies)
}

func (s *Session) newID() types.EntityID {
	s.nextID++
	return s.nextID
}

func (s *Session) spawnEnemy(w *component.Wave) {
	if len(s.path) == 0 {
		s.logger.Error("spawn without a path", "wave", w.Number)
		return
	}
	s.enemies = append(s.enemies, &component.Enemy{
		ID:    s.newID(),
		Pos:   s.path[0].Frac(),
		Path:  component.Path{Hexes: s.path},
		Speed: w.EnemySpeed,
		HP:    w.EnemyHP,
		MaxHP: w.EnemyHP,
		Alive: true,
	})
}

func (s *Session) liveEnemies() int {
	n := 0
	for _, e := range s.enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

// cleanupEnemies removes escaped and killed enemies, keeping spawn order.
func (s *Session) cleanupEnemies() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		switch {
		case e.ReachedEnd:
			s.loseLife(e.ID)
		case !e.Alive:
			s.score += e.MaxHP
			s.addGold(config.KillReward)
			s.dispatch(event.EnemyKilled, e.ID)
		default:
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
}

func (s *Session) loseLife(id types.EntityID) {
	s.dispatch(event.EnemyEscaped, id)
	if s.lives > 0 {
		s.lives--
		s.dispatch(event.LivesChanged, s.lives)
	}
	if s.lives <= 0 && !s.gameOver {
		s.gameOver = true
		s.chainSystem.Cancel()
		s.sellHold = nil
		s.logger.Info("game over", "wave", s.waveSystem.Wave().Number, "score", s.score)
		s.dispatch(event.GameOver, s.score)
	}
}

func (s *Session) addGold(amount int) {
	s.gold += amount
	s.dispatch(event.GoldChanged, s.gold)
}

func (s *Session) dispatch(eventType event.EventType, data interface{}) {
	s.eventDispatcher.Dispatch(event.Event{Type: eventType, Data: data})
}

func (s *Session) updateSellHold(deltaTime float64) {
	if s.sellHold == nil {
		return
	}
	s.sellHold.elapsed += deltaTime
	if s.sellHold.elapsed < config.SellHoldDuration-config.TimeEpsilon {
		return
	}
	hex := s.sellHold.hex
	s.sellHold = nil
	s.SellTurret(hex)
}
