// internal/system/wave.go
package system

import (
	"hex-defense/internal/component"
	"hex-defense/internal/config"
	"hex-defense/internal/defs"
	"hex-defense/internal/event"
)

// Spawner выпускает одного врага с параметрами текущей волны.
type Spawner func(wave *component.Wave)

// WaveSystem ведёт цикл подготовка → атака → подготовка следующей волны.
// Конечного состояния нет: игру заканчивает только сессия, когда жизни
// падают до нуля.
type WaveSystem struct {
	wave            component.Wave
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{eventDispatcher: eventDispatcher}
	ws.prepare(1)
	return ws
}

// Wave returns a copy of the current wave state.
func (s *WaveSystem) Wave() component.Wave {
	return s.wave
}

// Update advances the state machine by deltaTime. live reports how many
// enemies are still on the field; it is asked only once every enemy of the
// wave has been spawned.
//
// Time is never dropped: the part of a frame that finishes the countdown
// feeds the spawn timer, and a long frame may release several enemies.
func (s *WaveSystem) Update(deltaTime float64, spawn Spawner, live func() int) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	w := &s.wave

	if w.Phase == component.Preparing {
		w.Countdown -= deltaTime
		if w.Countdown > config.TimeEpsilon {
			return
		}
		overflow := -w.Countdown
		w.Countdown = 0
		w.Phase = component.Active
		w.EnemiesSpawned = 0
		// Первый враг выходит сразу при старте волны.
		w.SpawnTimer = -overflow
		s.dispatch()
	} else {
		w.SpawnTimer -= deltaTime
	}

	for w.SpawnTimer <= config.TimeEpsilon && w.EnemiesSpawned < w.EnemyCount {
		if spawn != nil {
			spawn(w)
		}
		w.EnemiesSpawned++
		w.SpawnTimer += w.SpawnInterval
	}

	if w.EnemiesSpawned >= w.EnemyCount && live() == 0 {
		s.prepare(w.Number + 1)
		s.dispatch()
	}
}

func (s *WaveSystem) prepare(number int) {
	def := defs.WaveFor(number)
	s.wave = component.Wave{
		Number:        def.Number,
		Phase:         component.Preparing,
		Countdown:     config.PreparationTime,
		EnemyCount:    def.Count,
		EnemyHP:       def.Health,
		EnemySpeed:    def.Speed,
		SpawnInterval: def.SpawnInterval,
	}
}

func (s *WaveSystem) dispatch() {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveChanged, Data: s.wave})
	}
}
