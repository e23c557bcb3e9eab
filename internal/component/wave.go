// internal/component/wave.go
package component

// Wave хранит состояние текущей волны.
type Wave struct {
	Number         int
	Phase          WavePhase
	Countdown      float64 // Осталось до начала волны (Preparing)
	EnemyCount     int
	EnemiesSpawned int
	EnemyHP        int
	EnemySpeed     float64
	SpawnInterval  float64
	SpawnTimer     float64 // Осталось до следующего врага (Active)
}

// Remaining is how many enemies of this wave are still to be spawned.
func (w *Wave) Remaining() int {
	return w.EnemyCount - w.EnemiesSpawned
}
