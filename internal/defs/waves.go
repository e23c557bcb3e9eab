// internal/defs/waves.go
package defs

import (
	"math"

	"hex-defense/internal/config"
)

// WaveDefinition описывает параметры одной волны врагов.
type WaveDefinition struct {
	Number        int
	Count         int     // Количество врагов в волне
	Health        int     // Здоровье каждого врага
	Speed         float64 // Гексов в секунду
	SpawnInterval float64 // Секунд между появлением врагов
}

// WaveFor derives the parameters of wave n. Waves are generated from the
// number alone, so there is no table to run out of.
func WaveFor(n int) WaveDefinition {
	if n < 1 {
		n = 1
	}
	return WaveDefinition{
		Number:        n,
		Count:         config.BaseEnemyCount + config.EnemyCountPerWave*n,
		Health:        config.BaseEnemyHealth + config.EnemyHealthPerWave*n,
		Speed:         config.BaseEnemySpeed + config.EnemySpeedPerWave*float64(n),
		SpawnInterval: math.Max(config.MinSpawnInterval, config.BaseSpawnInterval-config.SpawnIntervalStep*float64(n)),
	}
}
