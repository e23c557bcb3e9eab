// internal/event/types.go
package event

const (
	GoldChanged  EventType = "GoldChanged"  // Data: int, новое значение
	LivesChanged EventType = "LivesChanged" // Data: int
	WaveChanged  EventType = "WaveChanged"  // Data: component.Wave (копия)
	GridChanged  EventType = "GridChanged"  // Data: []hexmap.Hex, новый путь
	EnemyKilled  EventType = "EnemyKilled"  // Data: types.EntityID
	EnemyEscaped EventType = "EnemyEscaped" // Data: types.EntityID
	TurretPlaced EventType = "TurretPlaced" // Data: []types.EntityID
	TurretSold   EventType = "TurretSold"   // Data: types.EntityID
	TurretMoved  EventType = "TurretMoved"  // Data: types.EntityID
	ChainMerged  EventType = "ChainMerged"  // Data: types.EntityID выжившей башни
	GameOver     EventType = "GameOver"
)
