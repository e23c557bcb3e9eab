// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 30.0
	GridRadius   = 8
	MaxDeltaTime = 0.06
	// Таймер истёк, если на нём осталось не больше TimeEpsilon.
	TimeEpsilon  = 1e-9

	// Экономика
	StartGold       = 100
	StartLives      = 20
	KillReward      = 5
	RerollCost      = 10
	ItemCostPerCell = 10
	ShopSlots       = 3
	MaxItemCells    = 3

	// Волны
	PreparationTime    = 5.0
	BaseEnemyCount     = 10
	EnemyCountPerWave  = 2
	BaseEnemyHealth    = 10
	EnemyHealthPerWave = 5
	BaseEnemySpeed     = 2.0 // гексов в секунду
	EnemySpeedPerWave  = 0.1
	BaseSpawnInterval  = 1.0
	SpawnIntervalStep  = 0.05
	MinSpawnInterval   = 0.2

	// Башни
	TurretBaseRange     = 4.0
	SellBaseRefund      = 5
	SellRefundPerRange  = 2
	SellHoldDuration    = 0.6
	MinChainLength      = 3
	ChainCooldownFactor = 0.8
	BlueSlowFactor      = 0.8

	// Генерация стен: значение шума выше порога превращает клетку в стену.
	WallThreshold = 0.78

	// HUD
	HUDMarginX         = 16
	HUDMarginY         = 16
	HUDLineHeight      = 18
	ShopSlotSize       = 96
	ShopSlotGap        = 12
	ShopPreviewSize    = 12.0
	TurretRadiusFactor = 0.35
	EnemyRadiusFactor  = 0.3
	StrokeWidth        = 2.0
)

var (
	BackgroundColor = color.RGBA{11, 17, 33, 255}
	EmptyColor      = color.RGBA{30, 41, 59, 255}
	PathColor       = color.RGBA{51, 65, 85, 255}
	WallColor       = color.RGBA{100, 100, 110, 255}
	StartColor      = color.RGBA{16, 185, 129, 255}
	EndColor        = color.RGBA{239, 68, 68, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	EnemyColor      = color.RGBA{255, 255, 255, 255}
	HPBackColor     = color.RGBA{200, 30, 30, 255}
	HPFrontColor    = color.RGBA{16, 185, 129, 255}
	ChainColor      = color.RGBA{255, 215, 0, 255}
	SellHoldColor   = color.RGBA{255, 120, 40, 255}
	TurretColors    = []color.RGBA{
		{239, 68, 68, 255},  // Red
		{34, 197, 94, 255},  // Green
		{59, 130, 246, 255}, // Blue
	}
	PreparingColor = color.RGBA{70, 130, 180, 220}
	ActiveColor    = color.RGBA{220, 60, 60, 220}
)
