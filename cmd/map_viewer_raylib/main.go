// cmd/map_viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"hex-defense/internal/config"
	"hex-defense/pkg/hexmap"
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

// board — сгенерированное поле и его маршрут.
type board struct {
	hexMap    *hexmap.HexMap
	path      []hexmap.Hex
	seed      int64
	threshold float64
	walls     int
}

func generate(radius int, seed int64, threshold float64) board {
	hm := hexmap.NewHexMap(radius)
	walls := hexmap.ScatterWalls(hm, seed, threshold)
	path, _ := hm.ComputePath()
	return board{hexMap: hm, path: path, seed: seed, threshold: threshold, walls: walls}
}

func cellColor(b board, c *hexmap.Cell) rl.Color {
	switch {
	case c.Hex == b.hexMap.Start:
		return rl.SkyBlue
	case c.Hex == b.hexMap.End:
		return rl.Red
	}
	switch c.Type {
	case hexmap.CellWall:
		return rl.Gray
	case hexmap.CellPath:
		return rl.Gold
	default:
		return rl.NewColor(100, 140, 110, 255)
	}
}

func main() {
	radius := flag.Int("radius", config.GridRadius, "board radius in hexes")
	seed := flag.Int64("seed", time.Now().UnixNano(), "noise seed")
	threshold := flag.Float64("walls", config.WallThreshold, "noise threshold for walls")
	flag.Parse()

	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(10, 10, 20, 255)

	rl.InitWindow(screenWidth, screenHeight, "Board Viewer | Q/E rotate, wheel tilt, N new seed, +/- wall threshold")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(80, 180, 180)
	topDownPos := rl.NewVector3(0, 400, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(35.0)
	cameraAngleT := float32(0.5)

	const coordScale = 0.5
	const hexSizeRender = 10.0
	layout := hexmap.NewLayout(hexSizeRender, 0, 0)

	b := generate(*radius, *seed, *threshold)

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if rl.IsKeyPressed(rl.KeyN) {
			b = generate(*radius, b.seed+1, b.threshold)
		}
		if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
			b = generate(*radius, b.seed, math.Min(1, b.threshold+0.02))
		}
		if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
			b = generate(*radius, b.seed, math.Max(0, b.threshold-0.02))
		}

		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		for _, h := range b.hexMap.Hexes() {
			c, _ := b.hexMap.Get(h)
			pixelX, pixelY := layout.HexToPixel(h)
			x := float32(pixelX) * coordScale
			z := float32(pixelY) * coordScale
			r := float32(hexSizeRender * 0.5)
			hexPos := rl.NewVector3(x, 0, z)

			distance := rl.Vector3Distance(camera.Position, hexPos)
			fogFactor := (distance - 150) / (350 - 150)
			fogFactor = float32(math.Max(0, math.Min(1, float64(fogFactor))))
			finalColor := ColorLerp(cellColor(b, c), backgroundColor, fogFactor)

			height := float32(2.0)
			if c.Type == hexmap.CellWall {
				height = 8
			}
			bottom := rl.NewVector3(x, -1.0, z)
			rl.DrawCylinder(bottom, r, r, height, 6, finalColor)
			rl.DrawCylinderWires(bottom, r, r, height, 6, rl.DarkGray)
		}

		rl.EndMode3D()

		rl.DrawText(fmt.Sprintf("seed %d  threshold %.2f  walls %d  path %d", b.seed, b.threshold, b.walls, len(b.path)), 10, 10, 20, rl.White)
		rl.DrawFPS(10, 40)
		rl.EndDrawing()
	}

	rl.CloseWindow()
}
