// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"hex-defense/internal/app"
	"hex-defense/internal/component"
	"hex-defense/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и
// обратный отсчёт подготовки.
type WaveIndicator struct {
	X, Y     int
	Color    color.RGBA
	BossRed  color.RGBA
	fontFace font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:        x,
		Y:        y,
		Color:    config.TextLightColor,
		BossRed:  config.EndColor,
		fontFace: fontFace,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label is the indicator text for a wave.
func (i *WaveIndicator) Label(w app.WaveView) string {
	if w.Phase == component.Preparing {
		return fmt.Sprintf("Wave %s in %.1fs", toRoman(w.Number), w.Countdown)
	}
	return fmt.Sprintf("Wave %s  %d left", toRoman(w.Number), w.Remaining)
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, w app.WaveView) {
	if w.Number <= 0 {
		return
	}
	textColor := i.Color
	if w.Number%10 == 0 {
		textColor = i.BossRed // каждая десятая волна
	}
	text.Draw(screen, i.Label(w), i.fontFace, i.X, i.Y, textColor)
}
