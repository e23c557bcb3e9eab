// internal/component/game_state.go
package component

// WavePhase — фаза волны
type WavePhase int

const (
	Preparing WavePhase = iota
	Active
)

func (p WavePhase) String() string {
	if p == Active {
		return "active"
	}
	return "preparing"
}
