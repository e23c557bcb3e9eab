// pkg/hexmap/pathfinding.go
package hexmap

import (
	"github.com/Travis-Britz/structures/stack"
)

// traversable учитывает blocked (новые препятствия) и freed (клетки, которые
// освободятся, даже если сейчас там башня).
func traversable(hm *HexMap, h Hex, blocked, freed map[Hex]bool) bool {
	if blocked[h] {
		return false
	}
	if freed[h] {
		return hm.Contains(h)
	}
	return hm.IsPassable(h)
}

// FindPath находит кратчайший путь от start до goal поиском в ширину.
// Соседи раскрываются в порядке Directions, поэтому из нескольких путей
// одинаковой длины всегда выбирается один и тот же. Гексы из blocked
// считаются препятствиями наравне со стенами и башнями.
// Если пути нет, возвращает nil, false — частичный путь не возвращается.
func FindPath(hm *HexMap, start, goal Hex, blocked map[Hex]bool) ([]Hex, bool) {
	if !traversable(hm, start, blocked, nil) || !traversable(hm, goal, blocked, nil) {
		return nil, false
	}

	queue := []Hex{start}
	cameFrom := map[Hex]Hex{}
	visited := map[Hex]bool{start: true}

	found := false
	head := 0
	for head < len(queue) {
		current := queue[head]
		head++

		if current == goal {
			found = true
			break
		}

		for _, next := range current.AllPossibleNeighbors() {
			if visited[next] || !traversable(hm, next, blocked, nil) {
				continue
			}
			visited[next] = true
			cameFrom[next] = current
			queue = append(queue, next)
		}
	}

	if !found {
		return nil, false
	}
	return reconstructPath(cameFrom, start, goal), true
}

func reconstructPath(cameFrom map[Hex]Hex, start, goal Hex) []Hex {
	path := []Hex{goal}
	for curr := goal; curr != start; {
		curr = cameFrom[curr]
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// IsConnected reports whether goal is reachable from start. It only answers
// reachability, so it floods depth-first instead of tracking predecessors.
func IsConnected(hm *HexMap, start, goal Hex, blocked map[Hex]bool) bool {
	return isConnected(hm, start, goal, blocked, nil)
}

func isConnected(hm *HexMap, start, goal Hex, blocked, freed map[Hex]bool) bool {
	if !traversable(hm, start, blocked, freed) || !traversable(hm, goal, blocked, freed) {
		return false
	}

	frontier := &stack.Stack[Hex]{}
	visited := map[Hex]bool{start: true}

	for current, more := start, true; more; current, more = frontier.Pop() {
		if current == goal {
			return true
		}
		for _, next := range current.AllPossibleNeighbors() {
			if visited[next] || !traversable(hm, next, blocked, freed) {
				continue
			}
			visited[next] = true
			frontier.Push(next)
		}
	}
	return false
}

// ComputePath пересчитывает маршрут Start→End и перекрашивает клетки:
// старые клетки пути становятся пустыми, клетки нового пути — CellPath.
// При отсутствии пути карта не меняется.
func (hm *HexMap) ComputePath() ([]Hex, bool) {
	path, ok := FindPath(hm, hm.Start, hm.End, nil)
	if !ok {
		return nil, false
	}

	for _, h := range hm.order {
		if c := hm.Tiles[h]; c.Type == CellPath {
			c.Type = CellEmpty
		}
	}
	for _, h := range path {
		hm.Tiles[h].Type = CellPath
	}
	return path, true
}
