package generation

import (
	"container/heap"

	"ebiten-timecrawl/components"
)

// FindPath runs A* over the walkable tiles of a map with 4-directional steps.
// The path includes both endpoints; ok is false when the goal is unreachable.
func FindPath(gameMap *components.GameMap, start, goal components.TileCoord) (path []components.TileCoord, ok bool) {
	if !gameMap.IsWalkable(start.X, start.Y) || !gameMap.IsWalkable(goal.X, goal.Y) {
		return nil, false
	}

	openSet := make(pathQueue, 0)
	heap.Init(&openSet)

	cameFrom := make(map[components.TileCoord]components.TileCoord)
	gScore := map[components.TileCoord]int{start: 0}
	inOpenSet := map[components.TileCoord]bool{start: true}
	heap.Push(&openSet, &pathItem{tile: start, priority: manhattan(start, goal)})

	for openSet.Len() > 0 {
		current := heap.Pop(&openSet).(*pathItem).tile
		inOpenSet[current] = false

		if current == goal {
			return reconstructPath(cameFrom, current), true
		}

		for _, neighbor := range []components.TileCoord{
			current.Offset(1, 0),
			current.Offset(-1, 0),
			current.Offset(0, 1),
			current.Offset(0, -1),
		} {
			if !gameMap.IsWalkable(neighbor.X, neighbor.Y) {
				continue
			}

			tentative := gScore[current] + 1
			if known, seen := gScore[neighbor]; seen && tentative >= known {
				continue
			}
			cameFrom[neighbor] = current
			gScore[neighbor] = tentative
			if !inOpenSet[neighbor] {
				heap.Push(&openSet, &pathItem{tile: neighbor, priority: tentative + manhattan(neighbor, goal)})
				inOpenSet[neighbor] = true
			}
		}
	}

	return nil, false
}

// PathLength is the number of steps between two tiles, or -1 when no path exists
func PathLength(gameMap *components.GameMap, start, goal components.TileCoord) int {
	path, ok := FindPath(gameMap, start, goal)
	if !ok {
		return -1
	}
	return len(path) - 1
}

func reconstructPath(cameFrom map[components.TileCoord]components.TileCoord, current components.TileCoord) []components.TileCoord {
	path := []components.TileCoord{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b components.TileCoord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type pathItem struct {
	tile     components.TileCoord
	priority int
	index    int
}

// pathQueue is a min-heap of open tiles ordered by f-score
type pathQueue []*pathItem

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	return pq[i].priority < pq[j].priority
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	item := x.(*pathItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
