package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// DecorItem is one static background element.
type DecorItem struct {
	Kind registry.DecorKind // DecorNone for stars
	X, Y int
	Size int
}

// GenerateDecor builds a map's background. The same map index always
// yields the same layout.
func GenerateDecor(m registry.MapInfo, arenaW, arenaH int) []DecorItem {
	rng := rand.New(rand.NewSource(int64(m.Index)))
	d := m.Decor

	items := make([]DecorItem, 0, d.Stars+d.Clouds)
	for range d.Stars {
		items = append(items, DecorItem{
			Kind: registry.DecorNone,
			X:    rng.Intn(arenaW),
			Y:    rng.Intn(arenaH),
			Size: rng.Intn(3) + 1,
		})
	}

	if d.Kind == registry.DecorNone || d.Clouds <= 0 {
		return items
	}
	span := max(d.MaxSize-d.MinSize+1, 1)
	for range d.Clouds {
		items = append(items, DecorItem{
			Kind: d.Kind,
			X:    rng.Intn(arenaW),
			Y:    rng.Intn(arenaH),
			Size: d.MinSize + rng.Intn(span),
		})
	}
	return items
}
