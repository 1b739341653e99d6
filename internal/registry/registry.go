// Package registry provides the catalog of arenas (maps) and ship hulls a
// pilot can choose from. Entries register themselves in init() so the
// platform can list and resolve them without hardcoded tables.
package registry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DecorKind selects the background decoration drawn behind a map.
type DecorKind int

const (
	DecorNone DecorKind = iota
	DecorNebula
	DecorBelt
)

// Decor describes a map's background. Stars are drawn on every map;
// Clouds are extra ovals whose size is drawn from [MinSize, MaxSize].
type Decor struct {
	Stars   int
	Kind    DecorKind
	Clouds  int
	MinSize int
	MaxSize int
}

// MapInfo contains metadata about a registered map.
type MapInfo struct {
	Index int
	ID    string
	Title string
	Decor Decor
}

// ShipInfo contains metadata about a registered ship hull.
// Guns is the number of parallel lasers fired per accepted shot.
type ShipInfo struct {
	Index int
	ID    string
	Title string
	Guns  int
}

var (
	maps  = make(map[int]MapInfo)
	ships = make(map[int]ShipInfo)
	mu    sync.RWMutex
)

// RegisterMap adds a map to the catalog.
// Panics if the index or ID is already taken.
func RegisterMap(m MapInfo) {
	mu.Lock()
	defer mu.Unlock()

	for _, existing := range maps {
		if existing.Index == m.Index || existing.ID == m.ID {
			panic(fmt.Sprintf("registry: map %q (%d) already registered", m.ID, m.Index))
		}
	}
	maps[m.Index] = m
}

// RegisterShip adds a ship hull to the catalog.
// Panics if the index or ID is already taken.
func RegisterShip(s ShipInfo) {
	mu.Lock()
	defer mu.Unlock()

	for _, existing := range ships {
		if existing.Index == s.Index || existing.ID == s.ID {
			panic(fmt.Sprintf("registry: ship %q (%d) already registered", s.ID, s.Index))
		}
	}
	if s.Guns < 1 {
		s.Guns = 1
	}
	ships[s.Index] = s
}

// Maps returns all registered maps, sorted by index.
func Maps() []MapInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MapInfo, 0, len(maps))
	for _, m := range maps {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Index < result[j].Index
	})
	return result
}

// Ships returns all registered ship hulls, sorted by index.
func Ships() []ShipInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShipInfo, 0, len(ships))
	for _, s := range ships {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Index < result[j].Index
	})
	return result
}

// Map looks up a map by index.
func Map(index int) (MapInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := maps[index]
	return m, ok
}

// Ship looks up a ship hull by index.
func Ship(index int) (ShipInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := ships[index]
	return s, ok
}

// ResolveMap finds a map by ID, title or numeric index (case-insensitive).
func ResolveMap(ref string) (MapInfo, error) {
	for _, m := range Maps() {
		if matches(ref, m.Index, m.ID, m.Title) {
			return m, nil
		}
	}
	return MapInfo{}, fmt.Errorf("registry: unknown map %q", ref)
}

// ResolveShip finds a ship hull by ID, title or numeric index (case-insensitive).
func ResolveShip(ref string) (ShipInfo, error) {
	for _, s := range Ships() {
		if matches(ref, s.Index, s.ID, s.Title) {
			return s, nil
		}
	}
	return ShipInfo{}, fmt.Errorf("registry: unknown ship %q", ref)
}

func matches(ref string, index int, id, title string) bool {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		return n == index
	}
	return strings.EqualFold(ref, id) || strings.EqualFold(ref, title)
}
