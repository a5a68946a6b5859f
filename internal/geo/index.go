package geo

import (
	"context"
	"math"
	"sort"
	"sync"

	"courtcrowd/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// CourtDistance is a court matched by a proximity query.
type CourtDistance struct {
	Court          *entity.Court
	DistanceMeters float64
}

// CourtIndex answers "which courts are near this point" queries.
type CourtIndex interface {
	// Rebuild replaces the indexed catalog.
	Rebuild(ctx context.Context, courts []*entity.Court) error

	// Within returns the courts within radiusMeters of (lat, lng), closest first.
	Within(ctx context.Context, lat, lng, radiusMeters float64) ([]CourtDistance, error)

	// Size returns the number of indexed courts.
	Size() int
}

// GridIndex implements a simple grid-based court index.
// Cells are fixed-size in degrees; a query visits every cell overlapping the
// bound around the query point and filters candidates by exact distance.
type GridIndex struct {
	mu       sync.RWMutex
	courts   []*entity.Court
	grid     map[gridKey][]int // maps grid cell to court indices
	cellSize float64           // grid cell size in degrees
}

type gridKey struct {
	latCell int
	lngCell int
}

// NewGridIndex creates a new grid-based court index.
// cellSizeKm determines the grid cell size (smaller = more cells, fewer candidates per query).
func NewGridIndex(cellSizeKm float64) *GridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = 1
	}

	// 1 degree latitude ≈ 111 km
	return &GridIndex{
		grid:     make(map[gridKey][]int),
		cellSize: cellSizeKm / 111.0,
	}
}

// Rebuild constructs the grid from courts.
func (g *GridIndex) Rebuild(_ context.Context, courts []*entity.Court) error {
	grid := make(map[gridKey][]int, len(courts))
	for idx, court := range courts {
		p := court.Point()
		key := g.key(p.Lat(), p.Lon())
		grid[key] = append(grid[key], idx)
	}

	g.mu.Lock()
	g.courts = courts
	g.grid = grid
	g.mu.Unlock()

	return nil
}

// Within returns the courts within radiusMeters of the given coordinate, closest first.
func (g *GridIndex) Within(_ context.Context, lat, lng, radiusMeters float64) ([]CourtDistance, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || radiusMeters < 0 {
		return nil, nil
	}

	bound := orbgeo.NewBoundAroundPoint(orb.Point{lng, lat}, radiusMeters)
	minKey := g.key(bound.Min.Lat(), bound.Min.Lon())
	maxKey := g.key(bound.Max.Lat(), bound.Max.Lon())

	g.mu.RLock()
	defer g.mu.RUnlock()

	var results []CourtDistance
	for latCell := minKey.latCell; latCell <= maxKey.latCell; latCell++ {
		for lngCell := minKey.lngCell; lngCell <= maxKey.lngCell; lngCell++ {
			for _, idx := range g.grid[gridKey{latCell: latCell, lngCell: lngCell}] {
				court := g.courts[idx]
				dist := DistanceMeters(lat, lng, court.Latitude, court.Longitude)
				if dist <= radiusMeters {
					results = append(results, CourtDistance{Court: court, DistanceMeters: dist})
				}
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	return results, nil
}

// Size returns the number of courts in the index.
func (g *GridIndex) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.courts)
}

func (g *GridIndex) key(lat, lng float64) gridKey {
	return gridKey{
		latCell: int(math.Floor(lat / g.cellSize)),
		lngCell: int(math.Floor(lng / g.cellSize)),
	}
}
