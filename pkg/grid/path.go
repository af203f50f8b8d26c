// pkg/grid/path.go
package grid

import "math"

// Point — точка в мировых координатах.
type Point struct {
	X, Y float64
}

// Path — ломаная, по которой движутся враги. Хранит предрассчитанные
// длины сегментов, чтобы позицию по пройденной дистанции можно было
// находить за один проход.
type Path struct {
	points  []Point
	segLens []float64
	total   float64
}

// NewPath строит путь по опорным точкам. Путь из менее чем двух точек
// вырожден: Length равен нулю, PointAt всегда возвращает первую точку.
func NewPath(points []Point) *Path {
	p := &Path{points: points}
	if len(points) < 2 {
		return p
	}
	p.segLens = make([]float64, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		dx := points[i+1].X - points[i].X
		dy := points[i+1].Y - points[i].Y
		p.segLens[i] = math.Hypot(dx, dy)
		p.total += p.segLens[i]
	}
	return p
}

// Length — полная длина пути.
func (p *Path) Length() float64 {
	return p.total
}

// Start — первая точка пути.
func (p *Path) Start() Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[0]
}

// Points возвращает опорные точки (для отрисовки дорожки).
func (p *Path) Points() []Point {
	return p.points
}

// PointAt возвращает точку на пути на расстоянии dist от начала.
// Дистанция за пределами пути прижимается к концам.
func (p *Path) PointAt(dist float64) Point {
	if len(p.points) == 0 {
		return Point{}
	}
	if dist <= 0 || len(p.points) == 1 {
		return p.points[0]
	}
	if dist >= p.total {
		return p.points[len(p.points)-1]
	}
	for i, segLen := range p.segLens {
		if dist > segLen {
			dist -= segLen
			continue
		}
		t := 0.0
		if segLen > 0 {
			t = dist / segLen
		}
		a, b := p.points[i], p.points[i+1]
		return Point{
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
		}
	}
	return p.points[len(p.points)-1]
}
