package geometry

import "math"

// SeedPositions materializes the initial attractor geometry. attSize is
// the seed's characteristic size: callers must pass 1 for POINT
// regardless of any configured size, and the seed's linear dimension
// otherwise.
func SeedPositions(dim Dim, att Attractor, attSize int64) []Pos {
	switch att {
	case Point:
		if dim == Dim2 {
			return []Pos{P2(0, 0)}
		}
		return []Pos{P3(0, 0, 0)}
	case Line:
		return seedLine(dim, attSize)
	case Circle:
		return seedCircle(dim, attSize)
	case Sphere:
		return seedSphere(attSize)
	case Plane:
		return seedPlane(attSize)
	default:
		panic("geometry: unknown attractor")
	}
}

func seedLine(dim Dim, attSize int64) []Pos {
	half := attSize / 2
	out := make([]Pos, 0, attSize)
	for i := int64(0); i < attSize; i++ {
		x := i - half
		if dim == Dim2 {
			out = append(out, P2(x, 0))
		} else {
			out = append(out, P3(x, 0, 0))
		}
	}
	return out
}

func seedCircle(dim Dim, attSize int64) []Pos {
	step := 1.0 / float64(attSize)
	var out []Pos
	for theta := 0.0; theta <= 2*math.Pi; theta += step {
		x := int64(float64(attSize) * math.Cos(theta))
		y := int64(float64(attSize) * math.Sin(theta))
		if dim == Dim2 {
			out = append(out, P2(x, y))
		} else {
			out = append(out, P3(x, y, 0))
		}
	}
	return out
}

func seedSphere(attSize int64) []Pos {
	step := 1.0 / float64(attSize)
	var out []Pos
	for phi := 0.0; phi <= 2*math.Pi; phi += step {
		for theta := -math.Pi / 2; theta <= math.Pi/2; theta += step {
			x := int64(float64(attSize) * math.Sin(theta) * math.Cos(phi))
			y := int64(float64(attSize) * math.Sin(theta) * math.Sin(phi))
			z := int64(float64(attSize) * math.Cos(theta))
			out = append(out, P3(x, y, z))
		}
	}
	return out
}

func seedPlane(attSize int64) []Pos {
	half := attSize / 2
	out := make([]Pos, 0, attSize*attSize)
	for i := int64(0); i < attSize; i++ {
		for j := int64(0); j < attSize; j++ {
			out = append(out, P3(i-half, j-half, 0))
		}
	}
	return out
}
