package geometry

import "github.com/dla/aggregate/pkg/rng"

// SpawnParams carries the spawn-region sizing an attractor's sampler needs:
// the current spawn-surface diameter and the seed's characteristic size.
type SpawnParams struct {
	SpawnDiam int64
	AttSize   int64
}

// trunc truncates toward zero. Go's int64(f) conversion already truncates
// toward zero, so this is a documentation wrapper, not new behavior.
func trunc(f float64) int64 { return int64(f) }

// Spawn draws a starting Position on the spawning surface for the given
// attractor, dimensionality and current spawn-region size.
func Spawn(stream *rng.RNG, dim Dim, att Attractor, sp SpawnParams) Pos {
	switch att {
	case Point, Circle:
		if dim == Dim2 {
			return spawnPoint2D(stream, sp.SpawnDiam)
		}
		return spawnPoint3D(stream, sp.SpawnDiam)
	case Sphere:
		return spawnPoint3D(stream, sp.SpawnDiam)
	case Line:
		if dim == Dim2 {
			return spawnLine2D(stream, sp)
		}
		return spawnLine3D(stream, sp)
	case Plane:
		return spawnPlane3D(stream, sp)
	default:
		panic("geometry: unknown attractor")
	}
}

func spawnPoint2D(stream *rng.RNG, diam int64) Pos {
	r0 := stream.Float64()
	d := float64(diam)
	half := diam / 2
	if r0 < 0.5 {
		r1 := stream.Float64()
		x := trunc(d * (r1 - 0.5))
		y := half
		if r0 >= 0.25 {
			y = -half
		}
		return P2(x, y)
	}
	r1 := stream.Float64()
	y := trunc(d * (r1 - 0.5))
	x := half
	if r0 >= 0.75 {
		x = -half
	}
	return P2(x, y)
}

func spawnPoint3D(stream *rng.RNG, diam int64) Pos {
	r0 := stream.Float64()
	d := float64(diam)
	half := diam / 2
	switch {
	case r0 < 1.0/3:
		r1, r2 := stream.Float64(), stream.Float64()
		y := trunc(d * (r1 - 0.5))
		z := trunc(d * (r2 - 0.5))
		x := half
		if r0 >= 1.0/6 {
			x = -half
		}
		return P3(x, y, z)
	case r0 < 2.0/3:
		r1, r2 := stream.Float64(), stream.Float64()
		x := trunc(d * (r1 - 0.5))
		z := trunc(d * (r2 - 0.5))
		y := half
		if r0 >= 1.0/3+1.0/6 {
			y = -half
		}
		return P3(x, y, z)
	default:
		r1, r2 := stream.Float64(), stream.Float64()
		x := trunc(d * (r1 - 0.5))
		y := trunc(d * (r2 - 0.5))
		z := half
		if r0 >= 2.0/3+1.0/6 {
			z = -half
		}
		return P3(x, y, z)
	}
}

// lineX computes the LINE/PLANE x-coordinate formula shared by 2D-LINE,
// 3D-LINE and PLANE: x = 2*trunc(att_size*(u-0.5)), truncating toward zero.
func lineX(stream *rng.RNG, attSize int64) int64 {
	u := stream.Float64()
	return 2 * trunc(float64(attSize)*(u-0.5))
}

func spawnLine2D(stream *rng.RNG, sp SpawnParams) Pos {
	x := lineX(stream, sp.AttSize)
	coin := stream.Float64()
	y := sp.SpawnDiam
	if coin < 0.5 {
		y = -sp.SpawnDiam
	}
	return P2(x, y)
}

func spawnLine3D(stream *rng.RNG, sp SpawnParams) Pos {
	x := lineX(stream, sp.AttSize)
	coin := stream.Float64()
	y, z := sp.SpawnDiam, sp.SpawnDiam
	if coin < 0.5 {
		y, z = -sp.SpawnDiam, -sp.SpawnDiam
	}
	return P3(x, y, z)
}

func spawnPlane3D(stream *rng.RNG, sp SpawnParams) Pos {
	x := lineX(stream, sp.AttSize)
	y := lineX(stream, sp.AttSize)
	coin := stream.Float64()
	z := sp.SpawnDiam
	if coin < 0.5 {
		z = -sp.SpawnDiam
	}
	return P3(x, y, z)
}
