package geom

import "math"

// Quat is a unit quaternion orientation (W + Xi + Yj + Zk).
type Quat struct {
	W, X, Y, Z float64
}

// IdentityQuat is the canonical forward-facing orientation (-Z forward).
func IdentityQuat() Quat { return Quat{W: 1} }

// QuatFromYaw builds a rotation of yaw radians around the world Y axis.
func QuatFromYaw(yaw float64) Quat {
	half := yaw / 2
	return Quat{W: math.Cos(half), Y: math.Sin(half)}
}

func (q Quat) Mul(o Quat) Quat {
	return Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize rescales to unit length; a degenerate quaternion collapses
// to the identity.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n == 0 {
		return IdentityQuat()
	}
	return Quat{q.W / n, q.X / n, q.Y / n, q.Z / n}
}

// RotateVec rotates v by q.
func (q Quat) RotateVec(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	s := q.W
	return u.Scale(2 * u.Dot(v)).
		Add(v.Scale(s*s - u.Dot(u))).
		Add(u.Cross(v).Scale(2 * s))
}

// Yaw extracts the rotation around the world Y axis.
func (q Quat) Yaw() float64 {
	siny := 2 * (q.W*q.Y + q.Z*q.X)
	cosy := 1 - 2*(q.Y*q.Y+q.X*q.X)
	return math.Atan2(siny, cosy)
}

// Forward is the local -Z axis expressed in world space.
func (q Quat) Forward() Vec3 { return q.RotateVec(Vec3{Z: -1}) }

// Right is the local +X axis expressed in world space.
func (q Quat) Right() Vec3 { return q.RotateVec(Vec3{X: 1}) }
