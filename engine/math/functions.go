package math

import (
	m "math"
	"time"

	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

var rand_seeded bool = false

/**
 * Note that these are here in order to prevent having to import the
 * entire math package everywhere.
 */
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

func Random() int32 {
	if !rand_seeded {
		rand.Seed(uint64(time.Now().UnixNano()))
		rand_seeded = true
	}
	return rand.Int31()
}

func RandomInRange(min, max int32) int32 {
	if !rand_seeded {
		rand.Seed(uint64(time.Now().UnixNano()))
		rand_seeded = true
	}
	return (rand.Int31() % (max - min + 1)) + min
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func NewVec2Zero() Vec2 {
	return Vec2{}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

/**
 * @brief Compares all elements of this vector and other and ensures the
 * difference is less than tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func NewVec3Zero() Vec3 {
	return Vec3{}
}

func NewVec3One() Vec3 {
	return Vec3{X: 1, Y: 1, Z: 1}
}

func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the provided vector. A zero-length
 * vector is returned unchanged.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{
		X: v.X / length,
		Y: v.Y / length,
		Z: v.Z / length,
	}
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

/**
 * @brief Compares all elements of this vector and other and ensures the
 * difference is less than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	out := Vec3{}
	out.X = v.X*m.Data[0+0] + v.Y*m.Data[4+0] + v.Z*m.Data[8+0] + 1.0*m.Data[12+0]
	out.Y = v.X*m.Data[0+1] + v.Y*m.Data[4+1] + v.Z*m.Data[8+1] + 1.0*m.Data[12+1]
	out.Z = v.X*m.Data[0+2] + v.Y*m.Data[4+2] + v.Z*m.Data[8+2] + 1.0*m.Data[12+2]
	return out
}

/**
 * @brief Transform v by m as a direction, ignoring the translation row
 * (as if a w component with a value of 0.0f were there).
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) TransformDirection(m Mat4) Vec3 {
	out := Vec3{}
	out.X = v.X*m.Data[0+0] + v.Y*m.Data[4+0] + v.Z*m.Data[8+0]
	out.Y = v.X*m.Data[0+1] + v.Y*m.Data[4+1] + v.Z*m.Data[8+1]
	out.Z = v.X*m.Data[0+2] + v.Y*m.Data[4+2] + v.Z*m.Data[8+2]
	return out
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

func NewVec4Zero() Vec4 {
	return Vec4{}
}

func NewVec4One() Vec4 {
	return Vec4{X: 1, Y: 1, Z: 1, W: 1}
}

func (v Vec4) ToVec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

/**
 * @brief Compares all elements of this vector and other and ensures the
 * difference is less than tolerance.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	if kabs(v.W-other.W) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying this matrix and other.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := NewMat4Identity()

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->columns)
 *
 * @param matrix The matrix to be transposed.
 * @return A transposed copy of the provided matrix.
 */
func NewMat4Transposed(matrix Mat4) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = matrix.Data[0]
	out_matrix.Data[1] = matrix.Data[4]
	out_matrix.Data[2] = matrix.Data[8]
	out_matrix.Data[3] = matrix.Data[12]
	out_matrix.Data[4] = matrix.Data[1]
	out_matrix.Data[5] = matrix.Data[5]
	out_matrix.Data[6] = matrix.Data[9]
	out_matrix.Data[7] = matrix.Data[13]
	out_matrix.Data[8] = matrix.Data[2]
	out_matrix.Data[9] = matrix.Data[6]
	out_matrix.Data[10] = matrix.Data[10]
	out_matrix.Data[11] = matrix.Data[14]
	out_matrix.Data[12] = matrix.Data[3]
	out_matrix.Data[13] = matrix.Data[7]
	out_matrix.Data[14] = matrix.Data[11]
	out_matrix.Data[15] = matrix.Data[15]
	return out_matrix
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := mt.Data

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := 1.0 / (m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

// ------------------------------------------
// Quaternion
// ------------------------------------------

func NewQuatIdentity() Quaternion {
	return Quaternion{W: 1.0}
}

/**
 * @brief Returns the normal of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return ksqrt(
		q.X*q.X +
			q.Y*q.Y +
			q.Z*q.Z +
			q.W*q.W)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

/**
 * @brief Multiplies the provided quaternions.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	half_angle := 0.5 * angle
	s := ksin(half_angle)
	c := kcos(half_angle)
	return Quaternion{X: s * axis.X, Y: s * axis.Y, Z: s * axis.Z, W: c}
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	out_matrix := NewMat4Identity()

	// https://stackoverflow.com/questions/1556260/convert-quaternion-rotation-to-rotation-matrix

	n := q.Normalize()

	out_matrix.Data[0] = 1.0 - 2.0*n.Y*n.Y - 2.0*n.Z*n.Z
	out_matrix.Data[1] = 2.0*n.X*n.Y - 2.0*n.Z*n.W
	out_matrix.Data[2] = 2.0*n.X*n.Z + 2.0*n.Y*n.W

	out_matrix.Data[4] = 2.0*n.X*n.Y + 2.0*n.Z*n.W
	out_matrix.Data[5] = 1.0 - 2.0*n.X*n.X - 2.0*n.Z*n.Z
	out_matrix.Data[6] = 2.0*n.Y*n.Z - 2.0*n.X*n.W

	out_matrix.Data[8] = 2.0*n.X*n.Z - 2.0*n.Y*n.W
	out_matrix.Data[9] = 2.0*n.Y*n.Z + 2.0*n.X*n.W
	out_matrix.Data[10] = 1.0 - 2.0*n.X*n.X - 2.0*n.Y*n.Y

	return out_matrix
}
