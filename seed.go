package simplex

import "math"

// basePerm is Ken Perlin's reference permutation of 0..255. Seeding never
// shuffles it; it only XORs every entry with one of two seed bytes.
var basePerm = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Key returns the part of seed that actually reaches the permutation
// tables: the low byte in bits 0-7 and the second byte in bits 8-15.
// Seeds with equal keys build identical generators, so at most 65536
// distinct noise fields exist. This is a weak seeding scheme and must not
// be used where unpredictability matters.
func Key(seed float64) (uint16, error) {
	if err := checkSeed(seed); err != nil {
		return 0, err
	}
	return seedKey(seed), nil
}

func seedKey(v float64) uint16 {
	// A value in the open unit interval is a fractional seed.
	if v > 0 && v < 1 {
		v *= 65536
	}
	f := math.Floor(v)
	s := toInt32(f)
	// Small seeds would leave the second byte empty; repeat the low byte.
	if f < 256 {
		s |= s << 8
	}
	return uint16(s)
}

// toInt32 reduces an integral float to a signed 32-bit value modulo 2^32,
// so huge and negative seeds and cell indices keep the same low bits the
// legacy 32-bit bitwise arithmetic produced.
func toInt32(f float64) int32 {
	if f >= math.MinInt32 && f <= math.MaxInt32 {
		return int32(f)
	}
	m := math.Mod(f, 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}

func buildTables(g *Generator, key uint16) {
	lo, hi := uint8(key), uint8(key>>8)
	for i := 0; i < 256; i++ {
		var v uint8
		if i&1 == 1 {
			v = basePerm[i] ^ lo
		} else {
			v = basePerm[i] ^ hi
		}
		g.perm[i], g.perm[i+256] = v, v
		g.grad[i], g.grad[i+256] = gradients[v%12], gradients[v%12]
	}
	g.key = key
}
