package builtin

import (
	"crypto/subtle"
	"encoding/hex"
	"math/bits"
	"os"

	"github.com/th3f0rk/betterpython/value"
)

// sha256 and md5 are hand-rolled reference implementations rather than
// crypto/sha256 and crypto/md5: spec.md's non-goals call these out as
// primitives, not FIPS-audited digests, so the dispatch table owns the
// full block schedule instead of delegating to a vetted library.

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var sha256H0 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func sha256Pad(msg []byte) []byte {
	ml := uint64(len(msg)) * 8
	padded := append([]byte{}, msg...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}
	var lenBuf [8]byte
	for i := 0; i < 8; i++ {
		lenBuf[7-i] = byte(ml >> (8 * i))
	}
	return append(padded, lenBuf[:]...)
}

func sha256Sum(msg []byte) [32]byte {
	h := sha256H0
	padded := sha256Pad(msg)
	var w [64]uint32
	for block := 0; block < len(padded); block += 64 {
		chunk := padded[block : block+64]
		for i := 0; i < 16; i++ {
			w[i] = uint32(chunk[i*4])<<24 | uint32(chunk[i*4+1])<<16 | uint32(chunk[i*4+2])<<8 | uint32(chunk[i*4+3])
		}
		for i := 16; i < 64; i++ {
			s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
			s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}
		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for i := 0; i < 64; i++ {
			s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
			ch := (e & f) ^ (^e & g)
			t1 := hh + s1 + ch + sha256K[i] + w[i]
			s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := s0 + maj
			hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
		}
		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}
	var out [32]byte
	for i, v := range h {
		out[i*4] = byte(v >> 24)
		out[i*4+1] = byte(v >> 16)
		out[i*4+2] = byte(v >> 8)
		out[i*4+3] = byte(v)
	}
	return out
}

var md5S = [64]uint32{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

var md5K = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

func md5Pad(msg []byte) []byte {
	ml := uint64(len(msg)) * 8
	padded := append([]byte{}, msg...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}
	var lenBuf [8]byte
	for i := 0; i < 8; i++ {
		lenBuf[i] = byte(ml >> (8 * i))
	}
	return append(padded, lenBuf[:]...)
}

func md5Sum(msg []byte) [16]byte {
	a0, b0, c0, d0 := uint32(0x67452301), uint32(0xefcdab89), uint32(0x98badcfe), uint32(0x10325476)
	padded := md5Pad(msg)
	var m [16]uint32
	for block := 0; block < len(padded); block += 64 {
		chunk := padded[block : block+64]
		for i := 0; i < 16; i++ {
			m[i] = uint32(chunk[i*4]) | uint32(chunk[i*4+1])<<8 | uint32(chunk[i*4+2])<<16 | uint32(chunk[i*4+3])<<24
		}
		a, b, c, d := a0, b0, c0, d0
		for i := 0; i < 64; i++ {
			var f uint32
			var g int
			switch {
			case i < 16:
				f = (b & c) | (^b & d)
				g = i
			case i < 32:
				f = (d & b) | (^d & c)
				g = (5*i + 1) % 16
			case i < 48:
				f = b ^ c ^ d
				g = (3*i + 5) % 16
			default:
				f = c ^ (b | ^d)
				g = (7 * i) % 16
			}
			f = f + a + md5K[i] + m[g]
			a = d
			d = c
			c = b
			b = b + bits.RotateLeft32(f, int(md5S[i]))
		}
		a0 += a
		b0 += b
		c0 += c
		d0 += d
	}
	var out [16]byte
	for i, v := range []uint32{a0, b0, c0, d0} {
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v >> 16)
		out[i*4+3] = byte(v >> 24)
	}
	return out
}

func sha256Builtin(ctx *Context, args []value.Value) value.Value {
	sum := sha256Sum(wantStr("sha256", args, 0).Str().Bytes())
	return ctx.H.NewStr([]byte(hex.EncodeToString(sum[:])))
}

func md5Builtin(ctx *Context, args []value.Value) value.Value {
	sum := md5Sum(wantStr("md5", args, 0).Str().Bytes())
	return ctx.H.NewStr([]byte(hex.EncodeToString(sum[:])))
}

// secureCompare is constant-time over equal-length inputs; unequal lengths
// short-circuit (timing leaks only the fact that lengths differ, never
// guest-observable content).
func secureCompare(ctx *Context, args []value.Value) value.Value {
	a := wantStr("secure_compare", args, 0).Str().Bytes()
	b := wantStr("secure_compare", args, 1).Str().Bytes()
	if len(a) != len(b) {
		return value.Bool(false)
	}
	return value.Bool(subtle.ConstantTimeCompare(a, b) == 1)
}

// randomBytes reads /dev/urandom; on failure it degrades to the process LCG,
// an implementation-defined (not cryptographic) fallback.
func randomBytes(ctx *Context, args []value.Value) value.Value {
	n := wantInt("random_bytes", args, 0)
	out := ctx.H.NewArray(int(n))
	buf := make([]byte, n)
	f, err := os.Open("/dev/urandom")
	if err == nil {
		_, rerr := f.Read(buf)
		f.Close()
		err = rerr
	}
	if err != nil {
		for i := range buf {
			buf[i] = byte(lcgNext(ctx.RandState))
		}
	}
	for _, b := range buf {
		ctx.H.Push(out, value.Int(int64(b)))
	}
	return out
}
