// Package xor implements a stream cipher that XORs data with the big-endian
// byte stream of an MT19937 generator.
//
// Encryption and decryption are the same operation.
package xor

import (
	"io"

	"github.com/tutils/twister/crypt"
	"github.com/tutils/twister/mt19937"
)

// Keystream returns the MT19937 keystream for seed.
func Keystream(seed uint32) io.Reader {
	return mt19937.New(seed)
}

// XORKeyStream XORs src with the next len(src) bytes of ks into dst.
// dst and src must overlap entirely or not at all. It panics if dst is
// shorter than src.
func XORKeyStream(dst, src []byte, ks io.Reader) {
	if len(dst) < len(src) {
		panic("xor: output smaller than input")
	}
	n := len(src)
	tmp := make([]byte, n)
	if _, err := io.ReadFull(ks, tmp); err != nil {
		panic("xor: keystream exhausted: " + err.Error())
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] ^ tmp[i]
	}
}

// Encrypt returns data XORed with the keystream of seed.
func Encrypt(data []byte, seed uint32) []byte {
	out := make([]byte, len(data))
	XORKeyStream(out, data, Keystream(seed))
	return out
}

// Decrypt is Encrypt.
func Decrypt(data []byte, seed uint32) []byte {
	return Encrypt(data, seed)
}

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	seed uint32
}

func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(opts...)
	return &xorEncoder{
		w:  w,
		ks: opt.keystreamNewer(c.seed),
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(opts...)
	return &xorDecoder{
		r:  r,
		ks: opt.keystreamNewer(c.seed),
	}
}

// NewCrypt create a new Crypt
func NewCrypt(seed uint32) crypt.Crypt {
	return &xorCrypt{
		seed: seed,
	}
}

type xorEncoder struct {
	w   io.Writer
	ks  io.Reader
	buf []byte
}

func (e *xorEncoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}

	XORKeyStream(e.buf, p, e.ks)
	return e.w.Write(e.buf)
}

type xorDecoder struct {
	r  io.Reader
	ks io.Reader
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n > 0 {
		XORKeyStream(p[:n], p[:n], d.ks)
	}
	return n, err
}
