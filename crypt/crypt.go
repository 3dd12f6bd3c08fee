package crypt

import (
	"io"
)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}

// EncoderOptions is the implementation specific option set of an encoder
type EncoderOptions interface{}

// EncoderOption is option setter for encoder
type EncoderOption func(EncoderOptions)

// DecoderOptions is the implementation specific option set of a decoder
type DecoderOptions interface{}

// DecoderOption is option setter for decoder
type DecoderOption func(DecoderOptions)

// KeystreamNewer creates the keystream for a seed
type KeystreamNewer func(seed uint32) io.Reader
