package xor

import (
	"github.com/tutils/twister/crypt"
)

type xorEncoderOptions struct {
	keystreamNewer crypt.KeystreamNewer
}

func newXorEncoderOptions(opts ...crypt.EncoderOption) *xorEncoderOptions {
	var opt xorEncoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.keystreamNewer == nil {
		opt.keystreamNewer = Keystream
	}
	return &opt
}

// WithEncoderKeystreamNewer replaces the MT19937 keystream of an encoder.
func WithEncoderKeystreamNewer(newer crypt.KeystreamNewer) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.keystreamNewer = newer
		}
	}
}

type xorDecoderOptions struct {
	keystreamNewer crypt.KeystreamNewer
}

func newXorDecoderOptions(opts ...crypt.DecoderOption) *xorDecoderOptions {
	var opt xorDecoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.keystreamNewer == nil {
		opt.keystreamNewer = Keystream
	}
	return &opt
}

// WithDecoderKeystreamNewer replaces the MT19937 keystream of a decoder.
func WithDecoderKeystreamNewer(newer crypt.KeystreamNewer) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.keystreamNewer = newer
		}
	}
}
