// Package token issues tokens derived from time-seeded MT19937 generators
// and detects them again.
package token

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tutils/twister/crack"
	"github.com/tutils/twister/crypt/xor"
	"github.com/tutils/twister/mt19937"
)

// Marker ends the plaintext of every reset token.
const Marker = "reset password token"

const maxPrefix = 32

// NewResetToken encrypts a random prefix followed by Marker under the Unix
// time of now.
func NewResetToken(now time.Time) ([]byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxPrefix))
	if err != nil {
		return nil, errors.Wrap(err, "token: prefix length")
	}
	plaintext := make([]byte, n.Int64(), n.Int64()+int64(len(Marker)))
	if _, err := rand.Read(plaintext); err != nil {
		return nil, errors.Wrap(err, "token: prefix")
	}
	plaintext = append(plaintext, Marker...)
	return xor.Encrypt(plaintext, mt19937.TimeSeed(now)), nil
}

// IsResetToken reports whether token was issued by NewResetToken within
// tolerance before now.
func IsResetToken(token []byte, now time.Time, tolerance time.Duration, opts ...crack.SearchOption) bool {
	return crack.IsTimeSeeded(token, []byte(Marker), now, tolerance, opts...)
}

// NewUUID returns a version 4 UUID whose random bits are the first bytes of
// the MT19937 stream of seed.
func NewUUID(seed uint32) (uuid.UUID, error) {
	return uuid.NewRandomFromReader(mt19937.New(seed))
}

// NewTimeUUID is NewUUID seeded with the Unix time of now.
func NewTimeUUID(now time.Time) (uuid.UUID, error) {
	return NewUUID(mt19937.TimeSeed(now))
}

// RecoverUUIDSeed finds the time seed in [before, after] that NewUUID turns
// into id.
func RecoverUUIDSeed(id uuid.UUID, before, after time.Time, opts ...crack.SearchOption) (seed uint32, found bool, err error) {
	return crack.SearchWindow(before, after, func() crack.Matcher {
		g := mt19937.New(0)
		return func(seed uint32) bool {
			g.Seed(seed)
			cand, err := uuid.NewRandomFromReader(g)
			return err == nil && cand == id
		}
	}, opts...)
}
