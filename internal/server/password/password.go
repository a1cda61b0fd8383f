// Package password turns plaintext passwords into salted, deliberately slow
// digests and checks candidates against them.
package password

import (
	"fmt"
	"strings"
)

// Hasher produces and checks self-describing password digests.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// Algorithm names accepted by New.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// New returns a Hasher that creates digests with the named algorithm and
// verifies digests of any supported family. bcryptCost is ignored for
// argon2id.
func New(algorithm string, bcryptCost int) (Hasher, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmBcrypt:
		return &Verifier{primary: NewBcryptHasher(bcryptCost)}, nil
	case AlgorithmArgon2id:
		return &Verifier{primary: NewArgon2Hasher(DefaultArgon2Params())}, nil
	default:
		return nil, fmt.Errorf("unknown password algorithm %q", algorithm)
	}
}

// Verifier hashes with its primary algorithm and verifies by digest prefix,
// so digests written before an algorithm switch keep working.
type Verifier struct {
	primary Hasher
}

func (v *Verifier) Hash(password string) (string, error) {
	return v.primary.Hash(password)
}

func (v *Verifier) Verify(password, digest string) bool {
	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		return NewArgon2Hasher(DefaultArgon2Params()).Verify(password, digest)
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		return NewBcryptHasher(0).Verify(password, digest)
	default:
		return false
	}
}
