// Package credential derives and checks password credentials.
//
// An artifact is base64(salt || key) where salt is 16 random bytes and key is a
// 32-byte PBKDF2-HMAC-SHA256 derivation with 100,000 iterations.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"github.com/samber/oops"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	keyLen     = 32
	iterations = 100_000
)

// CodeMalformed tags errors caused by an artifact that could never have been
// produced by Hash. Callers treat it as a defect, not as a wrong password.
const CodeMalformed = "CREDENTIAL_MALFORMED"

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Hasher is the surface the rest of the service depends on.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, artifact string) (bool, error)
}

// PBKDF2Hasher implements Hasher. It holds no state and is safe for concurrent use.
type PBKDF2Hasher struct{}

func NewPBKDF2Hasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{}
}

// Hash returns a fresh artifact for password; hashing the same password twice
// yields different artifacts because the salt is random.
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", oops.Code("CREDENTIAL_SALT_FAILED").Wrap(err)
	}

	buf := make([]byte, 0, saltLen+keyLen)
	buf = append(buf, salt...)
	buf = append(buf, derive(password, salt)...)
	return base64.StdEncoding.EncodeToString(buf), nil
}

// Verify reports whether password matches artifact. A mismatch is (false, nil);
// an artifact that is not valid base64 or has the wrong length is an error
// coded CodeMalformed.
func (h *PBKDF2Hasher) Verify(password, artifact string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(artifact)
	if err != nil {
		return false, oops.Code(CodeMalformed).Wrapf(err, "decode artifact")
	}
	if len(raw) != saltLen+keyLen {
		return false, oops.Code(CodeMalformed).
			With("length", len(raw)).
			Errorf("artifact must be %d bytes", saltLen+keyLen)
	}

	salt, stored := raw[:saltLen], raw[saltLen:]
	return subtle.ConstantTimeCompare(stored, derive(password, salt)) == 1, nil
}

// IsMalformed reports whether err came from a corrupt artifact.
func IsMalformed(err error) bool {
	oopsErr, ok := oops.AsOops(err)
	return ok && oopsErr.Code() == CodeMalformed
}

func derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
}
