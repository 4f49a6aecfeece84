// Package cryptox hashes account passwords with argon2id.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt generated per password.
const SaltSize = 16

// argon2id parameters: 1 pass, 64 MiB, 4 lanes, 32-byte key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword generates a fresh salt and returns it with the derived hash.
func HashPassword(password []byte) (salt, hash []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return salt, DeriveKey(password, salt)
}

// VerifyPassword reports whether password hashes to hash under salt. The
// comparison runs in constant time.
func VerifyPassword(password, salt, hash []byte) bool {
	candidate := DeriveKey(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
