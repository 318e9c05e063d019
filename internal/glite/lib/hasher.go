package lib

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

// HashBytes calculates the SHA-256 hash of an in-memory byte slice and
// returns it as a lowercase hex-encoded string. This is used for content that
// is already in memory, such as a serialized commit body.
func HashBytes(content []byte) string {
	hashBytes := sha256.Sum256(content)
	return hex.EncodeToString(hashBytes[:])
}

// HashFile calculates the SHA-256 hash of a file's contents by streaming it
// from disk, so large workspace files never have to be loaded whole.
// It returns the lowercase hex-encoded hash string.
func HashFile(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "opening file for hashing")
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", errors.Wrapf(err, "hashing %s", filePath)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
