package lib

import (
	"os"

	"github.com/pkg/errors"
)

// WriteObject stores data under its content hash and returns the hash. If an
// object with that hash already exists the write is skipped, so identical data
// is stored once. Blobs are stored by WriteBlobFromFile and commit records by
// WriteCommit, not through this function.
func WriteObject(repoRoot string, data []byte) (string, error) {
	hash := HashBytes(data)
	path := ObjectPath(repoRoot, hash)
	if _, err := os.Stat(path); err == nil {
		return hash, nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "writing object %s", hash)
	}
	return hash, nil
}

// WriteBlobFromFile hashes a workspace file and copies it into the object
// directory iff an object of that hash is not already present. The copy is
// byte-identical, so the blob invariant filename == sha256(bytes) holds.
func WriteBlobFromFile(repoRoot, srcPath string) (string, error) {
	hash, err := HashFile(srcPath)
	if err != nil {
		return "", err
	}
	objectPath := ObjectPath(repoRoot, hash)
	if _, err := os.Stat(objectPath); err == nil {
		return hash, nil
	}
	if err := CopyFile(srcPath, objectPath); err != nil {
		return "", errors.Wrapf(err, "storing blob %s", hash)
	}
	return hash, nil
}

// ReadObject returns the raw bytes of an object.
func ReadObject(repoRoot, hash string) ([]byte, error) {
	data, err := os.ReadFile(ObjectPath(repoRoot, hash))
	if err != nil {
		return nil, errors.Wrapf(err, "reading object %s", hash)
	}
	return data, nil
}

// ObjectExists reports whether an object of the given hash is on disk.
func ObjectExists(repoRoot, hash string) bool {
	_, err := os.Stat(ObjectPath(repoRoot, hash))
	return err == nil
}
