package storage

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Disk stores each key as a file under a base directory using diskv.
type Disk struct {
	d *diskv.Diskv
}

// NewDisk opens (and creates if needed) a diskv store rooted at basePath.
func NewDisk(basePath string) (*Disk, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPath,
		InverseTransform:  pathToKey,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

// keyToPath spreads keys over two levels of directories derived from an md5
// of the key. The file name is the hex-encoded key so any byte is safe.
func keyToPath(key string) *diskv.PathKey {
	sum := md5.Sum([]byte(key))
	h := hex.EncodeToString(sum[:])
	return &diskv.PathKey{
		Path:     []string{h[0:2], h[2:4]},
		FileName: hex.EncodeToString([]byte(key)),
	}
}

func pathToKey(pk *diskv.PathKey) string {
	b, err := hex.DecodeString(pk.FileName)
	if err != nil {
		return pk.FileName
	}
	return string(b)
}

func (s *Disk) Get(_ context.Context, key string) ([]byte, error) {
	v, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Disk) Set(_ context.Context, key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *Disk) Delete(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	err := s.d.Erase(key)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
