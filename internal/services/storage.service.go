package services

import (
	"os"
	"path/filepath"
	"strings"

	"postbox/config"

	logger "github.com/Bparsons0904/goLogger"
)

// StorageService is a disk-backed object store for cleaning photos. Objects
// are flat files under the configured storage directory, served statically
// under the public base path.
type StorageService struct {
	dir        string
	publicBase string
	log        logger.Logger
}

func NewStorageService(config config.Config) (*StorageService, error) {
	log := logger.New("StorageService")

	dir := config.StorageDir
	if dir == "" {
		dir = "uploads"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, log.Err("failed to create storage directory", err, "dir", dir)
	}

	return &StorageService{
		dir:        dir,
		publicBase: strings.TrimSuffix(config.StoragePublicBase, "/"),
		log:        log,
	}, nil
}

// Put writes one object and returns its public URL path. Names are
// flattened to their base component so callers cannot escape the storage
// directory.
func (s *StorageService) Put(name string, data []byte) (string, error) {
	log := s.log.Function("Put")

	name = filepath.Base(name)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", log.Err("failed to write object", err, "name", name)
	}

	return s.publicBase + "/" + name, nil
}

// Delete removes one object. Deleting a missing object is not an error.
func (s *StorageService) Delete(name string) error {
	log := s.log.Function("Delete")

	name = filepath.Base(name)
	path := filepath.Join(s.dir, name)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return log.Err("failed to delete object", err, "name", name)
	}

	return nil
}
