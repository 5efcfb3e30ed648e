package storage

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/matst80/slask-vods/pkg/common/jsoncompat"
	"github.com/matst80/slask-vods/pkg/types"
)

const catalogueFile = "videos.json.gz"

// DiskStorage keeps a gzipped snapshot of the normalized catalogue so a
// restart can come up without the remote source.
type DiskStorage struct {
	DataDir string
}

func NewDiskStorage(dataDir string) *DiskStorage {
	return &DiskStorage{DataDir: dataDir}
}

func (d *DiskStorage) path() string {
	return filepath.Join(d.DataDir, catalogueFile)
}

// HasCatalogue reports whether a snapshot exists on disk.
func (d *DiskStorage) HasCatalogue() bool {
	info, err := os.Stat(d.path())
	return err == nil && !info.IsDir()
}

// SaveCatalogue writes the snapshot through a temp file and renames it into
// place, so a crash mid-write never leaves a truncated snapshot behind.
func (d *DiskStorage) SaveCatalogue(videos []types.Video) error {
	if err := os.MkdirAll(d.DataDir, 0755); err != nil {
		return err
	}
	data, err := jsoncompat.Marshal(videos)
	if err != nil {
		return err
	}
	tmp := d.path() + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(file)
	if _, err = zw.Write(data); err != nil {
		file.Close()
		return err
	}
	if err = zw.Close(); err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, d.path())
}

// LoadCatalogue reads the snapshot and re-derives the title tokens, which
// are not part of the stored record.
func (d *DiskStorage) LoadCatalogue() ([]types.Video, error) {
	file, err := os.Open(d.path())
	if err != nil {
		return nil, fmt.Errorf("opening catalogue snapshot: %w", err)
	}
	defer file.Close()
	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	var videos []types.Video
	if err = jsoncompat.Unmarshal(data, &videos); err != nil {
		return nil, err
	}
	for i := range videos {
		videos[i] = types.NormalizeVideo(videos[i])
	}
	log.Printf("Loaded %d videos from snapshot", len(videos))
	return videos, nil
}
