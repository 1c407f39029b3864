package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	ImagesDir = "campaign_images"
	VideosDir = "campaign_videos"
)

// Store writes uploaded attachments under a local media root, one file
// per item slot, in date-partitioned directories like
// campaign_images/2026/08/31/<uuid>.png. Paths returned are relative to
// the root so the root can move without rewriting the database.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	now := time.Now().UTC()
	relDir := filepath.Join(subdir, fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day()))
	if err := os.MkdirAll(filepath.Join(s.root, relDir), 0o755); err != nil {
		return "", err
	}

	relPath := filepath.Join(relDir, uuid.New().String()+filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, relPath))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return relPath, nil
}

// Remove deletes a previously saved attachment. Used when the item
// write that the upload belongs to is aborted, so failed requests do
// not leave orphaned files under the root.
func (s *Store) Remove(relPath string) error {
	return os.Remove(filepath.Join(s.root, relPath))
}

// Root returns the media root directory, for static file serving.
func (s *Store) Root() string {
	return s.root
}
