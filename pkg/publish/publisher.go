package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/displaycard/internal/errors"
)

// Publisher stores an exported page under name and returns where it went.
type Publisher interface {
	Publish(ctx context.Context, name string, body []byte) (string, error)
}

// DirPublisher writes pages into a local directory.
type DirPublisher struct {
	Dir string
}

// NewDirPublisher creates a DirPublisher. An empty dir is the working
// directory.
func NewDirPublisher(dir string) *DirPublisher {
	if dir == "" {
		dir = "."
	}
	return &DirPublisher{Dir: dir}
}

// Publish writes body to Dir/name.
func (p *DirPublisher) Publish(ctx context.Context, name string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New(errors.CodePublishTarget).WithDetail("empty file name")
	}

	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return "", errors.New(errors.CodePublishWrite).WithDetail(p.Dir).Wrap(err)
	}
	path := filepath.Join(p.Dir, name)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", errors.New(errors.CodePublishWrite).WithDetail(path).Wrap(err)
	}
	return path, nil
}
