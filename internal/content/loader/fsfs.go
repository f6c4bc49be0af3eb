package loader

import (
	"context"
	"errors"
	"io/fs"
)

type fsHolder struct {
	files fs.FS
}

func (h fsHolder) load(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("content loader: fs path is required")
	}
	if h.files == nil {
		return nil, errors.New("content loader: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		return nil, err
	}
	return data, nil
}
