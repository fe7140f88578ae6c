package contracts

import (
	"context"
	"io"
)

type Storage interface {
	// UploadImage stores an image below folder and returns its public URL.
	UploadImage(ctx context.Context, file io.Reader, size int64, folder string) (string, error)
}
