package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BlobStorage stores attachment blobs. The Cloudinary implementation
// is the hosted path; LocalStorage writes under an uploads directory.
// Keys are canonical: callers persist the key returned alongside the
// record and delete with it, never by parsing the public URL.
type BlobStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, mimeType string) (url string, err error)
	Delete(ctx context.Context, key string, mimeType string) error
}

// NewObjectKey builds a unique storage key for a file attached to an
// establishment: time-based with a random suffix, original extension
// preserved.
func NewObjectKey(establishmentID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("establishments/%d/%d_%s%s",
		establishmentID, time.Now().UnixNano(), uuid.NewString()[:8], ext)
}
