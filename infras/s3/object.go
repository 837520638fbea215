package s3

import (
	"mime/multipart"
	"path"
	"strings"
	"time"

	"studio/config"
	"studio/shared/constant"

	"github.com/google/uuid"
)

const defaultUploadTimeout = 30 * time.Second

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpg":  ".jpg",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ObjectName is a fresh unique file name keeping the image type as extension.
func ObjectName(fileHeader *multipart.FileHeader) string {
	ext, ok := imageExtensions[fileHeader.Header.Get(constant.RequestHeaderContentType)]
	if !ok {
		ext = strings.ToLower(path.Ext(fileHeader.Filename))
	}

	return uuid.NewString() + ext
}

// UploadTimeout bounds a single upload to the host.
func UploadTimeout(cfg *config.Config) time.Duration {
	if cfg.External.S3.UploadTimeoutSeconds <= 0 {
		return defaultUploadTimeout
	}

	return time.Duration(cfg.External.S3.UploadTimeoutSeconds) * time.Second
}
