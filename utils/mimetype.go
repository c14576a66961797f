package utils

import (
	"path/filepath"
	"strings"
)

var extMimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".txt":  "text/plain",
	".csv":  "text/csv",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".zip":  "application/zip",
}

// MimeTypeFromName guesses a MIME type from the file extension. This
// is the degraded path for blobs whose original upload metadata is
// unavailable.
func MimeTypeFromName(name string) string {
	if mt, ok := extMimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return "application/octet-stream"
}
