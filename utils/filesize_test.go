package utils_test

import (
	"testing"

	"github.com/DHANUSH-web/commercial-catalog/utils"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{2464153, "2.35 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, utils.FormatFileSize(tc.bytes))
	}
}

func TestMimeTypeFromName(t *testing.T) {
	assert.Equal(t, "application/pdf", utils.MimeTypeFromName("report.PDF"))
	assert.Equal(t, "image/jpeg", utils.MimeTypeFromName("photo.jpg"))
	assert.Equal(t, "application/octet-stream", utils.MimeTypeFromName("mystery.bin"))
	assert.Equal(t, "application/octet-stream", utils.MimeTypeFromName("noext"))
}
