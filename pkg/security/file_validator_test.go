package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-registry/pkg/security"
)

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		valid    bool
	}{
		{"pdf with pdf header", "cv.pdf", []byte("%PDF-1.7 content"), true},
		{"docx with zip header", "cv.docx", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, true},
		{"doc with ole header", "cv.doc", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}, true},
		{"disallowed extension", "cv.txt", []byte("hello"), false},
		{"no extension", "cv", []byte("%PDF-1.7"), false},
		{"pdf extension with wrong content", "cv.pdf", []byte("MZ not a pdf"), false},
		{"empty file", "cv.pdf", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := security.ValidateResume(tt.filename, tt.data)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.Error)
			}
		})
	}
}
