package security

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// ResumeValidationResult contains the result of resume file validation
type ResumeValidationResult struct {
	Valid     bool   // Whether the file passed all validation checks
	Extension string // Detected file extension
	Error     string // Error message if validation failed
}

// Magic byte signatures for allowed resume types
// Maps lowercase extension to possible magic byte prefixes
var resumeMagicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// ValidateResume performs 2-layer resume validation:
// 1. Extension whitelist check (pdf/doc/docx only)
// 2. Magic byte verification (content matches extension)
func ValidateResume(filename string, data []byte) ResumeValidationResult {
	result := ResumeValidationResult{}

	ext := strings.ToLower(filepath.Ext(filename))
	result.Extension = ext

	// Layer 1: Extension whitelist
	signatures, allowed := resumeMagicBytes[ext]
	if !allowed {
		if ext == "" {
			ext = "unknown"
		}
		result.Error = fmt.Sprintf("only PDF/DOC/DOCX resumes are allowed, got: %s", ext)
		return result
	}

	// Layer 2: Content must carry the magic bytes of the claimed type
	if len(data) == 0 {
		result.Error = "resume file is empty"
		return result
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			result.Valid = true
			return result
		}
	}

	result.Error = fmt.Sprintf("file content does not match %s format", ext)
	return result
}
