package utils

import (
	"claimit/config"
	"claimit/models"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// MaxClaimDocumentSize is the upload ceiling per document (5 MiB).
const MaxClaimDocumentSize = 5 * 1024 * 1024

var allowedClaimExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".zip":  true,
}

// ValidateClaimFile checks a single upload against the extension allow-list
// and the size ceiling. A violation fails the whole claim creation, so the
// returned error names the offending file.
func ValidateClaimFile(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedClaimExtensions[ext] {
		return &models.DocumentRejectedError{FileName: file.Filename, Reason: models.RejectDisallowedType}
	}
	if file.Size > MaxClaimDocumentSize {
		return &models.DocumentRejectedError{FileName: file.Filename, Reason: models.RejectOversize}
	}
	return nil
}

// FileExtension returns the lower-cased extension without the dot.
func FileExtension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// ClaimDocumentPath builds the deterministic storage path for an attachment,
// relative to the upload root. Attachments stay addressable without a lookup
// table because the path is a pure function of (owner, claim, filename).
func ClaimDocumentPath(userID, claimID uint, filename string) string {
	return filepath.Join(
		fmt.Sprintf("%d", userID),
		"claims",
		fmt.Sprintf("%d", claimID),
		filepath.Base(filename),
	)
}

// SaveClaimDocument writes an uploaded file to its deterministic location
// under the configured upload root and returns the relative path.
func SaveClaimDocument(file *multipart.FileHeader, userID, claimID uint) (string, error) {
	relPath := ClaimDocumentPath(userID, claimID, file.Filename)
	fullPath := filepath.Join(config.AppConfig.UploadDir, relPath)

	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	// Create destination file
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return relPath, nil
}

// RemoveClaimFiles deletes the on-disk directory holding a claim's documents.
func RemoveClaimFiles(userID, claimID uint) error {
	dir := filepath.Join(config.AppConfig.UploadDir, fmt.Sprintf("%d", userID), "claims", fmt.Sprintf("%d", claimID))
	return os.RemoveAll(dir)
}

func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	// Adjust this based on your actual file serving setup
	return "/uploads/" + filePath
}
