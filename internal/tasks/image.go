package tasks

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/encoding"
	"github.com/google/uuid"
)

// Selfie formats the vision model accepts.
const (
	contentTypePNG  = "image/png"
	contentTypeJPEG = "image/jpeg"
)

func validateImage(contentType string, data []byte) error {
	if len(data) == 0 {
		return ErrMissingFile
	}
	switch contentType {
	case contentTypePNG, contentTypeJPEG:
		return nil
	}
	return ErrInvalidImage
}

// encodeImageDataURI converts raw selfie bytes into the base64 data URI the
// vision model consumes.
func encodeImageDataURI(data []byte, contentType string) (string, error) {
	switch contentType {
	case contentTypePNG:
		return encoding.EncodeImageDataURI(data, document.PNG)
	case contentTypeJPEG:
		return encoding.EncodeImageDataURI(data, document.JPEG)
	}
	return "", ErrInvalidImage
}

func buildImageKey(userID string, id uuid.UUID, contentType string) string {
	ext := ".png"
	if contentType == contentTypeJPEG {
		ext = ".jpg"
	}
	return fmt.Sprintf("selfies/%s/%s%s", userID, id, ext)
}

// detectContentType prefers the client-declared content type unless it is
// missing or generic, in which case the type is sniffed from the payload.
func detectContentType(header *multipart.FileHeader, data []byte) string {
	declared := header.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		mediaType, _, _ := strings.Cut(declared, ";")
		return strings.TrimSpace(mediaType)
	}
	return http.DetectContentType(data)
}
