package httpapi

import (
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"

	"wasteclassd/internal/preprocess"
)

// uploadError carries the status code for a rejected upload.
type uploadError struct {
	status int
	reason string
	msg    string
}

func (e *uploadError) Error() string   { return e.msg }
func (e *uploadError) StatusCode() int { return e.status }

func rejected(status int, reason, msg string) *uploadError {
	rejectUpload(reason)
	return &uploadError{status: status, reason: reason, msg: msg}
}

// readUpload extracts and decodes the multipart "image" field.
func readUpload(w http.ResponseWriter, r *http.Request) (image.Image, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, rejected(http.StatusRequestEntityTooLarge, "too_large",
				fmt.Sprintf("image larger than %d bytes", maxUploadBytes))
		}
		return nil, rejected(http.StatusBadRequest, "bad_form", "failed to parse multipart form")
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, rejected(http.StatusBadRequest, "missing", "no image file provided. Use 'image' as the form field name")
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, rejected(http.StatusBadRequest, "read", "failed to read upload")
	}
	if mt := preprocess.Sniff(head[:n]); !preprocess.IsImageMIME(mt) {
		return nil, rejected(http.StatusUnsupportedMediaType, "not_image", "upload is not an image ("+mt+")")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, rejected(http.StatusBadRequest, "read", "failed to read upload")
	}
	img, format, err := preprocess.DecodeLimited(file, maxPixels)
	if preprocess.IsTooManyPixels(err) {
		return nil, rejected(http.StatusRequestEntityTooLarge, "too_large_pixels", err.Error())
	}
	if err != nil {
		return nil, rejected(http.StatusBadRequest, "decode", "invalid image: "+err.Error())
	}
	b := img.Bounds()
	logUpload(r, requestLogLevel(r), header.Filename, header.Size, format, b.Dx(), b.Dy())
	return img, nil
}
