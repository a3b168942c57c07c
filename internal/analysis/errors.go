package analysis

import "errors"

var (
	ErrInvalidFileID  = errors.New("invalid_file_id")
	ErrUploadNotFound = errors.New("upload_not_found")
)
