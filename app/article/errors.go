package article

import (
	"fmt"
)

// MissingFieldError reports a required generation field that was not
// supplied. No output file is written when it occurs.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// TemplateNotFoundError reports that the article template document
// could not be located at its expected path.
type TemplateNotFoundError struct {
	Path string
	Err  error
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found at %s", e.Path)
}

func (e *TemplateNotFoundError) Unwrap() error {
	return e.Err
}

// FilesystemError reports a failed write of the output document.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
