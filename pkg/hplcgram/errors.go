package hplcgram

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx/xlsm workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Stages reported by RenderError.
const (
	StageAssemble = "assemble"
	StageScale    = "scale"
	StageRender   = "render"
)

// RenderError reports which stage of chromatogram generation failed.
type RenderError struct {
	Stage string // "assemble", "scale", "render"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("chromatogram %s failed: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(stage string, err error) *RenderError {
	return &RenderError{
		Stage: stage,
		Err:   err,
	}
}
