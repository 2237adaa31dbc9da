package core

import "errors"

// Common errors.
var (
	ErrRendererNotFound = errors.New("renderer is not installed or not in PATH")
	ErrTemplateNotFound = errors.New("template not found")
	ErrRenderFailed     = errors.New("render failed")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrInvalidVariant   = errors.New("invalid variant")
)
