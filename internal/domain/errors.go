package domain

import "errors"

var (
	ErrCredentialMissing   = errors.New("no API credential configured")
	ErrAnalysisFailed      = errors.New("bulletin analysis failed")
	ErrTemplateMissing     = errors.New("no template available")
	ErrInvalidTemplate     = errors.New("template is not a valid presentation file")
	ErrNoBulletin          = errors.New("no analyzed bulletin in this session")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
)
