package transaction

import "errors"

// File-level parse failures. Each one aborts the whole import before any
// per-row processing happens.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrUnreadableFile      = errors.New("unreadable file")
	ErrNoSheets            = errors.New("workbook has no sheets")
)
