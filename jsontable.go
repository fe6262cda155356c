package jsontable

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrParse             = errors.New("invalid json document")
	ErrNotArray          = errors.New("document is not a json array")
	ErrEmptyDocument     = errors.New("document array is empty")
	ErrNoRecords         = errors.New("document has no object records")
	ErrInvalidWindow     = errors.New("invalid window")
	ErrIncomparable      = errors.New("records are not comparable")
	ErrInvalidPolicy     = errors.New("invalid sort policy")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedBorder = errors.New("unsupported border style")
)
