package models

import "fmt"

// Validation errors for registry records. The registry decoder matches on these
// to exclude malformed records before they reach the search core.
var (
	ErrMissingID          = fmt.Errorf("record missing id")
	ErrInvalidKind        = fmt.Errorf("invalid playlist kind")
	ErrInvalidContentType = fmt.Errorf("invalid content type")
)
