package hashlist

import "github.com/pkg/errors"

// ErrInvalidPosition is returned when a position does not point into the
// list it is used with: a zero Position, a position of another list, or one
// whose element has since been removed.
var ErrInvalidPosition = errors.New("invalid position")
