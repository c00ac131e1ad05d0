package summary

import (
	"errors"
	"fmt"
)

// ErrInvalidAppend signals an attempt to add an invalid value to a PageGroup.
var ErrInvalidAppend = errors.New("can only append summary pages with a symbol")

// PageNotFoundError signals that no parseable summary data exists for a
// symbol: the page request failed or neither fragment could be extracted.
type PageNotFoundError struct {
	Symbol string
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("%s summary page not found", e.Symbol)
}

// IsPageNotFound reports whether err is a PageNotFoundError.
func IsPageNotFound(err error) bool {
	var notFound *PageNotFoundError
	return errors.As(err, &notFound)
}
