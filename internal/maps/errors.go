package maps

import "errors"

var ErrUnknownExchange = errors.New("location information not available")
