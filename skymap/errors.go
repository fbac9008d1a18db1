package skymap

import (
	"errors"
	"fmt"
)

var (
	ErrZeroPixels = errors.New("cannot bin into an indexer without pixels")
)

type LocationNotSupportedError struct {
	Indexer  string
	Location Location
}

func NewLocationNotSupportedError(indexer string, location Location) *LocationNotSupportedError {
	return &LocationNotSupportedError{
		Indexer:  indexer,
		Location: location,
	}
}

func (l LocationNotSupportedError) Error() string {
	return fmt.Sprintf("location %v of type %T not supported by indexer %s", l.Location, l.Location, l.Indexer)
}

type LocationOutOfBoundsError struct {
	Location Location
}

func NewLocationOutOfBoundsError(location Location) LocationOutOfBoundsError {
	return LocationOutOfBoundsError{Location: location}
}

func (l LocationOutOfBoundsError) Error() string {
	return fmt.Sprintf("location %v was out of bounds", l.Location)
}
