package types

import "errors"

var (
	ErrDatasetNotFound  = errors.New("dataset file not found")
	ErrMalformedDataset = errors.New("malformed dataset")
	ErrUnsupportedFile  = errors.New("unsupported dataset format")

	ErrUnknownQuery     = errors.New("unknown query")
	ErrMissingColumn    = errors.New("dataset is missing a column required by the query")
	ErrUnsupportedQuery = errors.New("query is not supported by this engine")
	ErrNotStaged        = errors.New("bookings are not staged in the database")

	ErrInvalidMode   = errors.New("invalid mode")
	ErrInvalidEngine = errors.New("invalid analytics engine")

	ErrPublisherClosed = errors.New("report publisher connection is closed")
)
