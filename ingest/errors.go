package ingest

import "errors"

// Sentinel errors returned by the readers. Aggregated errors still match them
// with errors.Is.
var (
	// ErrEmptyInput indicates a file with no header row.
	ErrEmptyInput = errors.New("ingest: empty input")

	// ErrHeader indicates a malformed header row.
	ErrHeader = errors.New("ingest: malformed header")

	// ErrRowWidth indicates a row with the wrong number of fields.
	ErrRowWidth = errors.New("ingest: wrong number of fields")

	// ErrRowCount indicates a matrix with a row count different from its column count.
	ErrRowCount = errors.New("ingest: row count does not match header")

	// ErrRowLabel indicates a matrix row whose label differs from the matching column name.
	ErrRowLabel = errors.New("ingest: row label does not match header")

	// ErrBlankField indicates an empty field where a value is required.
	ErrBlankField = errors.New("ingest: blank field")

	// ErrNumber indicates a field that is not a valid number.
	ErrNumber = errors.New("ingest: invalid number")

	// ErrCoordinate indicates a longitude or latitude outside its valid range.
	ErrCoordinate = errors.New("ingest: coordinate out of range")

	// ErrUnknownFormat indicates a file extension no reader handles.
	ErrUnknownFormat = errors.New("ingest: unknown file format")
)
