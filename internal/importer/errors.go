package importer

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// ErrMalformedTable is returned when a table cell event references a grid
// position that does not exist. The error aborts the import; content
// inserted before the failing event is kept.
var ErrMalformedTable = errors.New("importer: malformed table in markdown input")

const malformedTableCode = "MARKDOWN_MALFORMED_TABLE"

func malformedTableError(row, col int) error {
	return goerrors.Wrap(
		ErrMalformedTable,
		goerrors.CategoryValidation,
		fmt.Sprintf("no table cell at row %d column %d", row, col),
	).WithTextCode(malformedTableCode)
}
