// SPDX-License-Identifier: MIT

package piece

import "errors"

// Every message is prefixed with "piece: ...". Context is added with
// fmt.Errorf("%w: ...", ErrX), wrapping several sentinels at once where
// more than one applies; callers match with errors.Is.
var (
	// ErrInvalidPiece is returned when an edge code is missing or not
	// exactly EdgeLength values long.
	ErrInvalidPiece = errors.New("piece: invalid piece")

	// ErrInvalidCell is returned in strict mode when an edge value is
	// neither 0 nor 1. It is always wrapped together with ErrInvalidPiece.
	ErrInvalidCell = errors.New("piece: cell value must be 0 or 1")
)
