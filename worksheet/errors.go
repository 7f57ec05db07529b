// SPDX-License-Identifier: MIT

package worksheet

import "errors"

var (
	// ErrUnknownKind is returned for a sheet kind no solver handles.
	ErrUnknownKind = errors.New("worksheet: unknown kind")

	// ErrUnknownFormat is returned for a sheet file that is neither YAML nor JSON.
	ErrUnknownFormat = errors.New("worksheet: unknown file format")

	// ErrMissingField is returned when a field the kind needs is absent.
	ErrMissingField = errors.New("worksheet: missing field")

	// ErrShape is returned when parsed lists disagree in length.
	ErrShape = errors.New("worksheet: inconsistent lengths")
)
