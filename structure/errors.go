// SPDX-License-Identifier: MIT

package structure

import "errors"

var (
	// ErrNilModel is returned when Generate receives a nil model.
	ErrNilModel = errors.New("structure: model is nil")

	// ErrDegenerateFragment indicates a fragment whose vertices do not span
	// perpendicular space, so no containment test can be built for it.
	ErrDegenerateFragment = errors.New("structure: degenerate fragment")

	// ErrEmptyDomain indicates an occupation domain whose vertices are all at
	// the origin, which gives a zero perpendicular cutoff.
	ErrEmptyDomain = errors.New("structure: empty occupation domain")
)
