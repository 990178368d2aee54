/*
Copyright © 2026 the geom authors.
This file is part of geom.

geom is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geom is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geom.  If not, see <http://www.gnu.org/licenses/>.
*/

package geom

import "fmt"

// InvalidRingError is returned when a ring is malformed: open, with too
// few points, self-intersecting, or a hole that touches or crosses the
// boundary it is nested in. Invalid geometries are never silently
// repaired; callers are expected to fix them upstream, for example with
// a simplification pass.
type InvalidRingError struct {
	// Ring is the index of the offending ring within its polygon, where
	// 0 is the outer ring and subsequent indices are holes.
	Ring int

	Reason string
}

func (e InvalidRingError) Error() string {
	return fmt.Sprintf("geom: invalid ring %d: %s", e.Ring, e.Reason)
}

// EmptyGeometryError is returned when an operation is undefined on an
// empty or zero-area input, such as the centroid of an empty geometry.
type EmptyGeometryError struct {
	// Op names the operation that failed.
	Op string
}

func (e EmptyGeometryError) Error() string {
	return fmt.Sprintf("geom: empty geometry in %s", e.Op)
}

// IncompatibleUnitsError reports that geometries combined in one
// operation do not share a consistent planar unit. The library itself
// carries no unit metadata and cannot detect this condition; the type
// exists so that callers which track units can report violations of the
// contract in a recognizable form before calling in.
type IncompatibleUnitsError struct {
	Detail string
}

func (e IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("geom: incompatible planar units: %s", e.Detail)
}

// ToleranceAmbiguousError is returned when a geometric configuration
// falls within floating point tolerance of more than one classification,
// so that answering either way would be a guess.
type ToleranceAmbiguousError struct {
	Detail string
}

func (e ToleranceAmbiguousError) Error() string {
	return fmt.Sprintf("geom: classification ambiguous within tolerance: %s", e.Detail)
}
