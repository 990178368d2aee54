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

// Package geom holds planar geometry objects and functions to measure and
// validate them. Boolean set operations and buffering live in the op
// subpackage, and topological predicates live in the relate subpackage.
//
// All coordinates are Cartesian values in a single consistent planar unit;
// no coordinate reference system information is carried at this layer.
// Callers are responsible for reprojecting geographic coordinates before
// building geometries, and for making sure all geometries passed into one
// operation share the same planar unit (see IncompatibleUnitsError).
//
// All types are immutable by convention: operations never modify their
// arguments and return newly allocated values, so values may be shared
// freely between concurrent callers.
package geom

// DefaultTolerance is the relative tolerance used for floating point
// comparisons. Absolute tolerances are obtained by scaling it by the
// diagonal of the bounding box of the geometries involved in an operation.
const DefaultTolerance = 1.e-9

// Geom is an interface for generic geometry types.
type Geom interface {
	Bounds() *Bounds
}

// Polygonal is an interface for types that are polygonal in nature.
type Polygonal interface {
	Geom

	// Polygons returns the polygon members of this geometry.
	Polygons() MultiPolygon

	// Area returns the total area of this geometry, which is always
	// greater than or equal to zero.
	Area() float64

	// Centroid returns the area-weighted centroid of this geometry.
	// It returns an EmptyGeometryError for zero-area geometries.
	Centroid() (Point, error)
}
