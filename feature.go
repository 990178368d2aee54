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

// A Feature pairs a geometry with an opaque label, for example
// "mainland" or "range". The label is display bookkeeping for callers;
// no algorithm in this library reads it.
type Feature struct {
	Geom
	Label string
}

// NewFeature labels a geometry.
func NewFeature(g Geom, label string) *Feature {
	return &Feature{Geom: g, Label: label}
}
