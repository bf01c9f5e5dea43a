// SPDX-License-Identifier: MIT
package compass

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedCoordinate indicates that a node ID is not of the form "x,y"
// with two numeric fields.
var ErrMalformedCoordinate = errors.New("compass: malformed coordinate")

// Direction is one of the eight compass labels.
type Direction string

// The eight compass labels, listed in sector test order.
const (
	East      Direction = "E"
	SouthEast Direction = "SE"
	South     Direction = "S"
	SouthWest Direction = "SW"
	West      Direction = "W"
	NorthWest Direction = "NW"
	North     Direction = "N"
	NorthEast Direction = "NE"
)

// coordinateSeparator splits the x and y fields of a node ID.
const coordinateSeparator = ","

// Directions returns all eight labels in sector test order.
func Directions() []Direction {
	return []Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}
}

// String implements fmt.Stringer.
func (d Direction) String() string { return string(d) }

// Point is a parsed "x,y" coordinate.
type Point struct {
	X, Y float64
}

// ID renders p in the canonical "x,y" node ID form, using the shortest
// decimal representation of each coordinate.
func (p Point) ID() string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + coordinateSeparator + strconv.FormatFloat(p.Y, 'f', -1, 64)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// ParsePoint parses a node ID of the form "x,y".
// Surrounding whitespace around each field is ignored.
func ParsePoint(id string) (Point, error) {
	fields := strings.Split(id, coordinateSeparator)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: %q: want 2 fields, got %d", ErrMalformedCoordinate, id, len(fields))
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: x: %v", ErrMalformedCoordinate, id, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: y: %v", ErrMalformedCoordinate, id, err)
	}

	return Point{X: x, Y: y}, nil
}

// Classify returns the heading from node ID from to node ID to.
// Either ID failing to parse yields an error wrapping ErrMalformedCoordinate.
func Classify(from, to string) (Direction, error) {
	p, err := ParsePoint(from)
	if err != nil {
		return "", err
	}
	q, err := ParsePoint(to)
	if err != nil {
		return "", err
	}

	return Heading(p, q), nil
}

// Heading returns the compass label of the vector p→q.
// Identical points have angle 0 and therefore classify as East.
func Heading(p, q Point) Direction {
	return FromAngle(math.Atan2(q.Y-p.Y, q.X-p.X))
}

// FromAngle maps an angle in radians, as returned by math.Atan2, onto a label.
// Sector tests run in a fixed order; see the package documentation for the
// resulting boundary behaviour.
func FromAngle(angle float64) Direction {
	const eighth = math.Pi / 8

	switch {
	case angle < eighth && angle >= -eighth:
		return East
	case angle <= 3*eighth && angle >= eighth:
		return SouthEast
	case angle <= 5*eighth && angle >= 3*eighth:
		return South
	case angle <= 7*eighth && angle >= 5*eighth:
		return SouthWest
	case angle <= -7*eighth || angle >= 7*eighth:
		return West
	case angle >= -7*eighth && angle <= -5*eighth:
		return NorthWest
	case angle >= -5*eighth && angle <= -3*eighth:
		return North
	default:
		return NorthEast
	}
}
