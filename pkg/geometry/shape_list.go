package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShapeList is an ordered collection of shapes queried by linear scan
type ShapeList []Shape

// NewShapeList creates a list from the given shapes
func NewShapeList(shapes ...Shape) ShapeList {
	return append(ShapeList(nil), shapes...)
}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...Shape) {
	*l = append(*l, shapes...)
}

// Len returns the number of shapes in the list
func (l ShapeList) Len() int {
	return len(l)
}

// Hit returns the closest intersection across all shapes.
// tMax narrows to the best t found so far, so a later shape only wins with a strictly
// smaller t and exact ties go to the earlier shape.
func (l ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit && (closestHit == nil || hit.T < closestHit.T) {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
