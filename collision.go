package main

import "math"

// Visual-scale factors per kind: the hit circle approximates the drawn
// silhouette, not the bounding box. Hazards are irregular polygons, so their
// circle is shrunk by the worst-case vertex excursion and padded by the
// outline stroke width.
const (
	shipHitScale       = 0.85
	hazardShapeFactor  = 0.8
	hazardOutlinePad   = 1.5
	projectileHitScale = 1.0
	pickupHitScale     = 0.9
	portalHitScale     = 0.5
)

// CollisionRadius returns the effective hit-circle radius for an entity
func CollisionRadius(e *Entity) float64 {
	r := math.Max(e.W, e.H) / 2
	switch e.Kind {
	case KindShip:
		return r * shipHitScale
	case KindHazard:
		return r*hazardShapeFactor + hazardOutlinePad
	case KindBallistic, KindGuided:
		return r * projectileHitScale
	case KindPickup:
		return r * pickupHitScale
	case KindPortalIn, KindPortalOut:
		return r * portalHitScale
	}
	return r
}

// CirclesOverlap checks if two circles overlap (center distance strictly
// below the radius sum)
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	radSum := r1 + r2
	return dx*dx+dy*dy < radSum*radSum
}

// EntitiesOverlap checks two entities using their effective radii
func EntitiesOverlap(a, b *Entity) bool {
	return CirclesOverlap(a.X, a.Y, CollisionRadius(a), b.X, b.Y, CollisionRadius(b))
}

// SegmentCircleIntersect checks if the segment (x1,y1)-(x2,y2) touches the
// circle at (cx,cy) with radius r. The circle center is projected onto the
// segment and the projection clamped to its ends, so endpoints count and a
// tangent contact (distance == r) is a hit. A zero-length segment never
// intersects.
func SegmentCircleIntersect(x1, y1, x2, y2, cx, cy, r float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return false
	}
	t := Clamp(((cx-x1)*dx+(cy-y1)*dy)/len2, 0, 1)
	px := x1 + dx*t
	py := y1 + dy*t
	return DistanceSq(px, py, cx, cy) <= r*r
}
