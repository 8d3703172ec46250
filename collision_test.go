package main

import (
	"testing"
)

func TestCollisionRadiusPerKind(t *testing.T) {
	ship := &Entity{Kind: KindShip, W: 28, H: 28}
	if got := CollisionRadius(ship); abs(got-11.9) > 1e-9 {
		t.Errorf("ship radius: expected 11.9, got %f", got)
	}

	haz := &Entity{Kind: KindHazard, W: 40, H: 40}
	if got := CollisionRadius(haz); abs(got-17.5) > 1e-9 {
		t.Errorf("hazard radius: expected 17.5, got %f", got)
	}

	pk := &Entity{Kind: KindPickup, W: 14, H: 14}
	if got := CollisionRadius(pk); abs(got-6.3) > 1e-9 {
		t.Errorf("pickup radius: expected 6.3, got %f", got)
	}
}

func TestTouchingCirclesDoNotOverlap(t *testing.T) {
	// Center distance exactly equal to the radius sum is not an overlap
	if CirclesOverlap(0, 0, 5, 10, 0, 5) {
		t.Error("circles touching at one point should not count as overlapping")
	}
	if !CirclesOverlap(0, 0, 5, 9.99, 0, 5) {
		t.Error("circles closer than the radius sum should overlap")
	}
}

func TestEntitiesOverlap(t *testing.T) {
	a := &Entity{Kind: KindShip, X: 100, Y: 100, W: 28, H: 28}
	b := &Entity{Kind: KindHazard, X: 110, Y: 100, W: 40, H: 40}
	if !EntitiesOverlap(a, b) {
		t.Error("entities 10 apart with combined radius ~29 should overlap")
	}

	b.X = 200
	if EntitiesOverlap(a, b) {
		t.Error("entities 100 apart should not overlap")
	}
}

func TestSegmentCircleTangentHits(t *testing.T) {
	// Circle center 3 above the segment midpoint, radius exactly 3
	if !SegmentCircleIntersect(0, 0, 10, 0, 5, 3, 3) {
		t.Error("tangent contact should count as a hit")
	}
	// Nudge the circle out of reach
	if SegmentCircleIntersect(0, 0, 10, 0, 5, 3.001, 3) {
		t.Error("circle just beyond tangency should miss")
	}
}

func TestSegmentCircleEndpointClamp(t *testing.T) {
	// Circle beyond the far endpoint, within radius of it
	if !SegmentCircleIntersect(0, 0, 10, 0, 12, 0, 3) {
		t.Error("circle within radius of the clamped endpoint should hit")
	}
	if SegmentCircleIntersect(0, 0, 10, 0, 14, 0, 3) {
		t.Error("circle past endpoint reach should miss")
	}
}

func TestZeroLengthSegmentNeverHits(t *testing.T) {
	if SegmentCircleIntersect(5, 5, 5, 5, 5, 5, 10) {
		t.Error("zero-length segment should never intersect")
	}
}
