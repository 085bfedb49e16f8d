package safety

import "math"

// CenterOf returns the midpoint of an (x1, y1, x2, y2) bounding box,
// truncated to integers the same way the upstream detector derives
// its centers, so distance comparisons stay deterministic across the
// pipeline.
func CenterOf(box []int) []int {
	return []int{(box[0] + box[2]) / 2, (box[1] + box[3]) / 2}
}

// Distance returns the Euclidean distance between two pixel points.
func Distance(p1, p2 []int) float64 {
	dx := float64(p2[0] - p1[0])
	dy := float64(p2[1] - p1[1])
	return math.Sqrt(dx*dx + dy*dy)
}
