package utils

import "math"

// CreateRankList creates 1-based ranks for an already ordered list.
// Ranks stop at math.MaxUint16, so callers cap their lists to that length.
func CreateRankList(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	if count > math.MaxUint16 {
		count = math.MaxUint16
	}
	ranks := make([]uint16, count)
	for i := range ranks {
		ranks[i] = uint16(i + 1)
	}
	return ranks
}
