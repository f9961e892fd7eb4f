package arena

// applyOrder reorders data in place so that data[k] afterwards holds the
// element that was at data[order[k]] before. order must be a permutation of
// 0..len(data)-1; it is consumed as scratch space.
//
// The classic gather reorder allocates a second array. This version follows
// permutation cycles instead: pick an unsettled slot, swap along the cycle
// until it closes, mark every visited slot settled. Each element moves at
// most once, giving O(n) time with O(1) extra space.
func applyOrder[T any](data []T, order []int) {
	for i := range data {
		if order[i] == i {
			continue
		}
		cur := i
		for {
			target := order[cur]
			order[cur] = cur
			if order[target] == target {
				break
			}
			data[cur], data[target] = data[target], data[cur]
			cur = target
		}
	}
}
