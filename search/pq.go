package search

// queueItem is a cell (row-major index), the distance it was queued at and
// the round in which it was queued (the number of cells visited so far).
type queueItem struct {
	idx   int
	dist  int
	round int
}

// distanceQueue is a min-heap of queueItem ordered by (dist, round, idx).
// Among equal distances, cells reached in an earlier round come first and
// cells reached in the same round pop in scan order, which is the order a
// stable re-sort of the row-major cell list by distance produces. Stale
// entries are left in place and skipped when popped ("lazy decrease-key").
type distanceQueue []queueItem

func (pq distanceQueue) Len() int { return len(pq) }

func (pq distanceQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].round != pq[j].round {
		return pq[i].round < pq[j].round
	}
	return pq[i].idx < pq[j].idx
}

func (pq distanceQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distanceQueue) Push(x any) { *pq = append(*pq, x.(queueItem)) }

func (pq *distanceQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
