package astar

type PriorityQueueItem[NodeType comparable, CostType Cost] struct {
	Node         NodeType
	GScore       CostType
	FCost        CostType
	IndexInQueue int
}

// PriorityQueue is a min-heap on FCost for use with container/heap. Ties are
// broken in favour of the larger GScore, which reaches goals sooner when the
// heuristic is exact near the end of a path.
type PriorityQueue[NodeType comparable, CostType Cost] []*PriorityQueueItem[NodeType, CostType]

func (queue PriorityQueue[NodeType, CostType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType, CostType]) Less(i, j int) bool {
	if queue[i].FCost == queue[j].FCost {
		return queue[i].GScore > queue[j].GScore
	}
	return queue[i].FCost < queue[j].FCost
}
func (queue PriorityQueue[NodeType, CostType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[NodeType, CostType]) Push(x any) {
	item := x.(*PriorityQueueItem[NodeType, CostType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[NodeType, CostType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
