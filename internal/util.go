package internal

// ReconstructPath rebuilds a path by following back-pointers from current
// until lookup reports no predecessor. Nodes come back in start-to-current
// order and labels[i] names the edge nodes[i] -> nodes[i+1].
func ReconstructPath[NodeType any, LabelType any](
	current NodeType,
	lookup func(NodeType) (NodeType, LabelType, bool),
) (nodes []NodeType, labels []LabelType) {
	nodes = []NodeType{current}
	for {
		previousNode, label, exists := lookup(current)
		if !exists {
			break
		}
		nodes = append(nodes, previousNode)
		labels = append(labels, label)
		current = previousNode
	}
	Reverse(nodes)
	Reverse(labels)
	return nodes, labels
}

// Reverse reverses items in place.
func Reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
