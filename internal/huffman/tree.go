package huffman

import "container/heap"

// NodeID is a handle to a node inside a Tree.
type NodeID int32

const noNode NodeID = -1

type node struct {
	weight uint64
	left   NodeID
	right  NodeID
	symbol Symbol
}

func (n *node) leaf() bool { return n.left == noNode }

// Tree is a Huffman tree stored as an arena of nodes. A leaf owns a symbol;
// an internal node owns exactly two children. A tree built from a single
// distinct symbol is one leaf with no parent.
type Tree struct {
	nodes []node
	root  NodeID
}

// Root returns the handle of the root node.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// IsLeaf reports whether id is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool { return t.nodes[id].leaf() }

// Symbol returns the symbol of leaf id.
func (t *Tree) Symbol(id NodeID) Symbol { return t.nodes[id].symbol }

// Children returns the left and right children of internal node id.
func (t *Tree) Children(id NodeID) (left, right NodeID) {
	return t.nodes[id].left, t.nodes[id].right
}

// Weight returns the frequency sum of the subtree at id. Deserialized trees
// carry zero weights.
func (t *Tree) Weight(id NodeID) uint64 { return t.nodes[id].weight }

func (t *Tree) addLeaf(s Symbol, weight uint64) NodeID {
	t.nodes = append(t.nodes, node{weight: weight, left: noNode, right: noNode, symbol: s})
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) addInternal(left, right NodeID) NodeID {
	w := t.nodes[left].weight + t.nodes[right].weight
	t.nodes = append(t.nodes, node{weight: w, left: left, right: right})
	return NodeID(len(t.nodes) - 1)
}

// nodeQueue orders nodes by weight, then by handle. Leaves are added in
// ascending symbol order and internal nodes after them in creation order,
// so the handle doubles as the tie-break sequence number.
type nodeQueue struct {
	tree *Tree
	ids  []NodeID
}

func (q *nodeQueue) Len() int { return len(q.ids) }

func (q *nodeQueue) Less(i, j int) bool {
	wi, wj := q.tree.nodes[q.ids[i]].weight, q.tree.nodes[q.ids[j]].weight
	if wi != wj {
		return wi < wj
	}
	return q.ids[i] < q.ids[j]
}

func (q *nodeQueue) Swap(i, j int) { q.ids[i], q.ids[j] = q.ids[j], q.ids[i] }

func (q *nodeQueue) Push(x any) { q.ids = append(q.ids, x.(NodeID)) }

func (q *nodeQueue) Pop() any {
	n := len(q.ids)
	id := q.ids[n-1]
	q.ids = q.ids[:n-1]
	return id
}

// BuildTree merges the two lightest nodes until one remains. The first node
// taken from the queue becomes the left child.
func BuildTree(table FrequencyTable) (*Tree, error) {
	symbols := table.Symbols()
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{nodes: make([]node, 0, 2*len(symbols)-1)}
	q := &nodeQueue{tree: t, ids: make([]NodeID, 0, len(symbols))}
	for _, s := range symbols {
		q.ids = append(q.ids, t.addLeaf(s, table.Count(s)))
	}
	heap.Init(q)

	for q.Len() > 1 {
		left := heap.Pop(q).(NodeID)
		right := heap.Pop(q).(NodeID)
		heap.Push(q, t.addInternal(left, right))
	}
	t.root = q.ids[0]
	return t, nil
}
