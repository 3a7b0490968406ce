package dedup

// lruNode is a node in a doubly-linked LRU list.
// The node stores its key for O(1) deletion from the owning map.
type lruNode struct {
	key  Key
	prev *lruNode
	next *lruNode
}

// lruList orders keys by recency: head is the most recently used, tail
// the least. The list is not thread-safe; callers must synchronize.
type lruList struct {
	head *lruNode
	tail *lruNode
	len  int
}

// pushFront adds key as the most recently used and returns its node.
func (l *lruList) pushFront(key Key) *lruNode {
	n := &lruNode{key: key}
	l.linkFront(n)
	return n
}

// moveToFront marks an existing node as the most recently used.
func (l *lruList) moveToFront(n *lruNode) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// removeOldest unlinks the least recently used node and returns its key.
// ok is false if the list is empty.
func (l *lruList) removeOldest() (key Key, ok bool) {
	n := l.tail
	if n == nil {
		return Key{}, false
	}
	l.unlink(n)
	return n.key, true
}

// clear empties the list.
func (l *lruList) clear() {
	*l = lruList{}
}

func (l *lruList) linkFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lruList) unlink(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
