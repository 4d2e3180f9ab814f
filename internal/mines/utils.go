package mines

const (
	endOfList = -1
	notQueued = -2
)

// celltodo is an intrusive FIFO of cell indices. next[i] links i to the
// following entry and stays set after i is popped, so every cell enters the
// list at most once.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(n int) *celltodo {
	std := &celltodo{
		next: make([]int, n),
		head: endOfList, tail: endOfList,
	}
	for i := range std.next {
		std.next[i] = notQueued
	}
	return std
}

func (std *celltodo) queued(i int) bool {
	return std.next[i] != notQueued
}

func (std *celltodo) add(i int) {
	if std.queued(i) {
		return
	}
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = endOfList
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return 0, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = endOfList
	}
	return i, true
}
