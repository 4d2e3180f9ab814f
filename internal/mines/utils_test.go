package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCelltodo(t *testing.T) {
	std := newCelltodo(5)
	std.add(3)
	std.add(1)
	std.add(3)

	var got []int
	for {
		i, ok := std.pop()
		if !ok {
			break
		}
		got = append(got, i)
		if i == 3 {
			std.add(4)
			std.add(1)
		}
	}
	assert.Equal(t, []int{3, 1, 4}, got)

	std.add(3)
	_, ok := std.pop()
	assert.False(t, ok, "popped cells must not be queued again")
}
