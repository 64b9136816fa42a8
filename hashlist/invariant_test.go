package hashlist

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// model is a plain slice version of the list used as the reference
type model []int

func (m model) indexOf(v int) int {
	for i, x := range m {
		if x == v {
			return i
		}
	}
	return -1
}

func (m model) without(v int) model {
	i := m.indexOf(v)
	if i < 0 {
		return m
	}
	result := make(model, 0, len(m)-1)
	result = append(result, m[:i]...)
	return append(result, m[i+1:]...)
}

// insertBefore mirrors List.InsertBefore, mark < 0 means the end
func (m model) insertBefore(mark, v int) model {
	if mark == v {
		return m
	}
	rest := m.without(v)
	at := rest.indexOf(mark)
	if at < 0 {
		return append(rest, v)
	}
	result := make(model, 0, len(rest)+1)
	result = append(result, rest[:at]...)
	result = append(result, v)
	return append(result, rest[at:]...)
}

func requireConsistent(t *testing.T, l *List[int]) {
	t.Helper()

	require.Equal(t, l.seq.Len(), len(l.index), "index and sequence sizes differ")

	seen := make(map[int]struct{}, len(l.index))
	for curr := l.seq.Front(); curr != nil; curr = curr.Next() {
		_, dup := seen[curr.Value]
		require.False(t, dup, "value %d is in the sequence twice", curr.Value)
		seen[curr.Value] = struct{}{}

		el, found := l.index[curr.Value]
		require.True(t, found, "value %d is not indexed", curr.Value)
		require.True(t, el == curr, "index entry of %d points to another node", curr.Value)
	}
}

func TestList_RandomOperationsKeepIndexConsistent(t *testing.T) {
	const (
		steps  = 5_000
		values = 40
	)

	rnd := rand.New(rand.NewSource(42))
	l := New[int]()
	var m model

	for i := 0; i < steps; i++ {
		v := rnd.Intn(values)

		switch op := rnd.Intn(6); op {
		case 0:
			l.InsertFront(v)
			if len(m) == 0 {
				m = model{v}
			} else {
				m = m.insertBefore(m[0], v)
			}
		case 1:
			l.InsertBack(v)
			m = m.insertBefore(-1, v)
		case 2, 3:
			mark := rnd.Intn(values)
			pos, found := l.Find(mark)
			if !found {
				mark = -1
			}
			_, err := l.InsertBefore(pos, v)
			require.NoError(t, err)
			m = m.insertBefore(mark, v)
		case 4:
			removed := l.Remove(v)
			require.Equal(t, m.indexOf(v) >= 0, removed)
			m = m.without(v)
		case 5:
			require.Equal(t, m.indexOf(v) >= 0, l.Contains(v))
		}

		requireConsistent(t, l)
		if diff := cmp.Diff([]int(m), l.Items(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d: sequence mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestList_InsertBeforeOwnPositionKeepsIndex(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	pos, _ := l.Find(2)
	el := l.index[2]

	moved, err := l.InsertBefore(pos, 2)
	require.NoError(t, err)

	requireConsistent(t, l)
	require.True(t, l.index[2] == el)
	require.Equal(t, pos, moved)
	if diff := cmp.Diff([]int{1, 2, 3}, l.Items()); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
