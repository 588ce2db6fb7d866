package seed

import "fmt"

// IDMap maps a 1-based template position to the id the store assigned to that row.
type IDMap struct {
	byPos map[int]int64
}

// NewIDMap pairs ids with template positions. ids[i] belongs to position i+1, and
// exactly want ids are required.
func NewIDMap(ids []int64, want int) (IDMap, error) {
	if len(ids) != want {
		return IDMap{}, fmt.Errorf("expected %d ids, store has %d", want, len(ids))
	}
	m := IDMap{byPos: make(map[int]int64, len(ids))}
	seen := make(map[int64]bool, len(ids))
	for i, id := range ids {
		if id <= 0 {
			return IDMap{}, fmt.Errorf("invalid id %d at position %d", id, i+1)
		}
		if seen[id] {
			return IDMap{}, fmt.Errorf("duplicate id %d at position %d", id, i+1)
		}
		seen[id] = true
		m.byPos[i+1] = id
	}
	return m, nil
}

func (m IDMap) Lookup(pos int) (int64, bool) {
	id, ok := m.byPos[pos]
	return id, ok
}

func (m IDMap) Len() int {
	return len(m.byPos)
}
