// path: internal/game/history.go
package game

// visited records, for every discovered configuration, the single move that
// produced it from its parent. The starting configuration maps to noParent.
type visited struct {
	parents map[string]Move
}

func newVisited(start Positions) *visited {
	v := &visited{parents: make(map[string]Move, 1024)}
	v.parents[start.key()] = noParent
	return v
}

// record stores the producing move of ps. It reports false if ps was
// already discovered, in which case the earlier move is kept.
func (v *visited) record(ps Positions, m Move) bool {
	k := ps.key()
	if _, ok := v.parents[k]; ok {
		return false
	}
	v.parents[k] = m
	return true
}

func (v *visited) size() int { return len(v.parents) }

// path walks parent moves back from goal to the start and returns them in
// playing order.
func (v *visited) path(goal Positions) []Move {
	ps := goal.Clone()
	moves := make([]Move, 0)
	for {
		m := v.parents[ps.key()]
		if m.IsZero() {
			break
		}
		previous(ps, m)
		moves = append(moves, m)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// frontier is a FIFO queue of discovered configurations awaiting expansion.
type frontier struct {
	items []Positions
	head  int
}

func (f *frontier) push(ps Positions) { f.items = append(f.items, ps) }

func (f *frontier) pop() (Positions, bool) {
	if f.head >= len(f.items) {
		return nil, false
	}
	ps := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	if f.head > 1024 && f.head*2 > len(f.items) {
		f.items = append([]Positions(nil), f.items[f.head:]...)
		f.head = 0
	}
	return ps, true
}
