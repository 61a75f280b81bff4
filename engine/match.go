package engine

import (
	"maps"
	"slices"
	"sync"

	"github.com/lixenwraith/lightcycle/cycle"
)

// Match tallies finished rounds across restarts, in memory only
type Match struct {
	mu      sync.Mutex
	rounds  int
	draws   int
	aborted int
	wins    map[cycle.ID]int
}

func NewMatch() *Match {
	return &Match{wins: make(map[cycle.ID]int)}
}

// Record adds a finished round; unfinished statuses are ignored
func (m *Match) Record(s Status) {
	if !s.Finished() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	switch s.Outcome {
	case OutcomeWinner:
		m.wins[s.Winner]++
	case OutcomeDraw:
		m.draws++
	case OutcomeAborted:
		m.aborted++
		return
	}
	m.rounds++
}

// Rounds counts recorded rounds that ended in a winner or a draw
func (m *Match) Rounds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rounds
}

func (m *Match) Draws() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draws
}

func (m *Match) Wins(id cycle.ID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wins[id]
}

// Leader returns the vehicle with most wins, lowest ID on ties; false when nobody has won
func (m *Match) Leader() (cycle.ID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var best cycle.ID
	found := false
	for _, id := range slices.Sorted(maps.Keys(m.wins)) {
		if !found || m.wins[id] > m.wins[best] {
			best, found = id, true
		}
	}
	return best, found
}
