// session.go implements a stateful wrapper around a Position and a
// RootDriver: play a move, let the engine reply, and keep an
// append-only history of what was played and what the engine thought
// of it. Search itself never consults this history; it exists purely
// for the driver's own diagnostics, matching the role spec.md assigns
// the "Game history" data type but leaves without operations.

package engine

// HistoryEntry records one played move together with the engine's
// evaluation of the position it led to.
type HistoryEntry struct {
	Move  Move
	Value int
}

// Session tracks one game: the current position, the driver searching
// it, and the history of moves played so far.
type Session struct {
	Driver  *RootDriver
	Pos     *Position
	History []HistoryEntry
}

// NewSession starts a session at pos using driver for search.
func NewSession(driver *RootDriver, pos *Position) *Session {
	return &Session{Driver: driver, Pos: pos}
}

// Play applies m to the current position and appends it to the history
// with a zero value, since m was supplied by the caller rather than
// found by search.
func (s *Session) Play(m Move) {
	s.Pos = ApplyMove(s.Pos, m)
	s.History = append(s.History, HistoryEntry{Move: m})
}

// PlayEngineMove asks the driver for its best move in the current
// position, plays it, records the value the search returned, and
// returns the move played.
func (s *Session) PlayEngineMove() Move {
	m, value, _ := s.Driver.FindBestMove(s.Pos)
	s.Pos = ApplyMove(s.Pos, m)
	s.History = append(s.History, HistoryEntry{Move: m, Value: value})
	return m
}
