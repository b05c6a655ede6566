// logging.go defines the Logger interface the search and root driver
// report progress through. NulLogger is the silent default; GoLogger
// backs it with github.com/op/go-logging for callers that want one.

package engine

import "github.com/op/go-logging"

// Stats summarizes one search's work.
type Stats struct {
	Nodes    uint64 // positions visited across minimax
	CacheHit uint64
	Depth    int
}

// Logger reports search progress. Implementations must tolerate being
// called from multiple root-task goroutines concurrently.
type Logger interface {
	// BeginSearch signals a new findBestMove call has started.
	BeginSearch(pos *Position, depth int)
	// EndSearch signals the search has returned its result.
	EndSearch(stats Stats, best Move, value int)
	// Cutoff reports a beta cutoff during minimax, for move-ordering
	// diagnostics.
	Cutoff(ply, depth int, m Move)
}

// NulLogger discards everything; it is the default when no Logger is
// configured.
type NulLogger struct{}

func (NulLogger) BeginSearch(*Position, int) {}
func (NulLogger) EndSearch(Stats, Move, int) {}
func (NulLogger) Cutoff(int, int, Move)      {}

// GoLogger backs Logger with a *logging.Logger from go-logging, one
// line per event at the level that event warrants.
type GoLogger struct {
	log *logging.Logger
}

// NewGoLogger wraps an existing go-logging logger, as returned by
// logging.MustGetLogger.
func NewGoLogger(log *logging.Logger) *GoLogger {
	return &GoLogger{log: log}
}

func (l *GoLogger) BeginSearch(pos *Position, depth int) {
	l.log.Infof("search started: fen=%q depth=%d", pos.String(), depth)
}

func (l *GoLogger) EndSearch(stats Stats, best Move, value int) {
	l.log.Infof("search finished: nodes=%d cache_hits=%d best=%s value=%d",
		stats.Nodes, stats.CacheHit, best.UCI(), value)
}

func (l *GoLogger) Cutoff(ply, depth int, m Move) {
	l.log.Debugf("beta cutoff at ply=%d depth=%d move=%s", ply, depth, m.UCI())
}
