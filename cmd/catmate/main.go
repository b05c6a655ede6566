// Command catmate is the command-line driver for the search engine: it
// accepts a FEN and a depth, optionally persists a transposition table,
// and prints the move it chooses.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nilchess/catmate/engine"
)

var (
	ttPath   = flag.String("tt", "", "path to a persistent transposition table")
	bookPath = flag.String("book", "", "path to an opening book (default: testdata/book.txt, if present)")
	verbose  = flag.Bool("v", false, "log search progress to stderr")
	version  = flag.Bool("version", false, "print version and exit")

	buildVersion = "(devel)"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("catmate: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <fen> <depth>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println("catmate", buildVersion)
		return
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	fen := flag.Arg(0)
	depth, err := parseDepth(flag.Arg(1))
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		log.Println("bad fen:", err)
		os.Exit(1)
	}

	cfg := engine.DefaultConfig()
	cfg.Depth = depth
	cfg.TTPath = *ttPath

	driver := engine.NewRootDriver(cfg)
	if *verbose {
		glog := logging.MustGetLogger("catmate")
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
			`%{time:15:04:05.000} %{level:.4s} %{message}`,
		))
		logging.SetBackend(formatted)
		driver.Logger = engine.NewGoLogger(glog)
	}
	if *ttPath != "" {
		if err := driver.TT.Load(*ttPath); err != nil && !os.IsNotExist(err) {
			log.Println("tt load:", err)
		}
	}

	path := *bookPath
	if path == "" {
		path = "testdata/book.txt"
	}
	if book, err := engine.LoadBook(path); err == nil {
		driver.Book = book
	} else if *bookPath != "" {
		log.Println("book load:", err)
	}

	log.Printf("catmate %s starting, depth %d", buildVersion, depth)

	move, value, stats := driver.FindBestMove(pos)
	printSummary(stats, value)
	fmt.Println(move.UCI())
}

func parseDepth(s string) (int, error) {
	var depth int
	if _, err := fmt.Sscanf(s, "%d", &depth); err != nil || depth < 0 {
		return 0, fmt.Errorf("bad depth %q", s)
	}
	return depth, nil
}

func printSummary(stats engine.Stats, value int) {
	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "nodes=%d value=%d\n", stats.Nodes, value)
}

