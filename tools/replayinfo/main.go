package main

import (
	"fmt"
	"os"
	"time"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/infrastructure/storage"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "show":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replayinfo show <file.snrp>")
			return
		}
		session := load(os.Args[2])
		fmt.Printf("Recorded:  %s\n", time.Unix(session.Timestamp, 0).UTC().Format(time.RFC3339))
		fmt.Printf("Map CRC32: %08x\n", session.MapChecksum)
		fmt.Printf("Actions:   %d\n", len(session.Actions))
		for i, act := range session.Actions {
			fmt.Printf("%5d  turn %-6d %s\n", i, act.Turn, act.Direction)
		}
	case "stats":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replayinfo stats <file.snrp>")
			return
		}
		printStats(load(os.Args[2]))
	default:
		printHelp()
	}
}

func load(path string) *domain.ReplaySession {
	session, err := (&storage.ReplayService{}).Load(path)
	if err != nil {
		fmt.Printf("Failed to read replay: %v\n", err)
		os.Exit(1)
	}
	return session
}

// printStats - сколько раз нажимали каждое направление
func printStats(session *domain.ReplaySession) {
	counts := make(map[domain.Direction]int)
	for _, act := range session.Actions {
		counts[act.Direction]++
	}
	for dir := domain.Up; dir <= domain.StandStill; dir++ {
		if counts[dir] > 0 {
			fmt.Printf("%-12s %d\n", dir, counts[dir])
		}
	}
}

func printHelp() {
	fmt.Println("replayinfo - inspect .snrp replay files")
	fmt.Println("Commands:")
	fmt.Println("  show <file>   Print header and every recorded attempt")
	fmt.Println("  stats <file>  Count attempts per direction")
}
