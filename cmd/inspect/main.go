// Inspect runs a command script and dumps every index it leaves behind.
// Usage: go run ./cmd/inspect <script>
// Example: go run ./cmd/seed -n 50 > /tmp/s.txt && go run ./cmd/inspect /tmp/s.txt
package main

import (
	"fmt"
	"io"
	"os"

	indexmanager "StrIndex/index_manager"
	executor "StrIndex/query_executor"
	"StrIndex/session"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <script>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s script.txt\n", os.Args[0])
		os.Exit(1)
	}
	if err := inspect(os.Args[1], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inspect(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	im, err := indexmanager.NewIndexManager(indexmanager.Options{DefaultOrder: 4})
	if err != nil {
		return err
	}
	defer im.CloseAll()

	// Search results are not interesting here, only the final shape.
	sess := session.New(im, io.Discard, zap.NewNop())
	sum, err := sess.Run(f, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Script: %s (%d commands, %d errors)\n\n", path, sum.Commands, sum.Errors)

	for _, name := range im.Names() {
		idx, err := im.GetIndex(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Index %s id=%s digest=%016x\n", name, idx.ID(), idx.Digest())
		if err := idx.Inspect(w); err != nil {
			return err
		}
		fmt.Fprintln(w, executor.FormatStats(name, idx.Stats()))
		if err := idx.Validate(); err != nil {
			fmt.Fprintf(w, "CORRUPT: %v\n", err)
		} else {
			fmt.Fprintln(w, "OK")
		}
		fmt.Fprintln(w)
	}
	return nil
}
