// Seed program: writes a random command script to stdout.
// Run: go run ./cmd/seed -n 1000 -order 5 > script.txt
// Then: go run . -input script.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/cockroachdb/errors"
)

type seedOptions struct {
	n      int
	order  int
	keys   int
	seed   int64
	checks bool
}

func main() {
	var opts seedOptions
	flag.IntVar(&opts.n, "n", 100, "number of Insert commands")
	flag.IntVar(&opts.order, "order", 3, "order passed to Initialize")
	flag.IntVar(&opts.keys, "keys", 0, "size of the key space, 0 means n (smaller values produce duplicate keys)")
	flag.Int64Var(&opts.seed, "seed", 1, "random seed")
	flag.BoolVar(&opts.checks, "check", true, "end the script with Stats() and Check()")
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	if err := writeScript(w, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeScript(w io.Writer, opts seedOptions) error {
	if opts.n < 0 {
		return errors.Newf("writeScript: n must not be negative, got %d", opts.n)
	}
	keySpace := opts.keys
	if keySpace <= 0 {
		keySpace = opts.n
	}
	rng := rand.New(rand.NewSource(opts.seed))

	fmt.Fprintf(w, "# seed=%d n=%d order=%d keys=%d\n", opts.seed, opts.n, opts.order, keySpace)
	fmt.Fprintf(w, "Initialize(%d)\n", opts.order)

	inserted := make([]string, 0, opts.n)
	for i := 0; i < opts.n; i++ {
		key := fmt.Sprintf("%.2f", rng.Float64()*float64(keySpace))
		if keySpace < opts.n {
			key = fmt.Sprintf("k%d", rng.Intn(keySpace))
		}
		inserted = append(inserted, key)
		fmt.Fprintf(w, "Insert(%s, Value%d)\n", key, i+1)
	}

	for i := 0; i < len(inserted) && i < 10; i++ {
		fmt.Fprintf(w, "Search(%s)\n", inserted[rng.Intn(len(inserted))])
	}
	if len(inserted) >= 2 {
		a, b := inserted[rng.Intn(len(inserted))], inserted[rng.Intn(len(inserted))]
		if b < a {
			a, b = b, a
		}
		fmt.Fprintf(w, "Search(%s, %s)\n", a, b)
	}
	if opts.checks {
		fmt.Fprintln(w, "Stats()")
		fmt.Fprintln(w, "Check()")
	}
	_, err := fmt.Fprintln(w, "exit")
	return err
}
