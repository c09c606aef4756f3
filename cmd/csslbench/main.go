// csslbench drives the cache-sensitive skip list through the same
// insert/lookup/range workload the source's benchmark harness used,
// reporting throughput instead of asserting correctness.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/flippingbits/cssl/cssl"
)

var (
	numElementsFlag = &cli.IntFlag{
		Name:  "n",
		Value: 1_000_000,
		Usage: "number of keys to insert",
	}
	sparseFlag = &cli.BoolFlag{
		Name:  "sparse",
		Usage: "draw keys from a sparse random range instead of a dense 1..n run",
	}
	maxLevelFlag = &cli.IntFlag{
		Name:  "max-level",
		Value: 9,
		Usage: "number of fast lanes",
	}
	skipFlag = &cli.IntFlag{
		Name:  "skip",
		Value: 5,
		Usage: "down-sampling ratio between adjacent fast lanes",
	}
	rangeFractionFlag = &cli.IntFlag{
		Name:  "range-fraction",
		Value: 10,
		Usage: "range query width as n/range-fraction",
	}
)

func main() {
	app := &cli.App{
		Name:  "csslbench",
		Usage: "benchmark the cache-sensitive skip list's insert, lookup, and range paths",
		Flags: []cli.Flag{numElementsFlag, sparseFlag, maxLevelFlag, skipFlag, rangeFractionFlag},
		Action: func(c *cli.Context) error {
			return run(
				c.Int("n"),
				c.Bool("sparse"),
				uint8(c.Int("max-level")),
				uint8(c.Int("skip")),
				c.Int("range-fraction"),
			)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(n int, sparse bool, maxLevel, skip uint8, rangeFraction int) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	keys := generateKeys(n, sparse)

	idx := cssl.NewIndex(maxLevel, skip)
	defer idx.Destroy()

	start := time.Now()
	for _, k := range keys {
		if err := idx.BulkInsert(k); err != nil {
			return fmt.Errorf("insert %d: %w", k, err)
		}
	}
	elapsed := time.Since(start).Seconds()
	sugar.Infow("insertion done", "ops_per_sec", int(float64(n)/elapsed), "n", n)

	shuffled := append([]uint32(nil), keys...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	repeat := 100_000_000 / n
	if repeat < 1 {
		repeat = 1
	}

	start = time.Now()
	for r := 0; r < repeat; r++ {
		for _, k := range shuffled {
			if idx.Lookup(k) != k {
				return fmt.Errorf("lookup miss for key %d that was inserted", k)
			}
		}
	}
	elapsed = time.Since(start).Seconds()
	sugar.Infow("lookup done", "ops_per_sec", int(float64(n*repeat)/elapsed), "repeat", repeat)

	rangeSize := uint32(n / rangeFraction)
	if rangeSize == 0 {
		rangeSize = 1
	}
	const rangeQueries = 1_000_000
	start = time.Now()
	for i := 0; i < rangeQueries; i++ {
		lo := shuffled[i%len(shuffled)]
		hi := lo + rangeSize
		if hi >= cssl.Sentinel {
			hi = cssl.Sentinel - 1
		}
		if _, err := idx.Range(lo, hi); err != nil {
			return fmt.Errorf("range [%d, %d]: %w", lo, hi, err)
		}
	}
	elapsed = time.Since(start).Seconds()
	sugar.Infow("range done", "ops_per_sec", int(float64(rangeQueries)/elapsed), "range_size", rangeSize)

	return nil
}

func generateKeys(n int, sparse bool) []uint32 {
	keys := make([]uint32, n)
	if !sparse {
		for i := 0; i < n; i++ {
			keys[i] = uint32(i + 1)
		}
		return keys
	}

	for i := 0; i < n; i++ {
		keys[i] = uint32(rand.Intn(1<<31-2)) + 1
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return dedupeSorted(keys)
}

// dedupeSorted collapses the rare random collisions sparse key generation
// can produce; BulkInsert requires strictly increasing keys.
func dedupeSorted(keys []uint32) []uint32 {
	if len(keys) == 0 {
		return keys
	}
	out := keys[:1]
	for _, k := range keys[1:] {
		if k != out[len(out)-1] {
			out = append(out, k)
		}
	}
	return out
}
