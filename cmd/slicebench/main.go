// Workload driver for the slicebuf arena and stream: each worker owns one
// arena, interns a batch of UUID keys and fixed-size values, then replays
// every issued byte through a Stream and cross-checks the totals.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/slicebuf"
)

var keySuffix = []byte{0x00}

func main() {
	ca := newCmdArgs(os.Stderr)
	if err := ca.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if ca.help {
		ca.fs.SetOutput(os.Stdout)
		ca.fs.PrintDefaults()
		return
	}
	if ca.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var totalBytes atomic.Int64
	start := time.Now()

	g, ctx := errgroup.WithContext(context.Background())
	for w := uint(0); w < ca.Workers; w++ {
		g.Go(func() error {
			return runWorker(ctx, ca, int(w), &totalBytes)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}

	elapsed := time.Since(start)
	log.Infof("%d workers x %d keys: %s, %.1f MB/s replayed",
		ca.Workers, ca.Keys, elapsed.Round(time.Millisecond),
		float64(totalBytes.Load())/1e6/elapsed.Seconds())
}

func runWorker(ctx context.Context, ca *cmdArgs, id int, total *atomic.Int64) error {
	a, err := slicebuf.New(int(ca.PageSize))
	if err != nil {
		return err
	}

	value := make([]byte, ca.Datasize)
	for i := range value {
		value[i] = byte(i)
	}

	for i := uint(0); i < ca.Keys; i++ {
		key := uuid.New()
		if _, err := a.InternSuffix(key[:], keySuffix, ca.Aligned); err != nil {
			return err
		}
		if _, err := a.Intern(value, ca.Aligned); err != nil {
			return err
		}
	}

	// Hold the pages in place while the stream borrows them.
	pin := a.Pin()
	defer pin.Unpin()

	st, err := slicebuf.NewStream(a.Pages())
	if err != nil {
		return err
	}
	defer st.Close()

	buf := make([]byte, 4096)
	var replayed int64
	for {
		n, err := st.ReadContext(ctx, buf)
		replayed += int64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if replayed != int64(a.Size()) {
		return fmt.Errorf("worker %d: stream replayed %d bytes, arena issued %d",
			id, replayed, a.Size())
	}
	total.Add(replayed)

	m := a.Metrics()
	log.Debugf("worker %d: %d pages, %d/%d bytes, %.1f%% utilization",
		id, m.PageCount, m.Size, m.Allocated, m.Utilization*100)
	return nil
}
