// Command example demonstrates syncchan's blocking/non-blocking
// send-receive pair and the Select engine with a small worker-pool
// program: a handful of producers feed a work queue, a handful of workers
// drain it, and closing a separate control channel stops the workers via
// Select. Select tries the work queue first, so a worker only sees the
// control channel once the work queue has no item for it.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/networkteam/syncchan"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil)).With("component", "example")

	work := syncchan.NewTypedWithOptions[string](8, syncchan.ChannelOptions{Logger: logger})
	quit := syncchan.New(1)

	var g errgroup.Group

	const producers = 3
	const itemsPerProducer = 10
	for p := 0; p < producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < itemsPerProducer; i++ {
				if err := work.Send(fmt.Sprintf("producer-%d-item-%d", p, i)); err != nil {
					return nil
				}
			}
			return nil
		})
	}

	const workers = 2
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for {
				var dest any
				idx, err := syncchan.Select([]syncchan.SelectOp{
					{Chan: work.Raw(), Dir: syncchan.Recv, Dest: &dest},
					{Chan: quit, Dir: syncchan.Recv},
				})
				switch {
				case idx == 1:
					logger.Info("worker stopping on quit signal", "worker", w)
					return nil
				case err != nil:
					return nil
				default:
					logger.Info("worker processed item", "worker", w, "item", dest)
				}
			}
		})
	}

	time.Sleep(200 * time.Millisecond)
	_ = quit.Close()
	_ = work.Raw().Close()

	if err := g.Wait(); err != nil {
		logger.Error("worker pool exited with error", "error", err)
		os.Exit(1)
	}
}
