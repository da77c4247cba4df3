package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/kardianos/osext"
)

type cleanup struct {
	ctx    context.Context
	cancel context.CancelFunc

	workMu sync.Mutex
	work   []func()
}

func newCleanup() *cleanup {
	ctx, cancel := context.WithCancel(context.Background())
	clean := &cleanup{ctx: ctx, cancel: cancel}

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		cancel()
		log.SetFlags(0)
		log.Println("\ncleaning up...")
		clean.exit(1)
	}()

	return clean
}

// Context is cancelled on interrupt.
func (c *cleanup) Context() context.Context {
	return c.ctx
}

func (c *cleanup) register(fn func()) {
	c.workMu.Lock()
	defer c.workMu.Unlock()

	c.work = append(c.work, fn)
}

// run cancels the context and runs every registered function once. It may be
// called from the signal goroutine while the command is still registering.
func (c *cleanup) run() {
	c.cancel()

	c.workMu.Lock()
	work := c.work
	c.work = nil
	c.workMu.Unlock()

	for _, w := range work {
		w()
	}
}

func (c *cleanup) exit(status int) {
	c.run()
	os.Exit(status)
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `pass-alert update`.")
	}
}
