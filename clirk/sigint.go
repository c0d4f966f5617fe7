package clirk

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/monokit-dev/monokit/internal/logging"
)

// DefaultSigintHandler prints the SIGINT message and exits with code 1
func DefaultSigintHandler(ctx *Context) error {
	fmt.Fprintln(ctx.stdout, ctx.SigintMessage)
	ctx.Exit(1)
	return nil
}

// applySigintHandler runs the context's handler on every SIGINT until Stop is called
func (c *Context) applySigintHandler() {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, os.Interrupt)

	c.stop = func() {
		signal.Stop(signals)
		close(done)
	}

	go func() {
		for {
			select {
			case <-signals:
				c.handleSigint()
			case <-done:
				return
			}
		}
	}()
}

func (c *Context) handleSigint() {
	logging.Logger.Info("Received SIGINT", "command", c.CommandName)

	if err := c.SigintHandler(c); err != nil {
		logging.Logger.Error("SIGINT handler failed", "error", err)
		fmt.Fprintln(c.stdout, Failure("Error while handling SIGINT: "+err.Error()))
		c.Exit(1)
	}
}
