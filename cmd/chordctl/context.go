package main

import (
	"sync"

	"github.com/kirillkom/fretboard-chords/internal/bootstrap"
	"github.com/kirillkom/fretboard-chords/internal/config"
)

type commandContext struct {
	jsonFlag *bool

	appOnce sync.Once
	app     *bootstrap.App
	appErr  error
}

func newCommandContext(jsonFlag *bool) *commandContext {
	return &commandContext{jsonFlag: jsonFlag}
}

// ensureApp builds the in-process core on first use. The CLI never talks to
// Postgres or NATS.
func (c *commandContext) ensureApp() (*bootstrap.App, error) {
	c.appOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			c.appErr = err
			return
		}
		c.app, c.appErr = bootstrap.NewCore(cfg)
	})
	return c.app, c.appErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}
