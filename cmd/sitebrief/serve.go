package main

import (
	sbgin "github.com/fwojciec/sitebrief/gin"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	addr := c.Addr
	if addr == "" {
		addr = ":" + deps.Config.Port
	}

	srv := sbgin.NewServer(deps.Briefer,
		sbgin.WithSummaryService(deps.Summaries),
		sbgin.WithLogger(deps.Logger),
		sbgin.WithRateLimit(deps.Config.RateLimit, deps.Config.RateBurst),
	)
	return srv.ListenAndServe(deps.Ctx, addr)
}
