package analysis

import "go.uber.org/fx"

var Module = fx.Module("analysis.service",
	fx.Provide(func(c *HTTPClient) Client { return c }),
	fx.Provide(NewHTTPClient),
	fx.Provide(NewService),
)
