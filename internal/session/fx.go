package session

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Module("session",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, s *Session) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return s.Start(ctx)
			},
		})
	}),
)
