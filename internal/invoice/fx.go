package invoice

import (
	"github.com/dhrupad777/paperbrain/internal/invoice/engine"
	"github.com/dhrupad777/paperbrain/internal/invoice/narration"
	"github.com/dhrupad777/paperbrain/internal/invoice/render"
	"github.com/dhrupad777/paperbrain/internal/invoice/words"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice",
	fx.Provide(render.NewRenderer),
	fx.Provide(func() *engine.Engine { return engine.New(words.Convert) }),
	fx.Provide(func() narration.Converter { return narration.LocalConverter{} }),
	fx.Provide(narration.New),
)
