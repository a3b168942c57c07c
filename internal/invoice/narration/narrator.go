// Package narration resolves amount-in-words text asynchronously. The
// numeric totals are published synchronously by the engine; narration
// follows once the conversion resolves, last write wins.
package narration

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dhrupad777/paperbrain/internal/invoice/words"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Converter produces the words form of an amount. Implementations may be
// remote; failure degrades to empty narration, never blocks totals.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal) (string, error)
}

// LocalConverter narrates with the in-process words renderer.
type LocalConverter struct{}

func (LocalConverter) Convert(_ context.Context, amount decimal.Decimal) (string, error) {
	return words.Convert(amount), nil
}

// Narrator tags every conversion request with a monotonically increasing
// token and discards results that resolve after a newer request was
// issued, so an earlier slow conversion can never overwrite a later one.
type Narrator struct {
	conv   Converter
	logger *zap.Logger

	seq atomic.Uint64
	mu  sync.Mutex
	wg  sync.WaitGroup
}

func New(conv Converter, logger *zap.Logger) *Narrator {
	if conv == nil {
		conv = LocalConverter{}
	}
	return &Narrator{conv: conv, logger: logger}
}

// Narrate converts both totals in the background and calls apply with
// the results, but only if this request is still the latest. Conversion
// failure applies empty narration for the failed amount.
func (n *Narrator) Narrate(ctx context.Context, grandTotal, taxTotal decimal.Decimal, apply func(amountInWords, taxAmountInWords string)) {
	token := n.seq.Add(1)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		amountInWords, err := n.conv.Convert(ctx, grandTotal)
		if err != nil {
			n.logger.Warn("amount narration unavailable", zap.Error(err))
			amountInWords = ""
		}
		taxInWords, err := n.conv.Convert(ctx, taxTotal)
		if err != nil {
			n.logger.Warn("tax narration unavailable", zap.Error(err))
			taxInWords = ""
		}

		n.mu.Lock()
		defer n.mu.Unlock()
		if n.seq.Load() != token {
			return // a newer edit superseded this conversion
		}
		apply(amountInWords, taxInWords)
	}()
}

// Wait blocks until all in-flight conversions settle.
func (n *Narrator) Wait() {
	n.wg.Wait()
}
