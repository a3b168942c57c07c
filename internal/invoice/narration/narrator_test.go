package narration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// slowConverter blocks each conversion until its gate channel is closed,
// letting tests resolve conversions out of request order.
type slowConverter struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
}

func newSlowConverter() *slowConverter {
	return &slowConverter{gates: make(map[string]chan struct{})}
}

func (c *slowConverter) gate(amount string) chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.gates[amount]
	if !ok {
		g = make(chan struct{})
		c.gates[amount] = g
	}
	return g
}

func (c *slowConverter) Convert(_ context.Context, amount decimal.Decimal) (string, error) {
	<-c.gate(amount.String())
	return "words of " + amount.String(), nil
}

type failingConverter struct{}

func (failingConverter) Convert(context.Context, decimal.Decimal) (string, error) {
	return "", errors.New("converter offline")
}

func TestNarrateAppliesLatest(t *testing.T) {
	n := New(LocalConverter{}, zap.NewNop())

	var mu sync.Mutex
	var amount, tax string
	n.Narrate(context.Background(), decimal.NewFromInt(129800), decimal.NewFromInt(19800), func(a, x string) {
		mu.Lock()
		defer mu.Unlock()
		amount, tax = a, x
	})
	n.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "One Lakh Twenty-Nine Thousand Eight Hundred Rupees Only", amount)
	assert.Equal(t, "Nineteen Thousand Eight Hundred Rupees Only", tax)
}

func TestNarrateDiscardsStaleResult(t *testing.T) {
	conv := newSlowConverter()
	n := New(conv, zap.NewNop())

	var mu sync.Mutex
	var applied []string
	apply := func(a, _ string) {
		mu.Lock()
		defer mu.Unlock()
		applied = append(applied, a)
	}

	// First request, then a second one before the first resolves.
	n.Narrate(context.Background(), decimal.NewFromInt(100), decimal.Zero, apply)
	n.Narrate(context.Background(), decimal.NewFromInt(200), decimal.Zero, apply)

	// Resolve the newer conversion first, then the stale one.
	close(conv.gate("200"))
	close(conv.gate("0"))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(applied) == 1
	}, time.Second, 5*time.Millisecond)

	close(conv.gate("100"))
	n.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, applied, 1, "stale conversion must not re-apply")
	assert.Equal(t, "words of 200", applied[0])
}

func TestNarrateFailureAppliesEmpty(t *testing.T) {
	n := New(failingConverter{}, zap.NewNop())

	var mu sync.Mutex
	amount, tax := "stale", "stale"
	n.Narrate(context.Background(), decimal.NewFromInt(5), decimal.NewFromInt(1), func(a, x string) {
		mu.Lock()
		defer mu.Unlock()
		amount, tax = a, x
	})
	n.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "", amount)
	assert.Equal(t, "", tax)
}

func TestNewDefaultsToLocalConverter(t *testing.T) {
	n := New(nil, zap.NewNop())

	done := make(chan string, 1)
	n.Narrate(context.Background(), decimal.NewFromInt(10), decimal.Zero, func(a, _ string) {
		done <- a
	})
	n.Wait()
	assert.Equal(t, "Ten Rupees Only", <-done)
}
