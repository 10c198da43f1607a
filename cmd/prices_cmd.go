package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finfree-dev/finfree/internal/config"
	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/prices"

	"github.com/spf13/cobra"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Refresh market prices for stock and crypto buckets",
	RunE:  runPrices,
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	buckets, err := st.ListBuckets()
	if err != nil {
		return err
	}

	client := prices.NewClient(
		cfg.Quotes.StockBaseURL,
		cfg.Quotes.CryptoBaseURL,
		config.GetQuotesAPIKey(cfg),
	)

	ctx, cancel := pricesContext()
	defer cancel()

	var updated, failed int
	for i := range buckets {
		b := &buckets[i]
		if b.Kind != model.KindStock && b.Kind != model.KindCrypto {
			continue
		}

		q, err := client.Lookup(ctx, b.Kind, b.Ticker)
		if err != nil {
			failed++
			if errors.Is(err, prices.ErrUnauthorized) {
				fmt.Printf("  %s: %v\n", b.Ticker, err)
				fmt.Println("  Set FINFREE_QUOTES_API_KEY or run `finfree setup`.")
				break
			}
			fmt.Printf("  %s: %v\n", b.Ticker, err)
			continue
		}

		b.Price = q.PriceUSD
		b.PriceUpdatedAt = q.FetchedAt
		if err := st.SaveBucket(b); err != nil {
			return err
		}
		updated++
		fmt.Printf("  %s: $%.2f\n", q.Ticker, q.PriceUSD)
	}

	if updated == 0 && failed == 0 {
		fmt.Println("  No market-priced buckets to refresh.")
		return nil
	}
	fmt.Printf("\n  Updated %d bucket(s)", updated)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
	return nil
}

// pricesContext bounds the whole refresh run.
func pricesContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Minute)
}
