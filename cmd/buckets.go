package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/metrics"
	"github.com/finfree-dev/finfree/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBucketYield    float64
	flagBucketTicker   string
	flagBucketQuantity float64

	flagLoanAmount  float64
	flagLoanRate    float64
	flagLoanPayment float64
	flagLoanTerm    int
	flagLoanStart   string
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Manage asset buckets backing the freedom projection",
	RunE:  runBucketsList,
}

var bucketsAddCmd = &cobra.Command{
	Use:   "add <kind> <name> [balance]",
	Short: "Add a bucket: flat <name> <balance>, stock/crypto with --ticker/--quantity, loan with --loan-* flags",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runBucketsAdd,
}

var bucketsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runBucketsRemove,
}

func init() {
	bucketsAddCmd.Flags().Float64Var(&flagBucketYield, "yield", 0, "Expected annual yield percent")
	bucketsAddCmd.Flags().StringVar(&flagBucketTicker, "ticker", "", "Ticker symbol or coin id for market-priced buckets")
	bucketsAddCmd.Flags().Float64Var(&flagBucketQuantity, "quantity", 0, "Units held for market-priced buckets")
	bucketsAddCmd.Flags().Float64Var(&flagLoanAmount, "loan-amount", 0, "Original loan principal")
	bucketsAddCmd.Flags().Float64Var(&flagLoanRate, "loan-rate", 0, "Annual interest rate percent")
	bucketsAddCmd.Flags().Float64Var(&flagLoanPayment, "loan-payment", 0, "Monthly payment received")
	bucketsAddCmd.Flags().IntVar(&flagLoanTerm, "loan-term", 0, "Loan term in months")
	bucketsAddCmd.Flags().StringVar(&flagLoanStart, "loan-start", "", "Loan start date as YYYY-MM-DD")

	bucketsCmd.AddCommand(bucketsAddCmd)
	bucketsCmd.AddCommand(bucketsRemoveCmd)
	rootCmd.AddCommand(bucketsCmd)
}

func runBucketsList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	buckets, err := st.ListBuckets()
	if err != nil {
		return err
	}
	if len(buckets) == 0 {
		fmt.Println("\n  No asset buckets yet.")
		fmt.Println("  Start with: finfree buckets add flat Savings 10000 --yield 4.5")
		return nil
	}

	now := time.Now()
	var rows [][]string
	var total float64
	for _, b := range buckets {
		value := metrics.BucketValue(b, now)
		total += value
		detail := ""
		switch b.Kind {
		case model.KindStock, model.KindCrypto:
			detail = fmt.Sprintf("%g x %s", b.Quantity, b.Ticker)
			if b.Price > 0 {
				detail += fmt.Sprintf(" @ %s", money(b.Price, cfg))
			}
		case model.KindLoan:
			detail = fmt.Sprintf("%d of %d payments left",
				metrics.RemainingLoanMonths(b.Loan, now), b.Loan.TermMonths)
		}
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.Name,
			string(b.Kind),
			money(value, cfg),
			cli.FormatPercent(b.YieldPct),
			detail,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", "", money(total, cfg), "", ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Kind", "Value", "Yield", "Detail"},
		Rows:    rows,
	}))

	if wy, ok := metrics.WeightedYield(buckets, now); ok {
		fmt.Printf("\n  Weighted yield: %s\n", cli.FormatPercent(wy*100))
	}
	return nil
}

func runBucketsAdd(_ *cobra.Command, args []string) error {
	kind := model.BucketKind(args[0])
	b := model.AssetBucket{
		Name:     args[1],
		Kind:     kind,
		YieldPct: flagBucketYield,
	}

	switch kind {
	case model.KindFlat:
		if len(args) < 3 {
			return fmt.Errorf("flat buckets need a balance: finfree buckets add flat Savings 10000")
		}
		balance, err := strconv.ParseFloat(args[2], 64)
		if err != nil || balance < 0 {
			return fmt.Errorf("invalid balance %q", args[2])
		}
		b.Balance = balance

	case model.KindStock, model.KindCrypto:
		if flagBucketTicker == "" || flagBucketQuantity <= 0 {
			return fmt.Errorf("%s buckets need --ticker and --quantity", kind)
		}
		b.Ticker = flagBucketTicker
		b.Quantity = flagBucketQuantity

	case model.KindLoan:
		if flagLoanAmount <= 0 || flagLoanPayment <= 0 || flagLoanTerm <= 0 || flagLoanStart == "" {
			return fmt.Errorf("loan buckets need --loan-amount, --loan-payment, --loan-term, and --loan-start")
		}
		start, err := time.Parse("2006-01-02", flagLoanStart)
		if err != nil {
			return fmt.Errorf("invalid --loan-start %q, want YYYY-MM-DD", flagLoanStart)
		}
		b.Loan = model.LoanTerms{
			OriginalAmount: flagLoanAmount,
			AnnualRatePct:  flagLoanRate,
			MonthlyPayment: flagLoanPayment,
			TermMonths:     flagLoanTerm,
			StartDate:      start,
		}

	default:
		return fmt.Errorf("unknown bucket kind %q (flat, stock, crypto, loan)", args[0])
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.SaveBucket(&b); err != nil {
		return err
	}
	fmt.Printf("  Added bucket %d: %s (%s)\n", b.ID, b.Name, b.Kind)
	if kind == model.KindStock || kind == model.KindCrypto {
		fmt.Println("  Run `finfree prices` to fetch its market price.")
	}
	return nil
}

func runBucketsRemove(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bucket id %q", args[0])
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	b, err := st.GetBucket(id)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("no bucket with id %d", id)
	}
	if err := st.DeleteBucket(id); err != nil {
		return err
	}
	fmt.Printf("  Removed bucket %d: %s\n", id, b.Name)
	return nil
}
