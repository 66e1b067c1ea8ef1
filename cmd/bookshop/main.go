// Command bookshop is the demonstration entry point for the digital book
// store: a scripted shopping session plus catalog export/import round trips.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Frug4l/digital-books-lab/internal/config"
	"github.com/Frug4l/digital-books-lab/internal/domain"
	"github.com/Frug4l/digital-books-lab/internal/exchange"
	"github.com/Frug4l/digital-books-lab/internal/logger"
	"github.com/Frug4l/digital-books-lab/internal/shop"
)

const (
	jsonFileName = "complex_books.json"
	xmlFileName  = "complex_books.xml"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookshop",
		Short:         "Digital book store demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Run a scripted shopping session",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(cmd, cfg)
			},
		},
		&cobra.Command{
			Use:   "export",
			Short: "Write the sample catalog to JSON and XML files",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runExport(cmd, cfg)
			},
		},
		&cobra.Command{
			Use:   "import",
			Short: "Parse the exported catalog files back and summarize them",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runImport(cmd, cfg)
			},
		},
	)

	return root
}

// buildSampleShop registers the demo catalog and customer.
func buildSampleShop(ctx context.Context, cfg *config.Config) (shop.Service, error) {
	svc := shop.NewService(cfg.StoreName, exchange.NewFiles())

	if _, err := svc.RegisterAuthor(ctx, 1, "Leo Tolstoy", "Russian novelist"); err != nil {
		return nil, err
	}
	if _, err := svc.RegisterAuthor(ctx, 2, "Alexander Pushkin", "Russian poet"); err != nil {
		return nil, err
	}

	books := []shop.RegisterBookInput{
		{ID: 101, Title: "War and Peace", AuthorID: 1, Price: decimal.RequireFromString("299.99"), Format: "PDF", SizeMB: 15},
		{ID: 102, Title: "Eugene Onegin", AuthorID: 2, Price: decimal.RequireFromString("199.50"), Format: "EPUB", SizeMB: 3},
	}
	for _, b := range books {
		if _, err := svc.RegisterBook(ctx, b); err != nil {
			return nil, err
		}
	}

	if _, err := svc.RegisterCustomer(ctx, 1, "Ivan Ivanov", "ivanov@example.com", decimal.NewFromInt(400)); err != nil {
		return nil, err
	}

	return svc, nil
}

func runDemo(cmd *cobra.Command, cfg *config.Config) error {
	ctx := logger.NewSession(cmd.Context())

	svc, err := buildSampleShop(ctx, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalog of %s:\n", cfg.StoreName)
	for _, b := range svc.Catalog().Books() {
		fmt.Fprintf(out, "  %s\n", b.Info())
	}

	if err := svc.AddToCart(ctx, 1, 101); err != nil {
		return err
	}
	if err := svc.AddToCart(ctx, 1, 102); err != nil {
		return err
	}

	total, err := svc.CartTotal(ctx, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nCart total: %s\n", total.StringFixed(2))

	// First attempt fails: the balance of 400.00 does not cover 499.49.
	if _, err := svc.Checkout(ctx, 1); err != nil {
		var ife *domain.InsufficientFundsError
		if !errors.As(err, &ife) {
			return err
		}
		fmt.Fprintf(out, "Checkout failed: %v\n", ife)
	}

	// Drop the expensive book and retry.
	if _, err := svc.RemoveFromCart(ctx, 1, 101); err != nil {
		return err
	}

	order, err := svc.Checkout(ctx, 1)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n", order.Receipt())
	return nil
}

func runExport(cmd *cobra.Command, cfg *config.Config) error {
	ctx := logger.NewSession(cmd.Context())

	svc, err := buildSampleShop(ctx, cfg)
	if err != nil {
		return err
	}

	jsonPath := filepath.Join(cfg.DataDir, jsonFileName)
	xmlPath := filepath.Join(cfg.DataDir, xmlFileName)
	if err := svc.ExportCatalog(ctx, jsonPath, xmlPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported catalog to %s and %s\n", jsonPath, xmlPath)
	return nil
}

func runImport(cmd *cobra.Command, cfg *config.Config) error {
	ctx := logger.NewSession(cmd.Context())

	svc, err := buildSampleShop(ctx, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	books, err := svc.ImportBooks(ctx, filepath.Join(cfg.DataDir, jsonFileName))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "JSON: %d books\n", len(books))
	for _, b := range books {
		fmt.Fprintf(out, "  %s\n", b.Info())
	}

	lib, err := exchange.NewFiles().ReadXML(filepath.Join(cfg.DataDir, xmlFileName))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "XML: version %s, %d authors, %d books\n",
		lib.Version, len(lib.Authors), len(lib.Books))

	return nil
}
