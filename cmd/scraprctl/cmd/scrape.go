package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/scrapriq/dashboard/internal/dashboard"
	"github.com/scrapriq/dashboard/internal/domain"
	"github.com/spf13/cobra"
)

var scrapeFormat string

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape leads from a company team or about page",
	Long: `Submit a page URL to the backend and print the leads it returns.

Examples:
  scraprctl scrape https://example.com/team
  scraprctl scrape https://example.com/team --format json

Output formats:
  table - Human-readable table (default)
  json  - The lead records as returned by the backend`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeFormat, "format", "f", "table", "output format (table, json)")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	if scrapeFormat != "table" && scrapeFormat != "json" {
		return fmt.Errorf("invalid format %q: use table or json", scrapeFormat)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	v := dashboard.New(client)
	v.TargetURL = args[0]
	if err := v.CheckAPIHealth(cmd.Context()); err != nil {
		return errors.New(v.Error)
	}
	if err := v.HandleScrape(cmd.Context()); err != nil {
		return errors.New(v.ScrapeError)
	}

	out := cmd.OutOrStdout()
	if scrapeFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v.Leads)
	}

	if len(v.Leads) == 0 {
		fmt.Fprintln(out, v.ScrapeNotice)
		return nil
	}
	return writeLeadsTable(out, v.Leads)
}

func writeLeadsTable(out io.Writer, leads []domain.Lead) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	headers := make([]string, len(domain.LeadColumns))
	for i, col := range domain.LeadColumns {
		headers[i] = strings.ToUpper(domain.ColumnLabel(col))
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, lead := range leads {
		cells := make([]string, len(domain.LeadColumns))
		for i, col := range domain.LeadColumns {
			cells[i] = lead.Field(col)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}
