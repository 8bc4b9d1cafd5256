package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"

	"algorecall-scraper/lib/demoutil"
	"algorecall-scraper/lib/restyutil"
	"algorecall-scraper/lib/scraper"
	"algorecall-scraper/lib/serviceutil"
	"algorecall-scraper/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	configPath *string
	targetUrl  *string
	selector   *string
	showLinks  *bool
	showText   *bool
	dumpDir    *string
	verbose    *bool
)

var rootCmd = &cobra.Command{
	Use:   "web-scraper [--url <url>] [--links] [--text [--selector <css>]]",
	Short: "Scrapes a page and prints its title, status, link and image counts.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)

		// anything that can exit the process happens before telemetry is up,
		// os.Exit would skip the deferred shutdown.
		cfg, opts, err := prepare(*configPath, *targetUrl, *dumpDir)
		if err != nil {
			serviceutil.Fatal("failed to prepare scraper", err)
		}

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "web-scraper")
		if err != nil && !os.IsNotExist(err) {
			slog.Warn("telemetry disabled", "err", err)
		}
		defer tel.Shutdown(context.Background())

		client := scraper.NewClient(opts)

		run(cmd.Context(), demoutil.NewPrinter(cmd.OutOrStdout()), client, runOptions{
			url:      cfg.Url,
			links:    *showLinks,
			text:     *showText,
			selector: *selector,
		})
	},
}

func init() {
	configPath = rootCmd.Flags().String("config", "scraper.json5", "The config file to read client settings from.")
	targetUrl = rootCmd.Flags().String("url", "", "The page to scrape (defaults to "+DefaultUrl+").")
	selector = rootCmd.Flags().String("selector", "", "CSS selector for --text, empty means the whole page.")
	showLinks = rootCmd.Flags().Bool("links", false, "Also print every link on the page.")
	showText = rootCmd.Flags().Bool("text", false, "Also print the text of the page (or of --selector).")
	dumpDir = rootCmd.Flags().String("dump-dir", "", "Write each HTTP exchange into a new timestamped directory under this path (needs --verbose), existing contents are left alone.")
	verbose = rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging.")
}

// prepare resolves the config file and flags into client options.
func prepare(configPath, targetUrl, dumpDir string) (Config, scraper.ClientOptions, error) {
	cfg, err := readConfig(configPath)
	if err != nil {
		return Config{}, scraper.ClientOptions{}, fmt.Errorf("read config: %w", err)
	}
	if targetUrl != "" {
		cfg.Url = targetUrl
	}

	opts := cfg.clientOptions()
	if dumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(dumpDir)
		if err != nil {
			return Config{}, scraper.ClientOptions{}, fmt.Errorf("create dump directory: %w", err)
		}
		opts.InstrumentOutput = output
	}
	return cfg, opts, nil
}

type runOptions struct {
	url      string
	links    bool
	text     bool
	selector string
}

func hostname(rawUrl string) string {
	parsed, err := url.Parse(rawUrl)
	if err != nil || parsed.Hostname() == "" {
		return rawUrl
	}
	return parsed.Hostname()
}

func printIntro(p demoutil.Printer) {
	p.Heading("Web Scraping Demo")
	p.Println("Yes, web scraping is supported!")
	p.Println("\nThis command demonstrates basic web scraping in Go.")
	p.Println("Key features demonstrated:")
	p.Bullets("  ✓",
		"HTTP requests with proper headers",
		"HTML parsing with goquery",
		"Data extraction (title, meta, links, images)",
		"Error handling and timeout management",
		"CSS selector support",
	)
	p.Println("\nCommon use cases for web scraping:")
	p.Bullets("  •",
		"Scraping algorithm problems from coding platforms",
		"Extracting structured data from websites",
		"Monitoring website changes",
		"Collecting data for analysis",
	)
	p.Println("\nLibraries used:")
	p.Bullets("  •",
		"resty: HTTP client for making requests",
		"goquery: HTML parsing with CSS selectors",
	)

	p.Println("\n=== Example Usage ===")
	p.Println("client := scraper.NewClient(scraper.ClientOptions{})")
	p.Println(`summary := client.ScrapePage(ctx, "https://example.com")`)
	p.Println(`links := client.ScrapeLinks(ctx, "https://example.com")`)
	p.Println(`text := client.ExtractText(ctx, "https://example.com", "h1")`)
}

func printSummary(p demoutil.Printer, summary *scraper.PageSummary) {
	p.Println("\n✓ Successfully scraped!")

	meta := "-"
	if summary.MetaDescription != nil {
		meta = *summary.MetaDescription
	}

	t := p.NewTable()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Title", summary.Title},
		{"Status Code", strconv.Itoa(summary.StatusCode)},
		{"Links Count", strconv.Itoa(summary.LinksCount)},
		{"Images Count", strconv.Itoa(summary.ImagesCount)},
		{"Meta Description", meta},
	})
	t.Render()
}

func run(ctx context.Context, p demoutil.Printer, client *scraper.Client, opts runOptions) *scraper.PageSummary {
	printIntro(p)

	p.Println("\n=== Live Example ===")
	p.Printf("\nScraping %s...\n", hostname(opts.url))

	summary := client.ScrapePage(ctx, opts.url)
	if summary != nil {
		printSummary(p, summary)
	} else {
		p.Println("✗ Scraping failed (this may be due to network restrictions)")
	}

	if opts.links {
		p.Println("\nLinks:")
		p.JSON(client.ScrapeLinks(ctx, opts.url))
	}

	if opts.text {
		target := "page"
		if opts.selector != "" {
			target = opts.selector
		}
		p.Printf("\nText (%s):\n", target)
		text := client.ExtractText(ctx, opts.url, opts.selector)
		if text != nil {
			p.Println(*text)
		} else {
			p.Println("✗ No text extracted")
		}
	}

	p.Section("ANSWER: Yes, web scraping is fully supported!")
	return summary
}

func main() {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
