package main

import (
	"fmt"
	"os"

	"algorecall-scraper/lib/demoutil"
	"algorecall-scraper/lib/quiz"
	"algorecall-scraper/lib/scraper"
	"algorecall-scraper/lib/serviceutil"
	"algorecall-scraper/lib/telemetry"

	"github.com/spf13/cobra"
)

// stands in for the output of web-scraper
var simulatedProblem = quiz.Source{
	ID:          "lc_001",
	Title:       "Two Sum",
	Difficulty:  "Easy",
	Topics:      []string{"array", "hash_map"},
	Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
}

var problemUrl *string
var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "scraping-integration [--url <problem page>]",
	Short: "Converts a scraped problem into the quiz format used by the quiz app.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)

		src := simulatedProblem
		if *problemUrl != "" {
			client := scraper.NewClient(scraper.ClientOptions{})
			scraped, err := client.ScrapeProblem(cmd.Context(), *problemUrl)
			if err != nil {
				serviceutil.Fatal("failed to scrape problem", err)
			}
			src = scraped.Source()
		}

		_, err := run(demoutil.NewPrinter(cmd.OutOrStdout()), src)
		if err != nil {
			serviceutil.Fatal("failed to print quiz", err)
		}
	},
}

func init() {
	problemUrl = rootCmd.Flags().String("url", "", "Scrape this problem page instead of using the simulated record.")
	verbose = rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging.")
}

func run(p demoutil.Printer, src quiz.Source) (quiz.Record, error) {
	p.Heading("Web Scraping → Quiz Integration Demo")

	p.Println("1. Scraped Data (from web scraping):")
	err := p.JSON(src)
	if err != nil {
		return quiz.Record{}, err
	}

	record := quiz.Convert(src)

	p.Println("\n2. Converted to Quiz Format:")
	err = p.JSON(record)
	if err != nil {
		return quiz.Record{}, err
	}

	p.Section("Integration Workflow:")
	p.Println("Step 1: Use web-scraper to scrape problems")
	p.Println("Step 2: Parse and extract problem details")
	p.Println("Step 3: Convert to quiz format (this command)")
	p.Println("Step 4: Add to problems.json")
	p.Println("Step 5: Quiz app displays the problem")

	p.Section("Web Scraping Benefits for Algo-Recall:")
	p.Bullets("✓",
		"Automatically collect problems from platforms",
		"Keep problem database up to date",
		"Extract topics and difficulty levels",
		"Scale the quiz content quickly",
		"Maintain consistency in data format",
	)

	return record, nil
}

func main() {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
