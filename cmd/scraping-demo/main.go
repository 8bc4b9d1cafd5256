package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"algorecall-scraper/lib/demoutil"
	"algorecall-scraper/lib/problem"
	"algorecall-scraper/lib/serviceutil"
	"algorecall-scraper/lib/telemetry"

	"github.com/spf13/cobra"
)

var inputFile *string
var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "scraping-demo [--file <page.html>]",
	Short: "Parses an algorithm problem page offline and prints the extracted fields.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)

		var source io.Reader
		if *inputFile != "" {
			f, err := os.Open(*inputFile)
			if err != nil {
				serviceutil.Fatal("failed to open input file", err)
			}
			defer f.Close()
			source = f
		}

		_, err := run(demoutil.NewPrinter(cmd.OutOrStdout()), source)
		if err != nil {
			serviceutil.Fatal("failed to parse problem", err)
		}
	},
}

func init() {
	inputFile = rootCmd.Flags().String("file", "", "Parse this HTML file instead of the built-in sample page.")
	verbose = rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging.")
}

// run parses source, or the embedded sample page when source is nil, and
// prints the result.
func run(p demoutil.Printer, source io.Reader) (problem.Problem, error) {
	p.Heading("Web Scraping Demo (Offline)")

	var parsed problem.Problem
	var err error
	if source == nil {
		parsed, err = problem.ParseSample()
	} else {
		parsed, err = problem.Parse(source)
	}
	if err != nil {
		return problem.Problem{}, err
	}

	p.Println("✓ Successfully parsed HTML content!")
	p.Println("\nExtracted Problem Data:")
	err = p.JSON(parsed)
	if err != nil {
		return problem.Problem{}, err
	}

	p.Section("Web Scraping Capabilities Demonstrated:")
	p.Bullets("✓",
		"HTML parsing from string/file",
		"CSS selector queries",
		"Class and attribute filtering",
		"Text extraction and cleaning",
		"Structured data extraction",
		"Link and element counting",
	)

	p.Section("ANSWER: YES - Web scraping is fully supported!")
	p.Println("\nYou can use this to:")
	p.Bullets("  •",
		"Parse algorithm problems from HTML",
		"Extract data from web pages",
		"Convert HTML to structured JSON",
		"Scrape content for the quiz app",
	)

	return parsed, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
