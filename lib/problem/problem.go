package problem

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"algorecall-scraper/lib/htmlutil"
	"algorecall-scraper/lib/quiz"

	_ "embed"

	"github.com/PuerkitoBio/goquery"
)

//go:embed sample.html
var SampleHTML string

var ErrMissingElement = errors.New("element not found")

const (
	titleSelector       = "h1.problem-title"
	difficultySelector  = "div.difficulty"
	descriptionSelector = "div.problem-description"
	topicSelector       = "span.topic"
	hintSelector        = `a[href^="#hint"]`
)

// Problem is the record extracted from an algorithm problem page.
type Problem struct {
	Title       string   `json:"title"`
	Difficulty  string   `json:"difficulty"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	HintsCount  int      `json:"hints_count"`
}

func requiredText(doc *goquery.Document, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingElement, selector)
	}
	return htmlutil.StrippedText(sel, ""), nil
}

// Extract pulls a Problem out of doc. A missing title, difficulty or
// description is an error, topics and hints may be absent.
func Extract(doc *goquery.Document) (Problem, error) {
	title, err := requiredText(doc, titleSelector)
	if err != nil {
		return Problem{}, err
	}
	difficulty, err := requiredText(doc, difficultySelector)
	if err != nil {
		return Problem{}, err
	}
	description, err := requiredText(doc, descriptionSelector)
	if err != nil {
		return Problem{}, err
	}

	topics := []string{}
	doc.Find(topicSelector).Each(func(_ int, s *goquery.Selection) {
		topics = append(topics, htmlutil.StrippedText(s, ""))
	})

	return Problem{
		Title:       title,
		Difficulty:  difficulty,
		Description: description,
		Topics:      topics,
		HintsCount:  doc.Find(hintSelector).Length(),
	}, nil
}

func Parse(r io.Reader) (Problem, error) {
	doc, err := htmlutil.ParseDocument(r)
	if err != nil {
		return Problem{}, err
	}
	return Extract(doc)
}

func ParseSample() (Problem, error) {
	return Parse(strings.NewReader(SampleHTML))
}

// Source turns the problem into converter input. A scraped page carries
// no identifier so the converter falls back to its default.
func (p Problem) Source() quiz.Source {
	return quiz.Source{
		Title:       p.Title,
		Difficulty:  p.Difficulty,
		Topics:      p.Topics,
		Description: p.Description,
	}
}
