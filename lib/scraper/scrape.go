package scraper

import (
	"context"
	"strings"

	"algorecall-scraper/lib/htmlutil"
	"algorecall-scraper/lib/problem"

	"github.com/andybalholm/cascadia"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const NoTitle = "No title"

type PageSummary struct {
	Url             string            `json:"url"`
	Title           string            `json:"title"`
	StatusCode      int               `json:"status_code"`
	Headers         map[string]string `json:"headers"`
	MetaDescription *string           `json:"meta_description"`
	LinksCount      int               `json:"links_count"`
	ImagesCount     int               `json:"images_count"`
}

type Link struct {
	Text  string `json:"text"`
	Href  string `json:"href"`
	Title string `json:"title"`
}

// ScrapePage fetches url and summarizes it. Any failure is logged and
// reported as nil.
func (c *Client) ScrapePage(ctx context.Context, url string) *PageSummary {
	ctx, span := tracer.Start(ctx, "scraper.ScrapePage")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	res, doc, err := c.fetch(ctx, url)
	c.record(ctx, "scrape_page", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to scrape page")
		c.logger.ErrorContext(ctx, "error scraping page", "url", url, "err", err)
		return nil
	}

	headers := map[string]string{}
	for key, values := range res.Header() {
		headers[key] = strings.Join(values, ", ")
	}

	summary := &PageSummary{
		Url:         url,
		Title:       NoTitle,
		StatusCode:  res.StatusCode(),
		Headers:     headers,
		LinksCount:  doc.Find("a").Length(),
		ImagesCount: doc.Find("img").Length(),
	}
	if title := doc.Find("title").First(); title.Length() > 0 {
		summary.Title = title.Text()
	}
	if meta := doc.Find(`meta[name="description"]`).First(); meta.Length() > 0 {
		content := meta.AttrOr("content", "")
		summary.MetaDescription = &content
	}

	return summary
}

// ExtractText returns the trimmed text of the first element matching
// selector, or with an empty selector the text of the whole page minus
// scripts and styles, joined by single spaces. It returns nil when the
// selector is invalid, matches nothing or anything fails.
func (c *Client) ExtractText(ctx context.Context, url string, selector string) *string {
	ctx, span := tracer.Start(ctx, "scraper.ExtractText")
	defer span.End()
	span.SetAttributes(
		attribute.String("url", url),
		attribute.String("selector", selector),
	)

	var matcher cascadia.Selector
	if selector != "" {
		compiled, err := cascadia.Compile(selector)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid selector")
			c.logger.ErrorContext(ctx, "error extracting text", "url", url, "selector", selector, "err", err)
			return nil
		}
		matcher = compiled
	}

	_, doc, err := c.fetch(ctx, url)
	c.record(ctx, "extract_text", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract text")
		c.logger.ErrorContext(ctx, "error extracting text", "url", url, "err", err)
		return nil
	}

	if matcher != nil {
		element := doc.FindMatcher(matcher).First()
		if element.Length() == 0 {
			return nil
		}
		text := htmlutil.StrippedText(element, "")
		return &text
	}

	htmlutil.RemoveElements(doc, "script, style")
	text := htmlutil.StrippedText(doc.Selection, " ")
	return &text
}

// ScrapeLinks lists every anchor on the page that has an href. The result
// is never nil, failures give an empty list.
func (c *Client) ScrapeLinks(ctx context.Context, url string) []Link {
	ctx, span := tracer.Start(ctx, "scraper.ScrapeLinks")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	links := []Link{}

	_, doc, err := c.fetch(ctx, url)
	c.record(ctx, "scrape_links", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to scrape links")
		c.logger.ErrorContext(ctx, "error scraping links", "url", url, "err", err)
		return links
	}

	for _, a := range htmlutil.GetAnchors(doc.Find("a[href]")) {
		links = append(links, Link{
			Text:  a.Text,
			Href:  a.Href,
			Title: a.Title,
		})
	}
	span.SetAttributes(attribute.Int("links", len(links)))
	return links
}

// ScrapeProblem fetches a problem page and extracts it. Unlike the other
// operations the error is returned to the caller.
func (c *Client) ScrapeProblem(ctx context.Context, url string) (problem.Problem, error) {
	ctx, span := tracer.Start(ctx, "scraper.ScrapeProblem")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	_, doc, err := c.fetch(ctx, url)
	c.record(ctx, "scrape_problem", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch problem")
		return problem.Problem{}, err
	}

	p, err := problem.Extract(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract problem")
		return problem.Problem{}, err
	}
	return p, nil
}
