// package scraper fetches single pages over http and reads a few fixed
// things out of them.
//
// every operation has the same shape:
// 1. GET the url with the shared client (user-agent and timeout are client defaults).
// 2. treat a status >= 400 like a transport error.
// 3. decode the body to utf-8 and parse it with goquery.
// 4. run the selectors and build the output.
//
// ScrapePage, ExtractText and ScrapeLinks never return errors, they log a
// diagnostic and hand back nil (or an empty slice for links).
// ScrapeProblem returns its error since a page that doesn't look like a
// problem page is a caller mistake.
package scraper
