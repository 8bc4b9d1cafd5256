package restyutil

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

func formatHeaders(headers http.Header) string {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		for _, v := range headers[k] {
			out = append(out, fmt.Sprintf("%s: %s", k, v))
		}
	}
	return strings.Join(out, "\n")
}

// 1: request method
// 2: request url
// 3: request headers in ("Key: Value" format)
// 4: response status
// 5: response url
// 6: response headers in ("Key: Value" format)
// 7: response body
const messageInfoTemplate = `---- REQUEST ----

%s %s

%s

---- RESPONSE ----

%s %s

%s

%s`

func formatHttpMessage(res *resty.Response) string {
	requestHeaders := res.Request.Header
	if res.Request.RawRequest != nil {
		requestHeaders = res.Request.RawRequest.Header
	}

	responseUrl := res.Request.URL
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		responseUrl = res.RawResponse.Request.URL.String()
	}

	return fmt.Sprintf(
		messageInfoTemplate,

		res.Request.Method, res.Request.URL,
		formatHeaders(requestHeaders),

		strconv.Itoa(res.StatusCode()), responseUrl,
		formatHeaders(res.Header()),
		res.String(),
	)
}
