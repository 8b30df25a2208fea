package server

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// indexPage renders the landing page: service name and the registered
// routes, so the API is discoverable from a browser.
func indexPage(rr *RouteRegistry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Spice Optimizer</title></head>
<body>
<h1>Idleon Spice Optimizer</h1>
<p>Compare two foraging teams and find the breakeven point.</p>
<table border="1" cellpadding="4">
<tr><th>Method</th><th>Pattern</th><th>Summary</th></tr>
`); err != nil {
			return err
		}
		for _, doc := range rr.List() {
			row := fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				html.EscapeString(doc.Method),
				html.EscapeString(doc.Pattern),
				html.EscapeString(doc.Summary))
			if _, err := io.WriteString(w, row); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n</body>\n</html>\n")
		return err
	})
}

func RegisterUI(mux *http.ServeMux, rr *RouteRegistry) {
	mux.Handle("GET /{$}", templ.Handler(indexPage(rr)))
}
