package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/tidwall/gjson"
)

// HTTPCollector calls a generic REST endpoint and extracts a monthly
// series using a gjson path expression — the same path-probing idiom
// pkg/adapters.HTTPAdapter uses for sub-minute rows, applied here to a
// flat array of monthly values rather than paired value/timestamp arrays,
// since month ordering is already implied by the request's start_year
// and start_month rather than carried per-point.
type HTTPCollector struct {
	// URL is the endpoint to call (required).
	URL string

	// Method is the HTTP method. Defaults to GET if empty.
	Method string

	// Headers are custom HTTP headers; values may use {{.Months}}.
	Headers map[string]string

	// Body is an optional request body template supporting {{.Months}}.
	Body string

	// ValuePath is the gjson path extracting the array of monthly values,
	// e.g. "data.#.value".
	ValuePath string

	// HTTPClient is optional; if nil a default client with timeout is used.
	HTTPClient *http.Client
}

func (h *HTTPCollector) Name() string { return "http" }

// Collect implements Collector.
func (h *HTTPCollector) Collect(ctx context.Context, months int) ([]float64, error) {
	if h.URL == "" {
		return nil, errors.New("http collector: URL is required")
	}
	if h.ValuePath == "" {
		return nil, errors.New("http collector: ValuePath is required")
	}

	templateData := map[string]any{"Months": months}

	method := h.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if h.Body != "" {
		rendered, err := renderTemplate(h.Body, templateData)
		if err != nil {
			return nil, fmt.Errorf("render body template: %w", err)
		}
		bodyReader = bytes.NewBufferString(rendered)
	}

	cli := h.HTTPClient
	if cli == nil {
		cli = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, method, h.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range h.Headers {
		rendered, err := renderTemplate(value, templateData)
		if err != nil {
			return nil, fmt.Errorf("render header %s: %w", key, err)
		}
		req.Header.Set(key, rendered)
	}

	resp, err := cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("http status %d: %s", resp.StatusCode, string(body))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	values := gjson.GetBytes(respBody, h.ValuePath)
	if !values.Exists() {
		return nil, fmt.Errorf("value path %q not found in response", h.ValuePath)
	}

	valArray := values.Array()
	series := make([]float64, len(valArray))
	for i, v := range valArray {
		series[i] = v.Float()
	}

	return series, nil
}

func renderTemplate(tmplStr string, data map[string]any) (string, error) {
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}

	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
