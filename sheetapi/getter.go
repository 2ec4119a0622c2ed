package sheetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finview"
)

// Tabs lists the statement tabs known to the service.
func (c *Client) Tabs(ctx context.Context) ([]string, error) {
	// sample of response:
	// 	{
	//     "tabs": [
	//         "DRE",
	//         "Indicadores",
	//         "Fluxo de Caixa"
	//     ]
	// }
	data, err := c.get(ctx, "list tabs", "/api/sheets/tabs", nil)
	if err != nil {
		return nil, err
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("could not decode tabs json: %w", err)
	}
	jval, err := jsonpath.Get("$.tabs", jobj)
	if err != nil {
		return nil, fmt.Errorf("could not find tabs in response: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("tabs is not a list: %v", jval)
	}
	var tabs []string
	for _, item := range jlist {
		if s, ok := item.(string); ok {
			tabs = append(tabs, s)
		}
	}
	return tabs, nil
}

// Records fetches one tab's records. A tab the service has no data for
// answers with a message object instead of rows; that is an empty result,
// not an error.
func (c *Client) Records(ctx context.Context, tab string) ([]finview.SheetRecord, error) {
	// sample of response (faked numbers):
	// 	[
	//     {
	//         "ano": 2023,
	//         "Receita Bruta": 2796011.0,
	//         "Impostos": -354041.0,
	//         "percentuais": {"Impostos": -12.66}
	//     }
	// ]
	// or, for a dataless tab:
	// 	{"message": "Nenhum dado encontrado na aba ou intervalo especificado."}
	query := url.Values{"sheet_name": {tab}}
	if c.Force {
		query.Set("force_refresh", "true")
	}
	data, err := c.get(ctx, "fetch records", "/api/sheets/data", query)
	if err != nil {
		return nil, err
	}

	if msg := noDataMessage(data); msg != "" {
		log.Printf("no data for tab %q: %s", tab, msg)
		return nil, nil
	}
	records, err := finview.DecodeRecords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode records for tab %q: %w", tab, err)
	}
	return records, nil
}

// noDataMessage probes a loose payload for the service's no-data message,
// "" when the payload is something else.
func noDataMessage(data []byte) string {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return ""
	}
	jval, err := jsonpath.Get("$.message", jobj)
	if err != nil {
		return ""
	}
	s, _ := jval.(string)
	return s
}

// get performs an authenticated GET and returns the raw body. A 401 maps
// to ErrUnauthorized; a network failure or any other status maps to a
// TransportError. Neither is ever retried here.
func (c *Client) get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	addr := u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, &finview.TransportError{Op: op, URL: addr, Err: err}
	}
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: c.token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &finview.TransportError{Op: op, URL: addr, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%s: %w", op, finview.ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		return nil, &finview.TransportError{Op: op, URL: addr, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	// reading in a buffer to be able to log the json when decoding fails
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, &finview.TransportError{Op: op, URL: addr, Err: fmt.Errorf("cannot read body: %w", err)}
	}
	return buf.Bytes(), nil
}
