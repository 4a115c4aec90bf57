package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The official dollar quote lives inside <div id="dolar"> … <strong>36,58</strong>.
// The markup uses a comma decimal separator.
var dolarRe = regexp.MustCompile(`(?s)<div[^>]*id="dolar"[^>]*>.*?<strong>\s*([\d.,]+)\s*</strong>`)

// BCVClient scrapes the central-bank homepage for the current USD rate.
// All fetches go through the circuit breaker so a downed site degrades to
// "rate unavailable" instead of a stalled poll loop.
type BCVClient struct {
	url    string
	client *http.Client
	cb     *CircuitBreaker
}

func NewBCVClient(url string, cb *CircuitBreaker) *BCVClient {
	return &BCVClient{
		url: url,
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
		cb: cb,
	}
}

// FetchTasa downloads the page and extracts the quote. Network and parse
// failures both surface as errors; callers treat them as "no rate available".
func (c *BCVClient) FetchTasa(ctx context.Context) (decimal.Decimal, error) {
	var tasa decimal.Decimal

	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("consultando BCV: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("BCV respondio %d", resp.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		if err != nil {
			return err
		}

		m := dolarRe.FindSubmatch(body)
		if m == nil {
			return fmt.Errorf("no se encontro la cotizacion del dolar en la pagina")
		}

		// "36.584,12" → "36584.12"
		crudo := strings.ReplaceAll(string(m[1]), ".", "")
		crudo = strings.ReplaceAll(crudo, ",", ".")
		tasa, err = decimal.NewFromString(crudo)
		if err != nil {
			return fmt.Errorf("cotizacion ilegible %q: %w", m[1], err)
		}
		if tasa.Sign() <= 0 {
			return fmt.Errorf("cotizacion no positiva: %s", tasa)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return tasa, nil
}
