package garden

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gardentv-cli/gardentv/log"
	"github.com/gardentv-cli/gardentv/source"
)

// ResolveStream scrapes the channel page behind an indirect reference and
// extracts a playable address from it. Transport failures are retried with
// growing backoff; a page that yields no match is not retried.
func (g *Garden) ResolveStream(ctx context.Context, ref source.IndirectRef) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(g.ScrapeBase, "/"), ref.Country, ref.ChannelID)

	document, err := g.fetchDocument(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrUnresolved, err)
	}

	match, ok := Extract(document)
	if !ok {
		return "", ErrNotFound
	}

	log.Infof("resolved %s/%s via %s strategy", ref.Country, ref.ChannelID, match.Strategy)

	return match.URL, nil
}

// fetchDocument retrieves a channel page, retrying transport failures up to
// the configured attempt count with a backoff that triples per attempt.
func (g *Garden) fetchDocument(ctx context.Context, url string) (string, error) {
	attempts := g.Retries
	if attempts < 1 {
		attempts = 1
	}

	backoff := g.Backoff

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			log.Warnf("retrying %s after %v (attempt %d of %d)", url, backoff, attempt+1, attempts)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}

			backoff *= 3
		}

		document, err := g.fetchOnce(ctx, url)
		if err == nil {
			return document, nil
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		lastErr = err
	}

	return "", lastErr
}

func (g *Garden) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	resp, err := g.Scraper.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return string(body), nil
}
