package scraper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pokys/zoh-hokej-ics/internal/match"
)

const (
	// Wikipedia serves a reduced page to bare clients; browser-like headers
	// keep the schedule tables in the response.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	DefaultTimeout = 30 * time.Second

	maxRetries = 4
)

// retryInterval is a package var so tests can shrink the backoff
var retryInterval = 500 * time.Millisecond

// transient statuses worth retrying within a single run
var retryStatus = map[int]bool{
	http.StatusForbidden:           true,
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Scraper fetches and parses a tournament schedule page
type Scraper struct {
	client *http.Client
}

// New creates a Scraper with the default timeout
func New() *Scraper {
	return NewWithTimeout(DefaultTimeout)
}

// NewWithTimeout creates a Scraper with a custom per-request timeout
func NewWithTimeout(timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchGames retrieves the schedule page and extracts partial match records.
// A transport failure surfaces as *FetchError, an unrecognizable page as
// *ParseError; both are fatal for the run.
func (s *Scraper) FetchGames(url string) ([]match.Game, error) {
	body, err := s.fetch(url)
	if err != nil {
		return nil, err
	}
	return parseSchedule(bytes.NewReader(body), url)
}

// fetch performs the outbound read, retrying transient failures with
// exponential backoff. Non-retryable statuses abort immediately.
func (s *Scraper) fetch(url string) ([]byte, error) {
	op := func() ([]byte, error) {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "cs-CZ,cs;q=0.9,en-US;q=0.8,en;q=0.7")

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if retryStatus[resp.StatusCode] {
				return nil, statusErr
			}
			return nil, backoff.Permanent(statusErr)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		return data, nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = retryInterval

	body, err := backoff.RetryWithData(op, backoff.WithMaxRetries(eb, maxRetries))
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return body, nil
}
