// Package steam provides the match-history fetch collaborator over the
// Dota 2 WebAPI with one handle per access key
package steam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"herodex/internal/core/dota2"
	perr "herodex/internal/platform/errors"
	"herodex/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.steampowered.com"
	historyPath    = "/IDOTA2Match_570/GetMatchHistoryBySequenceNum/v1/"
	defaultTimeout = 10 * time.Second
	defaultUA      = "herodex-collect"

	// cap on response bodies, a history page is well under this
	maxBodyBytes = 8 << 20
)

// Options configures the fetch handles
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Proxy is an optional outbound proxy URL shared by every handle
	Proxy string
}

// Client is one fetch handle bound to a single access key
// every failure it returns is classified exactly one of two ways:
// *DecodeError for payload shape mismatches, transient for everything else
type Client struct {
	http *http.Client
	opts Options
	key  string
	log  logger.Logger
	now  func() time.Time
}

// NewClients builds one handle per key, all sharing one transport
// the handle set is fixed for the lifetime of a run
func NewClients(keys []string, o Options) ([]*Client, error) {
	if len(keys) == 0 {
		return nil, perr.InvalidArgf("steam: at least one access key required")
	}
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}

	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if o.Proxy != "" {
		u, err := url.Parse(o.Proxy)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "steam: bad proxy url")
		}
		transport.Proxy = http.ProxyURL(u)
	}
	hc := &http.Client{Timeout: o.Timeout, Transport: transport}

	out := make([]*Client, 0, len(keys))
	for _, key := range keys {
		out = append(out, &Client{
			http: hc,
			opts: o,
			key:  key,
			log:  *logger.Named("steam"),
			now:  time.Now,
		})
	}
	return out, nil
}

// Matches fetches up to count matches starting at sequence number seq
func (c *Client) Matches(ctx context.Context, seq uint64, count int) ([]dota2.Match, error) {
	u := fmt.Sprintf("%s%s?key=%s&start_at_match_seq_num=%d&matches_requested=%d",
		c.opts.BaseURL, historyPath, url.QueryEscape(c.key), seq, count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "steam new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "steam do failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Uint64("seq", seq).
		Dur("latency", lat).
		Msg("steam http response")

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "steam rate limited")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, perr.Newf(perr.ErrorCodeUnavailable, "steam unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "steam read body failed")
	}

	page, err := decodeHistory(body)
	if err != nil {
		return nil, err
	}
	return page, nil
}
