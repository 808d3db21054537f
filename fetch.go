package contribgif

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// DefaultEndpoint is GitHub's GraphQL API.
const DefaultEndpoint = "https://api.github.com/graphql"

// DefaultTimeout bounds the single request made per run.
const DefaultTimeout = 30 * time.Second

const calendarQuery = `
query ($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}
`

const weeksPath = "data.user.contributionsCollection.contributionCalendar.weeks"

type FetcherOpt func(f *Fetcher)

// WithEndpoint overrides the GraphQL URL.
func WithEndpoint(url string) FetcherOpt {
	return func(f *Fetcher) {
		f.endpoint = url
	}
}

// WithHTTPClient replaces the default client (and its timeout).
func WithHTTPClient(c *http.Client) FetcherOpt {
	return func(f *Fetcher) {
		f.client = c
	}
}

// Fetcher loads a user's contribution calendar.
type Fetcher struct {
	token    string
	endpoint string
	client   *http.Client
}

func NewFetcher(token string, opts ...FetcherOpt) *Fetcher {
	f := Fetcher{
		token:    token,
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return &f
}

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

/*
Fetch issues one query for login and returns its calendar. A non-2xx response
is a *StatusError, a body without the weeks array is a *LookupError. Nothing is
retried.
*/
func (f *Fetcher) Fetch(ctx context.Context, login string) (Calendar, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     calendarQuery,
		Variables: map[string]string{"login": login},
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")

	log.Debug().Str("endpoint", f.endpoint).Str("login", login).Msg("querying contribution calendar")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: snippet(data)}
	}
	return ParseCalendar(data)
}

// ParseCalendar extracts the weeks array from a GraphQL response body.
func ParseCalendar(data []byte) (Calendar, error) {
	if !gjson.ValidBytes(data) {
		return nil, &LookupError{Path: weeksPath}
	}
	doc := gjson.ParseBytes(data)
	if errs := doc.Get("errors"); errs.IsArray() && len(errs.Array()) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrGraphQL, errs.Get("0.message").String())
	}
	weeks := doc.Get(weeksPath)
	if !weeks.IsArray() {
		return nil, &LookupError{Path: weeksPath}
	}

	var cal Calendar
	weeks.ForEach(func(_, week gjson.Result) bool {
		var w Week
		// A week without contributionDays renders as empty.
		week.Get("contributionDays").ForEach(func(_, day gjson.Result) bool {
			w = append(w, Day{
				Count: int(day.Get("contributionCount").Int()),
				Date:  day.Get("date").String(),
			})
			return true
		})
		cal = append(cal, w)
		return true
	})
	return cal, nil
}

func snippet(data []byte) string {
	const limit = 200
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}
