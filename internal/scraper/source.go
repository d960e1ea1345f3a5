package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"
)

const (
	DefaultBaseURL = "https://2018.ploneconf.org/schedule/talks-november"
	UserAgent      = "ploneconf-schedule/1.0 (github.com/pfrederiksen/ploneconf-schedule)"
	Timeout        = 30 * time.Second
)

// DefaultDays are the November 2018 conference days with a talks page
var DefaultDays = []int{7, 8, 9}

// ErrUnexpectedStatus is returned when a schedule page answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Source returns the raw HTML of one day's schedule page
type Source interface {
	Fetch(ctx context.Context, day int) (io.ReadCloser, error)
}

// HTTPSource fetches schedule pages from the conference website
type HTTPSource struct {
	client  *http.Client
	baseURL string
}

// NewHTTPSource creates a source for pages at <baseURL>-<day>
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = Timeout
	}
	return &HTTPSource{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// PageURL returns the address of the schedule page for day
func (s *HTTPSource) PageURL(day int) string {
	return fmt.Sprintf("%s-%d", s.baseURL, day)
}

// Fetch GETs the schedule page for day. The caller closes the body.
func (s *HTTPSource) Fetch(ctx context.Context, day int) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.PageURL(day), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return resp.Body, nil
}

// DirSource reads saved schedule pages from a directory. Files are named like
// the last URL segment, e.g. talks-november-7 or talks-november-7.html.
type DirSource struct {
	dir  string
	name string
}

// NewDirSource creates a source reading copies of the pages under baseURL from dir
func NewDirSource(dir, baseURL string) *DirSource {
	return &DirSource{
		dir:  dir,
		name: path.Base(baseURL),
	}
}

// Fetch opens the saved page for day
func (s *DirSource) Fetch(ctx context.Context, day int) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := filepath.Join(s.dir, fmt.Sprintf("%s-%d", s.name, day))
	for _, candidate := range []string{base, base + ".html"} {
		f, err := os.Open(candidate)
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("opening page: %w", err)
		}
	}

	return nil, fmt.Errorf("opening page: no saved copy of %s-%d in %s: %w", s.name, day, s.dir, os.ErrNotExist)
}
