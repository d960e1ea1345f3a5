package scraper

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

const fixturesDir = "../../testdata/fixtures"

func TestHTTPSource_Fetch(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		statusCode  int
		wantError   bool
	}{
		{
			name:        "successful fetch",
			htmlContent: `<html><body><div id="parent-fieldname-text"></div></body></html>`,
			statusCode:  http.StatusOK,
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "ploneconf-schedule") {
					t.Errorf("User-Agent = %q, should contain 'ploneconf-schedule'", userAgent)
				}
				if r.URL.Path != "/schedule/talks-november-7" {
					t.Errorf("path = %q, want /schedule/talks-november-7", r.URL.Path)
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			source := NewHTTPSource(server.URL+"/schedule/talks-november", 0)
			body, err := source.Fetch(context.Background(), 7)

			if tt.wantError {
				if err == nil {
					body.Close()
					t.Fatal("Fetch() expected error, got nil")
				}
				if !errors.Is(err, ErrUnexpectedStatus) {
					t.Errorf("Fetch() error = %v, want ErrUnexpectedStatus", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			defer body.Close()

			data, err := io.ReadAll(body)
			if err != nil {
				t.Fatalf("reading body: %v", err)
			}
			if string(data) != tt.htmlContent {
				t.Errorf("body = %q, want %q", data, tt.htmlContent)
			}
		})
	}
}

func TestHTTPSource_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	source := NewHTTPSource(url+"/talks-november", 0)
	if _, err := source.Fetch(context.Background(), 8); err == nil {
		t.Error("Fetch() against closed server expected error, got nil")
	}
}

func TestHTTPSource_PageURL(t *testing.T) {
	source := NewHTTPSource(DefaultBaseURL, 0)

	tests := []struct {
		day  int
		want string
	}{
		{7, "https://2018.ploneconf.org/schedule/talks-november-7"},
		{8, "https://2018.ploneconf.org/schedule/talks-november-8"},
		{9, "https://2018.ploneconf.org/schedule/talks-november-9"},
	}

	for _, tt := range tests {
		if got := source.PageURL(tt.day); got != tt.want {
			t.Errorf("PageURL(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestNewHTTPSource(t *testing.T) {
	s := NewHTTPSource(DefaultBaseURL, 0)

	if s == nil {
		t.Fatal("NewHTTPSource() returned nil")
	}
	if s.client == nil {
		t.Fatal("source client is nil")
	}
	if s.client.Timeout != Timeout {
		t.Errorf("client timeout = %v, want %v", s.client.Timeout, Timeout)
	}
	if s.baseURL != DefaultBaseURL {
		t.Errorf("source baseURL = %q, want %q", s.baseURL, DefaultBaseURL)
	}
}

func TestDirSource_Fetch(t *testing.T) {
	source := NewDirSource(fixturesDir, DefaultBaseURL)

	for _, day := range DefaultDays {
		body, err := source.Fetch(context.Background(), day)
		if err != nil {
			t.Fatalf("Fetch(%d) error: %v", day, err)
		}
		data, err := io.ReadAll(body)
		body.Close()
		if err != nil {
			t.Fatalf("reading day %d: %v", day, err)
		}
		if !strings.Contains(string(data), "parent-fieldname-text") {
			t.Errorf("day %d page is missing the schedule anchor", day)
		}
	}
}

func TestDirSource_Missing(t *testing.T) {
	source := NewDirSource(t.TempDir(), DefaultBaseURL)

	_, err := source.Fetch(context.Background(), 7)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Fetch() error = %v, want os.ErrNotExist", err)
	}
}

func TestDirSource_WithoutExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/talks-november-7", []byte("<html></html>"), 0644); err != nil {
		t.Fatal(err)
	}

	body, err := NewDirSource(dir, DefaultBaseURL).Fetch(context.Background(), 7)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	body.Close()
}

func TestDirSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirSource(fixturesDir, DefaultBaseURL).Fetch(ctx, 7)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}

func TestScraper_FetchDay(t *testing.T) {
	s := New(NewDirSource(fixturesDir, DefaultBaseURL))

	day, err := s.FetchDay(context.Background(), 8)
	if err != nil {
		t.Fatalf("FetchDay() error: %v", err)
	}

	if day.Number != 8 {
		t.Errorf("day.Number = %d, want 8", day.Number)
	}
	if len(day.Locations) != 2 || day.Locations[1] != "Room 2" {
		t.Errorf("day.Locations = %v, want [Auditorium Room 2]", day.Locations)
	}
}

func TestScraper_FetchDayError(t *testing.T) {
	s := New(NewDirSource(t.TempDir(), DefaultBaseURL))

	_, err := s.FetchDay(context.Background(), 9)
	if err == nil {
		t.Fatal("FetchDay() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "day 9") {
		t.Errorf("FetchDay() error = %q, should name the day", err)
	}
}
