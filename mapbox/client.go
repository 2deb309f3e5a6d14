package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slog"

	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/ingest"
	"github.com/routegraph/routegraph/matrix"
)

// maxBody caps the response size read from the API.
const maxBody = 4 << 20

// Client calls the Directions Matrix API. The zero value is not usable; build
// one with NewClient.
type Client struct {
	BaseURL    string
	Token      string
	Profile    Profile
	Annotation Annotation
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, e.g. for a test server.
func WithBaseURL(u string) Option { return func(c *Client) { c.BaseURL = strings.TrimRight(u, "/") } }

// WithProfile sets the routing profile.
func WithProfile(p Profile) Option { return func(c *Client) { c.Profile = p } }

// WithAnnotation sets the requested matrix.
func WithAnnotation(a Annotation) Option { return func(c *Client) { c.Annotation = a } }

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTPClient = h } }

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.Logger = l } }

// NewClient returns a client for the driving profile and duration matrix.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    DefaultBaseURL,
		Token:      token,
		Profile:    Driving,
		Annotation: Duration,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// requestURL builds the GET URL for locs.
func (c *Client) requestURL(locs []ingest.Location) (string, error) {
	if c.Token == "" {
		return "", ErrNoToken
	}
	if _, err := ParseProfile(string(c.Profile)); err != nil {
		return "", err
	}
	if _, err := ParseAnnotation(string(c.Annotation)); err != nil {
		return "", err
	}
	if len(locs) == 0 {
		return "", ErrNoLocations
	}
	if len(locs) > MaxCoordinates {
		return "", fmt.Errorf("%w: got %d", ErrTooManyLocation, len(locs))
	}

	coords := make([]string, len(locs))
	for i, l := range locs {
		if l.Point == (orb.Point{}) {
			return "", fmt.Errorf("%w: %q", ErrNotGeocoded, l.Name)
		}
		coords[i] = strconv.FormatFloat(l.Point.Lon(), 'f', -1, 64) + "," +
			strconv.FormatFloat(l.Point.Lat(), 'f', -1, 64)
	}

	q := url.Values{}
	q.Set("access_token", c.Token)
	q.Set("annotations", string(c.Annotation))

	return fmt.Sprintf("%s/mapbox/%s/%s?%s", c.BaseURL, c.Profile, strings.Join(coords, ";"), q.Encode()), nil
}

// Matrix requests the matrix for locs. Cells with no route are set to 0, so
// they read as "no arc" under the matrix package policy.
func (c *Client) Matrix(ctx context.Context, locs []ingest.Location) (*matrix.Dense, error) {
	u, err := c.requestURL(locs)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.Logger.Debug("mapbox matrix request",
		slog.String("profile", string(c.Profile)),
		slog.String("annotation", string(c.Annotation)),
		slog.Int("locations", len(locs)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("mapbox: read response: %w", err)
	}

	var parsed response
	decodeErr := json.Unmarshal(body, &parsed)
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if decodeErr == nil && parsed.Message != "" {
			msg += ": " + parsed.Message
		}
		return nil, fmt.Errorf("%w: %s", ErrStatus, msg)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponse, decodeErr)
	}

	return parsed.matrix(c.Annotation, len(locs))
}

// matrix validates the selected table and converts it to a Dense.
func (r *response) matrix(a Annotation, n int) (*matrix.Dense, error) {
	if r.Code != "Ok" {
		return nil, fmt.Errorf("%w: code %q %s", ErrResponse, r.Code, r.Message)
	}
	rows := r.Durations
	if a == Distance {
		rows = r.Distances
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %ss has %d rows, want %d", ErrResponse, a, len(rows), n)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrResponse, i, len(row), n)
		}
		for j, cell := range row {
			if cell != nil {
				_ = m.Set(i, j, *cell)
			}
		}
	}

	return m, nil
}

// Graph fetches the matrix for locs and builds a geocoded graph from it,
// vertices in locs order.
func (c *Client) Graph(ctx context.Context, locs []ingest.Location) (*core.Graph[float64], error) {
	m, err := c.Matrix(ctx, locs)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(locs))
	for i, l := range locs {
		names[i] = l.Name
	}
	g, err := matrix.ToGraph(names, m)
	if err != nil {
		return nil, err
	}
	if err := ingest.Geocode(g, locs); err != nil {
		return nil, err
	}

	return g, nil
}

// GraphOf fetches arcs for the geocoded vertices of g. Every vertex must be
// geocoded.
func (c *Client) GraphOf(ctx context.Context, g *core.Graph[float64]) (*core.Graph[float64], error) {
	locs := ingest.LocationsOf(g)
	if len(locs) != g.Len() {
		for _, v := range g.Vertices() {
			if !v.Geocoded {
				return nil, fmt.Errorf("%w: %q", ErrNotGeocoded, v.Name)
			}
		}
	}

	return c.Graph(ctx, locs)
}
