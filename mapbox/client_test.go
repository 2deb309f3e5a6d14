package mapbox_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/ingest"
	"github.com/routegraph/routegraph/mapbox"
)

var threeCities = []ingest.Location{
	{Name: "Bentonville", Point: orb.Point{-94.2088, 36.3729}},
	{Name: "Rogers", Point: orb.Point{-94.1185, 36.332}},
	{Name: "Springdale", Point: orb.Point{-94.1288, 36.1867}},
}

// newServer answers every request with status and body and records the last request.
func newServer(t *testing.T, status int, body string, last **http.Request) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if last != nil {
			*last = r
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

const okDurations = `{"code":"Ok","durations":[[0,600,1200],[650,0,null],[1300,700,0]]}`

func TestClient_Matrix(t *testing.T) {
	var req *http.Request
	srv := newServer(t, http.StatusOK, okDurations, &req)
	c := mapbox.NewClient("tok", mapbox.WithBaseURL(srv.URL+"/"), mapbox.WithProfile(mapbox.Walking))

	m, err := c.Matrix(context.Background(), threeCities)
	require.NoError(t, err)
	assert.Equal(t, []float64{650, 0, 0}, m.Row(1))

	require.NotNil(t, req)
	assert.Equal(t, "/mapbox/walking/-94.2088,36.3729;-94.1185,36.332;-94.1288,36.1867", req.URL.Path)
	assert.Equal(t, "tok", req.URL.Query().Get("access_token"))
	assert.Equal(t, "duration", req.URL.Query().Get("annotations"))
}

func TestClient_Graph(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"code":"Ok","distances":[[0,9000,20000],[9100,0,null],[19000,0,0]]}`, nil)
	c := mapbox.NewClient("tok", mapbox.WithBaseURL(srv.URL), mapbox.WithAnnotation(mapbox.Distance))

	g, err := c.Graph(context.Background(), threeCities)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bentonville", "Rogers", "Springdale"}, g.Names())
	// null and zero cells carry no arc.
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, threeCities, ingest.LocationsOf(g))

	again, err := c.GraphOf(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), again.EdgeCount())
}

func TestClient_InputValidation(t *testing.T) {
	ctx := context.Background()

	_, err := mapbox.NewClient("").Matrix(ctx, threeCities)
	require.ErrorIs(t, err, mapbox.ErrNoToken)

	_, err = mapbox.NewClient("tok").Matrix(ctx, nil)
	require.ErrorIs(t, err, mapbox.ErrNoLocations)

	many := make([]ingest.Location, mapbox.MaxCoordinates+1)
	for i := range many {
		many[i] = ingest.Location{Name: fmt.Sprint(i), Point: orb.Point{1, float64(i)}}
	}
	_, err = mapbox.NewClient("tok").Matrix(ctx, many)
	require.ErrorIs(t, err, mapbox.ErrTooManyLocation)

	_, err = mapbox.NewClient("tok").Matrix(ctx, []ingest.Location{{Name: "Nowhere"}})
	require.ErrorIs(t, err, mapbox.ErrNotGeocoded)

	_, err = mapbox.NewClient("tok", mapbox.WithProfile("flying")).Matrix(ctx, threeCities)
	require.ErrorIs(t, err, mapbox.ErrBadProfile)

	_, err = mapbox.NewClient("tok", mapbox.WithAnnotation("speed")).Matrix(ctx, threeCities)
	require.ErrorIs(t, err, mapbox.ErrBadAnnotation)
}

func TestClient_GraphOfRequiresCoordinates(t *testing.T) {
	g, err := ingest.VertexGraph[float64](threeCities)
	require.NoError(t, err)
	_, err = g.AddVertex("Unknown")
	require.NoError(t, err)

	_, err = mapbox.NewClient("tok").GraphOf(context.Background(), g)
	require.ErrorIs(t, err, mapbox.ErrNotGeocoded)
}

func TestClient_ErrorResponses(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
		msg    string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Not Authorized - Invalid Token"}`, mapbox.ErrStatus, "Invalid Token"},
		{"not ok code", http.StatusOK, `{"code":"NoRoute","message":"no route"}`, mapbox.ErrResponse, "NoRoute"},
		{"missing matrix", http.StatusOK, `{"code":"Ok"}`, mapbox.ErrResponse, "0 rows"},
		{"ragged", http.StatusOK, `{"code":"Ok","durations":[[0],[1,0],[1,1,0]]}`, mapbox.ErrResponse, "row 0"},
		{"garbage", http.StatusOK, `<html>`, mapbox.ErrResponse, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t, tc.status, tc.body, nil)
			_, err := mapbox.NewClient("tok", mapbox.WithBaseURL(srv.URL)).Matrix(context.Background(), threeCities)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, strings.Contains(err.Error(), tc.msg), err.Error())
		})
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := newServer(t, http.StatusOK, okDurations, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mapbox.NewClient("tok", mapbox.WithBaseURL(srv.URL)).Matrix(ctx, threeCities)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseProfileAndAnnotation(t *testing.T) {
	p, err := mapbox.ParseProfile("driving-traffic")
	require.NoError(t, err)
	assert.Equal(t, mapbox.DrivingTraffic, p)

	a, err := mapbox.ParseAnnotation("distance")
	require.NoError(t, err)
	assert.Equal(t, mapbox.Distance, a)
}
