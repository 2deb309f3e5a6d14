package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/ingest"
	"github.com/routegraph/routegraph/matrix"
)

const cityMatrix = `city,Bentonville,Rogers,Springdale
Bentonville,0,8,19
Rogers, 9,0,11
Springdale,20,0,0
`

func TestReadMatrixCSV(t *testing.T) {
	names, m, err := ingest.ReadMatrixCSV(strings.NewReader(cityMatrix))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bentonville", "Rogers", "Springdale"}, names)
	assert.Equal(t, []float64{9, 0, 11}, m.Row(1))
}

func TestReadMatrixGraph(t *testing.T) {
	g, err := ingest.ReadMatrixGraph(strings.NewReader(cityMatrix))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())

	_, ok := g.Weight(2, 1)
	assert.False(t, ok, "zero cell means no arc")
	w, ok := g.Weight(2, 0)
	assert.True(t, ok)
	assert.Equal(t, 20.0, w)
}

func TestReadMatrixCSV_CollectsAllErrors(t *testing.T) {
	in := `x,A,B
A,0,oops
C,,0
`
	_, _, err := ingest.ReadMatrixCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, ingest.ErrNumber)
	assert.ErrorIs(t, err, ingest.ErrRowLabel)
	assert.ErrorIs(t, err, ingest.ErrBlankField)
}

func TestReadMatrixCSV_Shape(t *testing.T) {
	_, _, err := ingest.ReadMatrixCSV(strings.NewReader(""))
	require.ErrorIs(t, err, ingest.ErrEmptyInput)

	_, _, err = ingest.ReadMatrixCSV(strings.NewReader("only\n"))
	require.ErrorIs(t, err, ingest.ErrHeader)

	_, _, err = ingest.ReadMatrixCSV(strings.NewReader("x,A,B\nA,0,1\n"))
	require.ErrorIs(t, err, ingest.ErrRowCount)

	_, _, err = ingest.ReadMatrixCSV(strings.NewReader("x,A,B\nA,0\nB,1,0\n"))
	require.ErrorIs(t, err, ingest.ErrRowWidth)
}

func TestWriteMatrixCSV_RoundTrip(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1.5}, {2, 0}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteMatrixCSV(&buf, []string{"P", "Q"}, m))
	assert.Equal(t, "from/to,P,Q\nP,0,1.5\nQ,2,0\n", buf.String())

	names, back, err := ingest.ReadMatrixCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q"}, names)
	assert.Equal(t, m.String(), back.String())

	require.ErrorIs(t, ingest.WriteMatrixCSV(&buf, []string{"P"}, m), matrix.ErrNameCount)
}
