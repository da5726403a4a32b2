package main

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/topsis/internal/scorer"
	"github.com/sells-group/topsis/internal/table"
)

const phonesCSV = "Model,P1,P2,P3,P4\nM1,1,7,9,9\nM2,2,4,6,7\nM3,3,3,6,5\n"

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readOutput(t *testing.T, path string) *table.Table {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	tbl, err := table.ReadCSV(f, table.CSVOptions{})
	require.NoError(t, err)
	return tbl
}

func TestRank_EndToEnd(t *testing.T) {
	in := writeInput(t, "phones.csv", phonesCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	stdout, err := runCLI(t, in, "0.25,0.25,0.25,0.25", "+,+,-,+", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "best: M3")

	got := readOutput(t, out)
	assert.Equal(t, []string{"Model", "P1", "P2", "P3", "P4", "Topsis_Score", "Rank"}, got.Header)
	require.Len(t, got.Rows, 3)

	// original values pass through untouched
	assert.Equal(t, []string{"M1", "1", "7", "9", "9"}, got.Rows[0][:5])

	wantScores := []float64{0.4905476190634646, 0.4681508159425225, 0.5094523809365354}
	wantRanks := []string{"2", "3", "1"}
	for i, row := range got.Rows {
		s, err := strconv.ParseFloat(row[5], 64)
		require.NoError(t, err)
		assert.InDelta(t, wantScores[i], s, 1e-12)
		assert.Equal(t, wantRanks[i], row[6])
	}
}

func TestRank_Precision(t *testing.T) {
	in := writeInput(t, "phones.csv", phonesCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, "--precision", "3", in, "1,1,1,1", "+,+,-,+", out)
	require.NoError(t, err)

	got := readOutput(t, out)
	assert.Equal(t, "0.491", got.Rows[0][5])
}

func TestRank_CategoricalColumn(t *testing.T) {
	in := writeInput(t, "cars.csv", "Car,Price,Comfort\nA,20,high\nB,30,low\nC,25,medium\n")
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, in, "1,1", "-,+", out)
	require.NoError(t, err)

	got := readOutput(t, out)
	assert.Equal(t, "high", got.Rows[0][2], "encoded column keeps its labels in the output")
	// comfort codes: high=0, low=1, medium=2
	assert.Equal(t, []string{"3", "2", "1"}, []string{got.Rows[0][4], got.Rows[1][4], got.Rows[2][4]})
}

func TestRank_CostFirstImpacts(t *testing.T) {
	in := writeInput(t, "phones.csv", phonesCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	stdout, err := runCLI(t, in, "1,1,1,1", "-,+,-,+", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "best: M1")

	got := readOutput(t, out)
	require.Len(t, got.Rows, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{got.Rows[0][6], got.Rows[1][6], got.Rows[2][6]})
}

func TestRank_SingleCostImpactWithFlag(t *testing.T) {
	in := writeInput(t, "cars.csv", "Car,Price,Seats\nA,20,4\nB,30,5\n")
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, "--precision", "2", in, "1,1", "-,-", out)
	require.NoError(t, err)

	got := readOutput(t, out)
	assert.Equal(t, "1", got.Rows[0][4], "cheaper car with fewer seats wins when both are costs")
}

func TestRank_CommentLinesFromEnv(t *testing.T) {
	t.Setenv("TOPSIS_INPUT_COMMENT", "#")
	in := writeInput(t, "phones.csv", "# source: survey\n"+phonesCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, in, "0.25,0.25,0.25,0.25", "+,+,-,+", out)
	require.NoError(t, err)

	got := readOutput(t, out)
	assert.Equal(t, "Model", got.Header[0])
	assert.Equal(t, []string{"2", "3", "1"}, []string{got.Rows[0][6], got.Rows[1][6], got.Rows[2][6]})
}

func TestRank_SemicolonDelimiter(t *testing.T) {
	in := writeInput(t, "phones.csv", strings.ReplaceAll(phonesCSV, ",", ";"))
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, "--delimiter", ";", in, "1,1,1,1", "+,+,-,+", out)
	require.NoError(t, err)
	assert.Len(t, readOutput(t, out).Rows, 3)
}

func TestRank_XLSXOutput(t *testing.T) {
	in := writeInput(t, "phones.csv", phonesCSV)
	out := filepath.Join(t.TempDir(), "result.xlsx")

	_, err := runCLI(t, in, "1,1,1,1", "+,+,-,+", out)
	require.NoError(t, err)

	got, err := table.ReadXLSX(out, table.XLSXOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Rank", got.Header[len(got.Header)-1])
	assert.Equal(t, "1", got.Rows[2][6])
}

func TestRank_MalformedWeights(t *testing.T) {
	in := writeInput(t, "phones.csv", phonesCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, in, "1,a,2,1", "+,+,-,+", out)
	require.Error(t, err)
	assert.True(t, table.IsAdapter(err))
	assert.NoFileExists(t, out)
}

func TestRank_MalformedImpacts(t *testing.T) {
	in := writeInput(t, "phones.csv", phonesCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, in, "1,1,1,1", "+,+,x,+", out)
	require.Error(t, err)
	assert.True(t, table.IsAdapter(err))
	assert.NoFileExists(t, out)
}

func TestRank_WeightCountMismatch(t *testing.T) {
	in := writeInput(t, "phones.csv", phonesCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, in, "1,1,1", "+,+,-", out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scorer.ErrInvalidInput))
	assert.NoFileExists(t, out)
}

func TestRank_MissingFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, filepath.Join(t.TempDir(), "nope.csv"), "1,1", "+,+", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestRank_TooFewColumns(t *testing.T) {
	in := writeInput(t, "narrow.csv", "id,a\nx,1\ny,2\n")
	out := filepath.Join(t.TempDir(), "result.csv")

	_, err := runCLI(t, in, "1", "+", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "three or more columns")
}
