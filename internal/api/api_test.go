package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-ricrob/hyperrobot/internal/config"
	"github.com/go-ricrob/hyperrobot/internal/puzzle"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer() *Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := NewServer(&config.Config{Preset: "baby", Depth: 6, Tries: 1, Workers: 1, MaxCells: config.DefaultMaxCells}, log)
	s.seed = func() uint64 { return 3 }
	return s
}

func do(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(t, newTestServer().Router(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestPresets(t *testing.T) {
	w := do(t, newTestServer().Router(), http.MethodGet, "/presets", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]puzzle.Params
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 3)
	assert.Equal(t, 7, got["hyper"].Height)
}

func TestPuzzleAndVerify(t *testing.T) {
	r := newTestServer().Router()

	w := do(t, r, http.MethodGet, "/puzzles?seed=7&tries=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var v puzzle.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, 3, v.Height)
	assert.Equal(t, 5, v.Width)
	assert.Equal(t, 6, v.Params.Depth)
	assert.Contains(t, []uint64{7, 8}, v.Seed)
	assert.Len(t, v.Robots, 4)
	require.NotEmpty(t, v.Moves)

	req := verifyRequest{Params: v.Params, Seed: v.Seed, Command: v.Answer}
	w = do(t, r, http.MethodPost, "/puzzles/verify", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp verifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cleared)
	assert.True(t, resp.Shortest)
	assert.Equal(t, len(v.Moves), resp.Answer)
	assert.Equal(t, v.Answer, resp.Solution)

	// one move too many without the lenient marker
	req.Command = v.Answer + " rs"
	w = do(t, r, http.MethodPost, "/puzzles/verify", req)
	require.Equal(t, http.StatusOK, w.Code)
	resp = verifyResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Cleared)
	assert.NotEmpty(t, resp.Reason)
	assert.Empty(t, resp.Solution)

	// the answer length is reported even if the command fails
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.EqualValues(t, len(v.Moves), raw["answer"])
	assert.NotContains(t, raw, "solution")
}

func TestPuzzleDefaultSeed(t *testing.T) {
	r := newTestServer().Router()
	w := do(t, r, http.MethodGet, "/puzzles?depth=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var v puzzle.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, uint64(3), v.Seed)
	assert.Equal(t, 2, v.Params.Depth)
}

func TestCellLimit(t *testing.T) {
	s := newTestServer()
	height, width := 127, 127
	_, err := s.params(puzzleQuery{Preset: "hyper", Height: &height, Width: &width})
	assert.ErrorIs(t, err, puzzle.ErrInvalidParams)

	p, err := s.params(puzzleQuery{Preset: "hyper"})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMaxCells, p.Height*p.Width)

	s.cfg.MaxCells = 15
	_, err = s.params(puzzleQuery{Preset: "super"})
	assert.ErrorIs(t, err, puzzle.ErrInvalidParams)
	_, err = s.params(puzzleQuery{Preset: "baby"})
	assert.NoError(t, err)
}

func TestBadRequests(t *testing.T) {
	r := newTestServer().Router()

	tests := []struct {
		name   string
		method string
		target string
		body   any
	}{
		{"unknown preset", http.MethodGet, "/puzzles?preset=giant", nil},
		{"zero height", http.MethodGet, "/puzzles?h=0", nil},
		{"too small", http.MethodGet, "/puzzles?h=1&w=3", nil},
		{"not a number", http.MethodGet, "/puzzles?seed=abc", nil},
		{"too large", http.MethodGet, "/puzzles?h=127&w=127", nil},
		{"above cell limit", http.MethodGet, "/puzzles?h=8&w=8", nil},
		{"missing command", http.MethodPost, "/puzzles/verify", map[string]any{"seed": 1}},
		{"bad command", http.MethodPost, "/puzzles/verify", verifyRequest{
			Params: puzzle.Params{Height: 3, Width: 5, Walls: 3, Depth: 4}, Command: "xq",
		}},
		{"verify too large", http.MethodPost, "/puzzles/verify", verifyRequest{
			Params: puzzle.Params{Height: 127, Width: 127, Walls: 3, Depth: 4}, Command: "rs",
		}},
		{"bad params", http.MethodPost, "/puzzles/verify", verifyRequest{
			Params: puzzle.Params{Height: 0, Width: 5}, Command: "rs",
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := do(t, r, test.method, test.target, test.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}
