package server

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bastiangx/dictserve/pkg/config"
	"github.com/bastiangx/dictserve/pkg/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func encodeRequests(t *testing.T, reqs ...Request) *bytes.Buffer {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range reqs {
		require.NoError(t, enc.Encode(req))
	}
	return &in
}

func runServer(t *testing.T, cfg *config.Config, configPath string, in *bytes.Buffer) (*msgpack.Decoder, error) {
	t.Helper()
	var out bytes.Buffer
	srv := NewServerWithIO(translator.New(translator.DefaultOptions()), cfg, configPath, in, &out)
	err := srv.Start()

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec, err
}

func next[T any](t *testing.T, dec *msgpack.Decoder) T {
	t.Helper()
	var v T
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestServerSession(t *testing.T) {
	in := encodeRequests(t,
		Request{ID: "1", Op: OpAdd, Word: "book", Translation: "livre"},
		Request{ID: "2", Op: OpAdd, Word: "book", Translation: "bouquin"},
		Request{ID: "3", Op: OpAdd, Word: "books", Translation: "livres"},
		Request{ID: "4", Op: OpTranslate, Word: "book"},
		Request{ID: "5", Op: OpContains, Word: "books"},
		Request{ID: "6", Op: OpSuggest, Word: "bok"},
		Request{ID: "7", Op: OpSimilarity, A: "ab", B: "abcd"},
		Request{ID: "8", Op: OpComplete, Text: "boo"},
		Request{ID: "9", Op: OpPhrase, Text: "book xyz"},
		Request{ID: "10", Op: OpRemove, Word: "nope"},
		Request{ID: "11", Op: OpRemove, Word: "books"},
		Request{ID: "12", Op: OpStats},
		Request{ID: "13", Op: OpHealth},
	)

	dec, err := runServer(t, config.DefaultConfig(), "", in)
	require.NoError(t, err)

	for _, id := range []string{"1", "2", "3"} {
		resp := next[StatusResponse](t, dec)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "ok", resp.Status)
	}

	translate := next[ListResponse](t, dec)
	assert.Equal(t, "4", translate.ID)
	assert.Equal(t, 2, translate.Count)
	assert.Equal(t, []ListItem{{"livre", 1}, {"bouquin", 2}}, translate.Items)

	contains := next[ContainsResponse](t, dec)
	assert.True(t, contains.Found)

	suggest := next[ListResponse](t, dec)
	assert.Equal(t, "6", suggest.ID)
	assert.Equal(t, 2, suggest.Count)

	score := next[ScoreResponse](t, dec)
	assert.InDelta(t, 0.75, score.Score, 1e-9)

	complete := next[ListResponse](t, dec)
	assert.Equal(t, []ListItem{{"book", 1}, {"books", 2}}, complete.Items)

	phrase := next[PhraseResponse](t, dec)
	require.Equal(t, 2, phrase.Count)
	assert.True(t, phrase.Words[0].Known)
	assert.Equal(t, []string{"livre", "bouquin"}, phrase.Words[0].Translations)
	assert.False(t, phrase.Words[1].Known)
	assert.Empty(t, phrase.Words[1].Corrections)

	notFound := next[ErrorResponse](t, dec)
	assert.Equal(t, "10", notFound.ID)
	assert.Equal(t, 404, notFound.Code)

	removed := next[StatusResponse](t, dec)
	assert.Equal(t, "ok", removed.Status)

	stats := next[StatsResponse](t, dec)
	assert.Equal(t, 1, stats.Stats["words"])

	health := next[StatusResponse](t, dec)
	assert.Equal(t, "13", health.ID)
	assert.Equal(t, "ok", health.Status)
}

func TestServerRejectsBadRequests(t *testing.T) {
	in := encodeRequests(t,
		Request{ID: "a", Op: "fly"},
		Request{ID: "b", Op: OpTranslate, Word: "b@d"},
		Request{ID: "c", Op: OpAdd, Word: "book"},
		Request{ID: "d", Op: OpContains},
		Request{ID: "e", Op: OpRemove, Word: "book"},
		Request{ID: "f", Op: OpPhrase},
		Request{ID: "g", Op: OpSimilarity, A: strings.Repeat("ab", 600), B: "ab"},
		Request{ID: "h", Op: OpSimilarity, A: "ab", B: strings.Repeat("ab", 600)},
		Request{ID: "i", Op: OpSimilarity, A: "ab"},
		Request{ID: "j", Op: OpPhrase, Text: "the " + strings.Repeat("x", 1200) + " book"},
	)

	dec, err := runServer(t, config.DefaultConfig(), "", in)
	require.NoError(t, err)

	codes := map[string]int{"a": 400, "b": 400, "c": 400, "d": 400, "e": 409, "f": 400, "g": 400, "h": 400, "i": 400, "j": 400}
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		resp := next[ErrorResponse](t, dec)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, codes[id], resp.Code, "request %s", id)
		assert.NotEmpty(t, resp.Error)
	}
}

func TestServerFilterDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.EnableFilter = false
	in := encodeRequests(t, Request{ID: "1", Op: OpContains, Word: "b@d"})

	dec, err := runServer(t, cfg, "", in)
	require.NoError(t, err)
	resp := next[ContainsResponse](t, dec)
	assert.Equal(t, "1", resp.ID)
	assert.False(t, resp.Found)
}

func TestServerCompleteLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxPrefixResults = 2
	in := encodeRequests(t,
		Request{ID: "1", Op: OpAdd, Word: "ant", Translation: "fourmi"},
		Request{ID: "2", Op: OpAdd, Word: "anchor", Translation: "ancre"},
		Request{ID: "3", Op: OpAdd, Word: "angle", Translation: "angle"},
		Request{ID: "4", Op: OpComplete, Text: "an", Limit: 50},
		Request{ID: "5", Op: OpComplete, Text: "an", Limit: 1},
	)

	dec, err := runServer(t, cfg, "", in)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		next[StatusResponse](t, dec)
	}
	capped := next[ListResponse](t, dec)
	assert.Equal(t, []ListItem{{"anchor", 1}, {"angle", 2}}, capped.Items)
	limited := next[ListResponse](t, dec)
	assert.Equal(t, []ListItem{{"anchor", 1}}, limited.Items)
}

func TestServerInvalidStream(t *testing.T) {
	in := bytes.NewBuffer([]byte{0xc1})

	dec, err := runServer(t, config.DefaultConfig(), "", in)
	assert.Error(t, err)
	resp := next[ErrorResponse](t, dec)
	assert.Equal(t, 400, resp.Code)
}

func TestServerReloadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nmax_word_len = 3\nreload_every = 2\n"), 0644))

	cfg := config.DefaultConfig()
	cfg.Server.ReloadEvery = 2
	in := encodeRequests(t,
		Request{ID: "1", Op: OpContains, Word: "abcd"},
		Request{ID: "2", Op: OpHealth},
		Request{ID: "3", Op: OpContains, Word: "abcd"},
	)

	dec, err := runServer(t, cfg, path, in)
	require.NoError(t, err)

	before := next[ContainsResponse](t, dec)
	assert.Equal(t, "1", before.ID)
	next[StatusResponse](t, dec)
	after := next[ErrorResponse](t, dec)
	assert.Equal(t, "3", after.ID)
	assert.Equal(t, 400, after.Code)
}

func TestServerPhraseWithinLimits(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxWordLen = 5
	in := encodeRequests(t,
		Request{ID: "1", Op: OpPhrase, Text: "the red book"},
		Request{ID: "2", Op: OpPhrase, Text: "the reddish book"},
		Request{ID: "3", Op: OpSimilarity, A: "books", B: "bok"},
	)

	dec, err := runServer(t, cfg, "", in)
	require.NoError(t, err)

	ok := next[PhraseResponse](t, dec)
	assert.Equal(t, "1", ok.ID)
	assert.Equal(t, 3, ok.Count)

	tooLong := next[ErrorResponse](t, dec)
	assert.Equal(t, "2", tooLong.ID)
	assert.Equal(t, 400, tooLong.Code)
	assert.Contains(t, tooLong.Error, "maximum length")

	score := next[ScoreResponse](t, dec)
	assert.Equal(t, "3", score.ID)
	assert.Greater(t, score.Score, 0.0)
}

func TestServerListRanksStayUnique(t *testing.T) {
	var out bytes.Buffer
	srv := NewServerWithIO(translator.New(translator.DefaultOptions()), nil, "", &bytes.Buffer{}, &out)
	words := make([]string, 70000)
	for i := range words {
		words[i] = "w"
	}

	srv.sendList("big", words, time.Now())

	var resp ListResponse
	require.NoError(t, msgpack.NewDecoder(&out).Decode(&resp))
	require.Equal(t, 65535, resp.Count)
	assert.Equal(t, uint16(1), resp.Items[0].Rank)
	assert.Equal(t, uint16(65535), resp.Items[resp.Count-1].Rank)
}
