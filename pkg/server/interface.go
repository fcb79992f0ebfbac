/*
Package server implements msgpack IPC for dictionary lookups.

The server reads msgpack requests from stdin and writes one msgpack response
per request to stdout. Logs go to stderr.

# IPC

Every request carries an ID and an op. The remaining fields depend on the op:

	{"id": "r1", "op": "add", "w": "book", "t": "livre"}
	{"id": "r2", "op": "translate", "w": "book"}
	{"id": "r3", "op": "suggest", "w": "bok"}
	{"id": "r4", "op": "similarity", "a": "book", "b": "bok"}
	{"id": "r5", "op": "complete", "p": "bo", "l": 10}
	{"id": "r6", "op": "phrase", "p": "the red book"}

List answers rank their items in order, starting at 1:

	{"id": "r2", "s": [{"w": "livre", "r": 1}, {"w": "bouquin", "r": 2}], "c": 2, "t": 12}

Failed ops answer with an ErrorResponse. Codes follow HTTP: 400 for bad
requests, 404 for unknown words, 409 when removing from an empty dictionary
and 500 for internal errors.

Every response except errors carries the handling time in microseconds ("t").
A status response with "ready" is sent before the first request is read.
*/
package server

// Op names accepted in Request.Op
const (
	OpAdd        = "add"
	OpRemove     = "remove"
	OpContains   = "contains"
	OpTranslate  = "translate"
	OpSuggest    = "suggest"
	OpSimilarity = "similarity"
	OpComplete   = "complete"
	OpPhrase     = "phrase"
	OpStats      = "stats"
	OpHealth     = "health"
)

// Request is the single request shape for every op
type Request struct {
	ID          string `msgpack:"id"`
	Op          string `msgpack:"op"`
	Word        string `msgpack:"w,omitempty"`
	Translation string `msgpack:"t,omitempty"`
	A           string `msgpack:"a,omitempty"`
	B           string `msgpack:"b,omitempty"`
	Text        string `msgpack:"p,omitempty"` // prefix or phrase
	Limit       int    `msgpack:"l,omitempty"`
}

// StatusResponse answers ready, health, add and remove
type StatusResponse struct {
	ID        string `msgpack:"id,omitempty"`
	Status    string `msgpack:"status"`
	TimeTaken int64  `msgpack:"t"`
}

// ContainsResponse - membership answer
type ContainsResponse struct {
	ID        string `msgpack:"id"`
	Found     bool   `msgpack:"f"`
	TimeTaken int64  `msgpack:"t"`
}

// ListItem - one ranked word
type ListItem struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// ListResponse answers translate, suggest and complete
type ListResponse struct {
	ID        string     `msgpack:"id"`
	Items     []ListItem `msgpack:"s"`
	Count     int        `msgpack:"c"`
	TimeTaken int64      `msgpack:"t"`
}

// ScoreResponse - similarity answer
type ScoreResponse struct {
	ID        string  `msgpack:"id"`
	Score     float64 `msgpack:"v"`
	TimeTaken int64   `msgpack:"t"`
}

// PhraseItem - one word of a phrase with its translations or corrections
type PhraseItem struct {
	Word         string   `msgpack:"w"`
	Known        bool     `msgpack:"k"`
	Translations []string `msgpack:"tr,omitempty"`
	Corrections  []string `msgpack:"cr,omitempty"`
}

// PhraseResponse - phrase answer
type PhraseResponse struct {
	ID        string       `msgpack:"id"`
	Words     []PhraseItem `msgpack:"s"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// StatsResponse - dictionary and cache counters
type StatsResponse struct {
	ID        string         `msgpack:"id"`
	Stats     map[string]int `msgpack:"s"`
	TimeTaken int64          `msgpack:"t"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
