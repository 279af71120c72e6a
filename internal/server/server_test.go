package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lgbarn/kiaak-go/internal/config"
	"github.com/lgbarn/kiaak-go/internal/testutil"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.NewConfigBuilder().WithLog(io.Discard).WithVerbosity(config.LevelDebug).Build()
	return New(cfg)
}

// do runs req against app and returns the response with its body read.
func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp, string(b)
}

func post(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	testutil.AssertEqual(t, resp.StatusCode, http.StatusOK)
	testutil.AssertContains(t, body, `"status":"ok"`)
	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	testutil.AssertNoError(t, err, "request id is a UUID")
}

func TestRequestIDReused(t *testing.T) {
	app := newTestApp(t)
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)

	resp, body := do(t, app, req)
	testutil.AssertEqual(t, resp.Header.Get(RequestIDHeader), id)
	testutil.AssertContains(t, body, id)

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp, _ = do(t, app, req)
	testutil.AssertTrue(t, resp.Header.Get(RequestIDHeader) != "not-a-uuid")
}

func TestParseMove(t *testing.T) {
	app := newTestApp(t)
	resp, body := do(t, app, post("/parse", `{"move":"ME弓MIMY橋四水三此無"}`))
	testutil.AssertEqual(t, resp.StatusCode, http.StatusOK)

	var got struct {
		Kind string `json:"kind"`
		Move struct {
			Notation string `json:"notation"`
			Src      string `json:"src"`
			Dest     string `json:"dest"`
		} `json:"move"`
		Rest string `json:"rest"`
	}
	testutil.AssertNoError(t, json.Unmarshal([]byte(body), &got))
	testutil.AssertEqual(t, got.Kind, "StepAndBridgeStick")
	testutil.AssertEqual(t, got.Move.Src, "ME")
	testutil.AssertEqual(t, got.Move.Dest, "MY")
	testutil.AssertEqual(t, got.Rest, "水三此無")
}

func TestParseMoveFailure(t *testing.T) {
	app := newTestApp(t)
	resp, body := do(t, app, post("/parse", `{"move":"LY弓ZY水三此無"}`))
	testutil.AssertEqual(t, resp.StatusCode, http.StatusUnprocessableEntity)

	var got ErrorResponse
	testutil.AssertNoError(t, json.Unmarshal([]byte(body), &got))
	testutil.AssertEqual(t, got.Kind, "NoMatchingShape")
	testutil.AssertEqual(t, got.Column, 7)
	testutil.AssertEqual(t, got.RequestID, resp.Header.Get(RequestIDHeader))
}

func TestParseMoveBadRequest(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"move":`},
		{"missing move", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, app, post("/parse", tt.body))
			testutil.AssertEqual(t, resp.StatusCode, http.StatusBadRequest)
			testutil.AssertContains(t, body, `"kind":"BadRequest"`)
		})
	}
}

func TestParseRecord(t *testing.T) {
	app := newTestApp(t)
	resp, body := do(t, app, post("/record", `{"text":"KE皇[或]KI XU兵XY無撃裁\n黒弓MY","name":"g.txt"}`))
	testutil.AssertEqual(t, resp.StatusCode, http.StatusOK)

	var got struct {
		Record struct {
			Name  string            `json:"name"`
			Moves []json.RawMessage `json:"moves"`
		} `json:"record"`
		Stats struct {
			Moves      int `json:"moves"`
			Parachutes int `json:"parachutes"`
		} `json:"stats"`
		Error *ErrorResponse `json:"error"`
	}
	testutil.AssertNoError(t, json.Unmarshal([]byte(body), &got))
	testutil.AssertEqual(t, got.Record.Name, "g.txt")
	testutil.AssertEqual(t, len(got.Record.Moves), 3)
	testutil.AssertEqual(t, got.Stats.Moves, 3)
	testutil.AssertEqual(t, got.Stats.Parachutes, 1)
	testutil.AssertContains(t, body, `"kind":"Parachute"`)
	testutil.AssertTrue(t, got.Error == nil, "no error on success")
}

func TestParseRecordFailure(t *testing.T) {
	app := newTestApp(t)
	resp, body := do(t, app, post("/record", `{"text":"XU兵XY無撃裁\nKAA兵XY無撃裁 黒弓MY"}`))
	testutil.AssertEqual(t, resp.StatusCode, http.StatusUnprocessableEntity)

	var got struct {
		Record struct {
			Moves []json.RawMessage `json:"moves"`
		} `json:"record"`
		Error ErrorResponse `json:"error"`
	}
	testutil.AssertNoError(t, json.Unmarshal([]byte(body), &got))
	testutil.AssertEqual(t, len(got.Record.Moves), 1, "moves before the failure")
	testutil.AssertEqual(t, got.Error.Kind, "NoMatchingShape")
	testutil.AssertEqual(t, got.Error.Line, 2)
}

func TestParseRecordKeepGoing(t *testing.T) {
	app := newTestApp(t)
	resp, body := do(t, app, post("/record", `{"text":"XU兵XY無撃裁 QQ 黒弓MY","keepGoing":true}`))
	testutil.AssertEqual(t, resp.StatusCode, http.StatusUnprocessableEntity)

	var got struct {
		Record struct {
			Moves  []json.RawMessage `json:"moves"`
			Errors []json.RawMessage `json:"errors"`
		} `json:"record"`
		Error ErrorResponse `json:"error"`
	}
	testutil.AssertNoError(t, json.Unmarshal([]byte(body), &got))
	testutil.AssertEqual(t, len(got.Record.Moves), 2)
	testutil.AssertEqual(t, len(got.Record.Errors), 1)
	testutil.AssertEqual(t, got.Error.Column, 10)
}

func TestParseMoveCache(t *testing.T) {
	cfg := config.NewConfigBuilder().WithLog(io.Discard).WithCacheSize(2).Build()
	app, h := newApp(cfg)

	for _, move := range []string{"黒弓MY", "黒弓MY", "QQ", "XU兵XY無撃裁"} {
		do(t, app, post("/parse", `{"move":"`+move+`"}`))
	}
	testutil.AssertEqual(t, h.CacheLen(), 2, "cache is bounded")

	// Cached failures still answer 422.
	resp, _ := do(t, app, post("/parse", `{"move":"QQ"}`))
	testutil.AssertEqual(t, resp.StatusCode, http.StatusUnprocessableEntity)

	cfg = config.NewConfigBuilder().WithLog(io.Discard).WithCacheSize(0).Build()
	app, h = newApp(cfg)
	do(t, app, post("/parse", `{"move":"黒弓MY"}`))
	testutil.AssertEqual(t, h.CacheLen(), 0, "cache disabled")
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t)
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	testutil.AssertEqual(t, resp.StatusCode, http.StatusNotFound)
	testutil.AssertContains(t, body, "requestId")
}
