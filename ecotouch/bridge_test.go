package ecotouch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

// fakeController records the cgi calls of a test and serves canned bodies.
type fakeController struct {
	t *testing.T

	loginCalls int
	readCalls  int
	writeCalls int

	login func(r *http.Request) string
	read  func(call int, r *http.Request) string
	write func(call int, r *http.Request) string
}

func (f *fakeController) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cgi/login":
			f.loginCalls++
			body := "#S_OK"
			if f.login != nil {
				body = f.login(r)
			}
			if body == "#S_OK" {
				http.SetCookie(w, &http.Cookie{Name: "IDALToken", Value: "session-" + strconv.Itoa(f.loginCalls)})
			}
			_, _ = io.WriteString(w, body)
		case "/cgi/logout":
			_, _ = io.WriteString(w, "#S_OK")
		case "/cgi/readTags":
			f.readCalls++
			if r.URL.Query().Get("_") == "" {
				f.t.Error("readTags call without nonce parameter")
			}
			_, _ = io.WriteString(w, f.read(f.readCalls, r))
		case "/cgi/writeTags":
			f.writeCalls++
			if r.URL.Query().Get("rnd") == "" {
				f.t.Error("writeTags call without rnd parameter")
			}
			if r.URL.Query().Get("returnValue") != "true" {
				f.t.Error("writeTags call without returnValue=true")
			}
			_, _ = io.WriteString(w, f.write(f.writeCalls, r))
		default:
			f.t.Fatalf("unexpected path %v", r.URL.Path)
		}
	})
}

func newTestBridge(t *testing.T, f *fakeController, cfg BridgeConfig) (*Bridge, *fakeController) {
	t.Helper()
	f.t = t
	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)
	cfg.Host = strings.TrimPrefix(server.URL, "http://")
	return NewBridge(cfg), f
}

// okBody renders a response carrying S_OK blocks for every requested tag.
func okBody(r *http.Request, value func(tag string) string) string {
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		tag := r.URL.Query().Get("t" + strconv.Itoa(i))
		fmt.Fprintf(&sb, "#%s\tS_OK\n192\t%s\n", tag, value(tag))
	}
	return sb.String()
}

func TestReadChunking(t *testing.T) {
	var perCall []int
	b, f := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string {
			n, _ := strconv.Atoi(r.URL.Query().Get("n"))
			perCall = append(perCall, n)
			return okBody(r, func(string) string { return "1" })
		},
	}, BridgeConfig{TagsPerRequest: 10})

	tags := make([]string, 137)
	for i := range tags {
		tags[i] = "I" + strconv.Itoa(i+1)
	}
	raw, err := b.readTags(context.Background(), tags)
	if err != nil {
		t.Fatal(err)
	}
	if f.readCalls != 14 {
		t.Errorf("got %d chunk calls, want 14", f.readCalls)
	}
	if len(raw) != 137 {
		t.Errorf("got %d merged entries, want 137", len(raw))
	}
	for i, n := range perCall {
		want := 10
		if i == 13 {
			want = 7
		}
		if n != want {
			t.Errorf("chunk %d carried %d tags, want %d", i, n, want)
		}
	}
	for _, tag := range tags {
		if raw[tag].status != StatusOK {
			t.Fatalf("tag %v: status %v", tag, raw[tag].status)
		}
	}
}

func TestChunkSizeClamped(t *testing.T) {
	b := NewBridge(BridgeConfig{Host: "example", TagsPerRequest: 500})
	if b.tagsPerRequest != maxTagsPerRequest {
		t.Errorf("got chunk size %d, want %d", b.tagsPerRequest, maxTagsPerRequest)
	}
	b = NewBridge(BridgeConfig{Host: "example"})
	if b.tagsPerRequest != 10 {
		t.Errorf("got default chunk size %d, want 10", b.tagsPerRequest)
	}
}

func TestSessionRecovery(t *testing.T) {
	var retriedTag string
	b, f := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string {
			if call == 1 {
				return "#E_NEED_LOGIN"
			}
			if c, err := r.Cookie("IDALToken"); err != nil || c.Value != "session-1" {
				t.Error("retry did not carry the fresh session cookie")
			}
			retriedTag = r.URL.Query().Get("t1")
			return okBody(r, func(string) string { return "215" })
		},
	}, BridgeConfig{})

	res, err := b.ReadValue(context.Background(), "TEMPERATURE_OUTSIDE")
	if err != nil {
		t.Fatal(err)
	}
	if f.loginCalls != 1 {
		t.Errorf("got %d login calls, want 1", f.loginCalls)
	}
	if f.readCalls != 2 {
		t.Errorf("got %d read calls, want 2", f.readCalls)
	}
	if retriedTag != "A1" {
		t.Errorf("retried tag %v, want A1", retriedTag)
	}
	if res.Value != 21.5 || res.Status != StatusOK {
		t.Errorf("got %+v", res)
	}
}

func TestSessionRecoveryGivesUpAfterOneRetry(t *testing.T) {
	b, f := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string {
			return "#E_NEED_LOGIN"
		},
	}, BridgeConfig{})

	_, err := b.ReadValue(context.Background(), "TEMPERATURE_OUTSIDE")
	var se StatusError
	if !errors.As(err, &se) || se.Status != StatusNeedLogin {
		t.Fatalf("expected need-login StatusError, got %v", err)
	}
	if f.readCalls != 2 {
		t.Errorf("got %d read calls, want 2 (no third attempt)", f.readCalls)
	}
	if f.loginCalls != 1 {
		t.Errorf("got %d login calls, want 1", f.loginCalls)
	}
}

func TestLoginRejected(t *testing.T) {
	b, _ := newTestBridge(t, &fakeController{
		login: func(r *http.Request) string { return "#E_TOO_MANY_USERS" },
	}, BridgeConfig{})

	err := b.Login(context.Background(), "waterkotte", "waterkotte")
	if !errors.Is(err, ErrTooManyUsers) {
		t.Errorf("expected ErrTooManyUsers, got %v", err)
	}

	b2, _ := newTestBridge(t, &fakeController{
		login: func(r *http.Request) string { return "#E_PASS" },
	}, BridgeConfig{})
	err = b2.Login(context.Background(), "waterkotte", "wrong")
	var se StatusError
	if !errors.As(err, &se) || se.Status != "E_PASS" {
		t.Errorf("expected StatusError E_PASS, got %v", err)
	}
}

func TestReadTooManyUsersAborts(t *testing.T) {
	b, f := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string { return "#E_TOO_MANY_USERS" },
	}, BridgeConfig{})

	_, err := b.ReadValue(context.Background(), "TEMPERATURE_OUTSIDE")
	if !errors.Is(err, ErrTooManyUsers) {
		t.Fatalf("expected ErrTooManyUsers, got %v", err)
	}
	if f.readCalls != 1 || f.loginCalls != 0 {
		t.Errorf("capacity condition must not retry: %d reads, %d logins", f.readCalls, f.loginCalls)
	}
}

func TestPerRegisterMissIsolation(t *testing.T) {
	b, _ := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string {
			// A2 is missing entirely, D71 is inactive
			return "#A1\tS_OK\n192\t-32\n#D71\tE_INACTIVETAG\n"
		},
	}, BridgeConfig{})

	res, err := b.ReadValues(context.Background(),
		[]string{"TEMPERATURE_OUTSIDE", "TEMPERATURE_OUTSIDE_1H", "STATE_BLOCKING_TIME"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 3 {
		t.Fatalf("got %d results, want 3", len(res))
	}
	if r := res["TEMPERATURE_OUTSIDE"]; r.Value != -3.2 || r.Status != StatusOK {
		t.Errorf("TEMPERATURE_OUTSIDE: %+v", r)
	}
	if r := res["TEMPERATURE_OUTSIDE_1H"]; r.Value != nil || r.Status != StatusNotFound {
		t.Errorf("TEMPERATURE_OUTSIDE_1H: %+v", r)
	}
	if r := res["STATE_BLOCKING_TIME"]; r.Value != nil || r.Status != StatusInactive {
		t.Errorf("STATE_BLOCKING_TIME: %+v", r)
	}
}

func TestDecodeErrorScopedToOneProperty(t *testing.T) {
	b, _ := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string {
			// D420 carries a value outside the digital domain
			return "#A1\tS_OK\n192\t210\n#D420\tS_OK\n192\t7\n"
		},
	}, BridgeConfig{})

	res, err := b.ReadValues(context.Background(), []string{"TEMPERATURE_OUTSIDE", "HOLIDAY_ENABLED"})
	if err != nil {
		t.Fatal(err)
	}
	if r := res["TEMPERATURE_OUTSIDE"]; r.Err != nil || r.Value != 21.0 {
		t.Errorf("sibling property affected: %+v", r)
	}
	if r := res["HOLIDAY_ENABLED"]; !errors.Is(r.Err, ErrInvalidValue) || r.Value != nil {
		t.Errorf("expected inline decode error, got %+v", r)
	}
}

func TestTranslatedBitmask(t *testing.T) {
	b, _ := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string {
			// bits 0 and 2 set
			return "#I52\tS_OK\n192\t5\n"
		},
	}, BridgeConfig{Language: "en"})

	res, err := b.ReadValue(context.Background(), "ALARM_BITS")
	if err != nil {
		t.Fatal(err)
	}
	want := "low pressure, motor protection compressor"
	if res.Value != want {
		t.Errorf("got %q, want %q", res.Value, want)
	}
}

func TestTranslateSkipsNonBitmaskValue(t *testing.T) {
	// a translate-flagged descriptor whose codec yields something other than
	// a bitmask must return the raw value, not crash reading it
	Tags["ALARM_WORD_RAW"] = &TagData{Tags: []string{"I52"}, Translate: true, Codec: intCodec{}}
	t.Cleanup(func() { delete(Tags, "ALARM_WORD_RAW") })

	b, _ := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string {
			return "#I52\tS_OK\n192\t5\n"
		},
	}, BridgeConfig{Language: "en"})

	res, err := b.ReadValue(context.Background(), "ALARM_WORD_RAW")
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != 5 || res.Status != StatusOK {
		t.Errorf("got %+v, want raw 5", res)
	}
}

func TestMultiRegisterDeduplication(t *testing.T) {
	var requested []string
	b, f := newTestBridge(t, &fakeController{
		read: func(call int, r *http.Request) string {
			n, _ := strconv.Atoi(r.URL.Query().Get("n"))
			for i := 1; i <= n; i++ {
				requested = append(requested, r.URL.Query().Get("t"+strconv.Itoa(i)))
			}
			return okBody(r, func(string) string { return "1" })
		},
	}, BridgeConfig{})

	// both properties share register I51
	_, err := b.ReadValues(context.Background(), []string{"STATE_SOURCEPUMP", "STATE_COMPRESSOR"})
	if err != nil {
		t.Fatal(err)
	}
	if f.readCalls != 1 || len(requested) != 1 || requested[0] != "I51" {
		t.Errorf("expected a single deduplicated request for I51, got %v", requested)
	}
}

func TestWriteEcho(t *testing.T) {
	b, f := newTestBridge(t, &fakeController{
		write: func(call int, r *http.Request) string {
			if got := r.URL.Query().Get("t1"); got != "A38" {
				t.Errorf("t1=%v, want A38", got)
			}
			if got := r.URL.Query().Get("v1"); got != "215" {
				t.Errorf("v1=%v, want 215", got)
			}
			return "#A38\tS_OK\n192\t215\n"
		},
	}, BridgeConfig{})

	res, err := b.WriteValue(context.Background(), "TEMPERATURE_WATER_SETPOINT", 21.5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != 21.5 || res.Status != StatusOK || res.Mismatch {
		t.Errorf("got %+v", res)
	}
	if f.writeCalls != 1 {
		t.Errorf("got %d write calls, want 1", f.writeCalls)
	}
}

func TestWriteEchoMismatch(t *testing.T) {
	echo := func(call int, r *http.Request) string {
		return "#A38\tS_OK\n192\t216\n"
	}

	b, _ := newTestBridge(t, &fakeController{write: echo}, BridgeConfig{})
	res, err := b.WriteValue(context.Background(), "TEMPERATURE_WATER_SETPOINT", 21.5)
	if err != nil {
		t.Fatal(err)
	}
	// read-after-write is authoritative
	if res.Value != 21.6 || !res.Mismatch {
		t.Errorf("got %+v, want echoed 21.6 with Mismatch", res)
	}

	strict, _ := newTestBridge(t, &fakeController{write: echo}, BridgeConfig{StrictWriteCheck: true})
	res, err = strict.WriteValue(context.Background(), "TEMPERATURE_WATER_SETPOINT", 21.5)
	if err == nil {
		t.Fatal("strict bridge should surface the mismatch")
	}
	if res.Value != 21.6 || !res.Mismatch {
		t.Errorf("got %+v", res)
	}
}

func TestWriteNotWriteable(t *testing.T) {
	b, f := newTestBridge(t, &fakeController{}, BridgeConfig{})
	_, err := b.WriteValue(context.Background(), "TEMPERATURE_OUTSIDE", 20.0)
	if !errors.Is(err, ErrNotWriteable) {
		t.Fatalf("expected ErrNotWriteable, got %v", err)
	}
	if f.readCalls+f.writeCalls+f.loginCalls != 0 {
		t.Error("read-only precondition must fail before any network call")
	}
}

func TestWriteMultiRegisterComposite(t *testing.T) {
	got := map[string]string{}
	b, _ := newTestBridge(t, &fakeController{
		write: func(call int, r *http.Request) string {
			n, _ := strconv.Atoi(r.URL.Query().Get("n"))
			for i := 1; i <= n; i++ {
				got[r.URL.Query().Get("t"+strconv.Itoa(i))] = r.URL.Query().Get("v" + strconv.Itoa(i))
			}
			return okBody(r, func(tag string) string { return got[tag] })
		},
	}, BridgeConfig{})

	res, err := b.WriteValue(context.Background(), "SCHEDULE_WATER_DISINFECTION_START_TIME",
		TimeOfDay{Hour: 3, Minute: 45})
	if err != nil {
		t.Fatal(err)
	}
	if got["I505"] != "3" || got["I506"] != "45" {
		t.Errorf("outbound registers: %v", got)
	}
	if res.Value.(TimeOfDay).String() != "03:45" {
		t.Errorf("echoed value: %+v", res)
	}
}

func TestWriteDatetimeEchoGranularity(t *testing.T) {
	got := map[string]string{}
	b, _ := newTestBridge(t, &fakeController{
		write: func(call int, r *http.Request) string {
			n, _ := strconv.Atoi(r.URL.Query().Get("n"))
			for i := 1; i <= n; i++ {
				got[r.URL.Query().Get("t"+strconv.Itoa(i))] = r.URL.Query().Get("v" + strconv.Itoa(i))
			}
			return okBody(r, func(tag string) string { return got[tag] })
		},
	}, BridgeConfig{StrictWriteCheck: true})

	// seconds and nanoseconds never reach the wire; the minute-granular echo
	// must not count as a mismatch
	value := time.Date(2025, time.March, 10, 8, 15, 42, 123456789, time.Local)
	res, err := b.WriteValue(context.Background(), "HOLIDAY_START_TIME", value)
	if err != nil {
		t.Fatal(err)
	}
	if res.Mismatch {
		t.Errorf("got %+v, want no mismatch", res)
	}
	if got["I1254"] != "8" || got["I1253"] != "15" || got["I1252"] != "10" ||
		got["I1250"] != "25" || got["I1251"] != "3" {
		t.Errorf("outbound registers: %v", got)
	}
	want := time.Date(2025, time.March, 10, 8, 15, 0, 0, time.Local)
	if !res.Value.(time.Time).Equal(want) {
		t.Errorf("echoed value: %v, want %v", res.Value, want)
	}
}

func TestLogoutClearsCookieUnconditionally(t *testing.T) {
	b, _ := newTestBridge(t, &fakeController{}, BridgeConfig{})
	if err := b.Login(context.Background(), "waterkotte", "waterkotte"); err != nil {
		t.Fatal(err)
	}
	if len(b.cookies) == 0 {
		t.Fatal("login did not store a cookie")
	}
	if err := b.Logout(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(b.cookies) != 0 {
		t.Error("logout left the cookie in place")
	}
}

func TestResponseStatusParse(t *testing.T) {
	if _, err := responseStatus("-1\n"); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
	s, err := responseStatus("1\n#S_OK\nIDALToken=530564874")
	if err != nil || s != "S_OK" {
		t.Errorf("got %v, %v", s, err)
	}
}
