package ecotouch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Well-known status sentinels of the controller's cgi interface.
const (
	StatusOK          = "S_OK"
	StatusNeedLogin   = "E_NEED_LOGIN"
	StatusInactive    = "E_INACTIVE"
	StatusInactiveTag = "E_INACTIVETAG"
	StatusNotFound    = "E_NOTFOUND"
)

// The protocol caps the number of tags per readTags/writeTags call.
const maxTagsPerRequest = 75

var (
	// ErrInvalidResponse marks response bodies that do not match the expected
	// status-line grammar.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrTooManyUsers is the controller's concurrent-session capacity limit.
	// A capacity condition, not a credentials problem: back off and retry
	// instead of re-authenticating.
	ErrTooManyUsers = errors.New("too many users")
	// ErrNotWriteable is raised before any network I/O when a write targets a
	// read-only property.
	ErrNotWriteable = errors.New("property is not writeable")
)

// StatusError reports a login rejected for reasons other than capacity.
type StatusError struct {
	Status string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("session error: status %s", e.Status)
}

// BridgeConfig carries the connection settings for one controller.
type BridgeConfig struct {
	// Host is the controller's hostname or IP.
	Host string
	// TagsPerRequest is the read/write chunk size, clamped to the protocol
	// maximum of 75. Zero selects the default of 10.
	TagsPerRequest int
	// Language selects the label set for translated bitmask properties,
	// falling back to "en".
	Language string
	// StrictWriteCheck turns a write echo mismatch into an error instead of
	// only recording it on the Result.
	StrictWriteCheck bool
	// Timeout bounds each HTTP call. Zero selects 15s.
	Timeout time.Duration
}

// Bridge is the stateful client for one EcoTouch controller. The only shared
// mutable state between calls is the session cookie and the credentials used
// to refresh it; both are mutex-guarded so concurrent calls never observe a
// half-updated session.
type Bridge struct {
	host             string
	tagsPerRequest   int
	strictWriteCheck bool
	langMap          map[string][]string

	http *http.Client

	mu       sync.Mutex // guards cookies, username, password, lastNonce
	cookies  []*http.Cookie
	username string
	password string

	lastNonce int64

	loginMu sync.Mutex // serializes re-login, at most one in flight
}

// NewBridge creates a Bridge for the given controller. No network I/O happens
// until Login or the first read/write call.
func NewBridge(cfg BridgeConfig) *Bridge {
	chunk := cfg.TagsPerRequest
	if chunk <= 0 {
		chunk = 10
	}
	if chunk > maxTagsPerRequest {
		chunk = maxTagsPerRequest
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Bridge{
		host:             cfg.Host,
		tagsPerRequest:   chunk,
		strictWriteCheck: cfg.StrictWriteCheck,
		langMap:          labelTable(cfg.Language),
		http:             &http.Client{Timeout: timeout},
		username:         "waterkotte",
		password:         "waterkotte",
	}
}

var statusLine = regexp.MustCompile(`(?m)^#([A-Z_]+)`)

func responseStatus(body string) (string, error) {
	m := statusLine.FindStringSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("%w: status could not be parsed", ErrInvalidResponse)
	}
	return m[1], nil
}

// Login authenticates against the controller and stores the session cookie.
// The credentials are remembered for transparent re-login on session expiry.
func (b *Bridge) Login(ctx context.Context, username, password string) error {
	b.loginMu.Lock()
	defer b.loginMu.Unlock()
	return b.login(ctx, username, password)
}

func (b *Bridge) login(ctx context.Context, username, password string) error {
	log.Infof("login to waterkotte host %v", b.host)
	params := url.Values{}
	params.Set("username", username)
	params.Set("password", password)

	body, cookies, err := b.call(ctx, "/cgi/login", params)
	if err != nil {
		return err
	}
	status, err := responseStatus(body)
	if err != nil {
		return err
	}
	if status != StatusOK {
		if strings.HasPrefix(status, "E_TOO_MANY_USERS") {
			return ErrTooManyUsers
		}
		return StatusError{Status: status}
	}

	b.mu.Lock()
	b.username = username
	b.password = password
	b.cookies = cookies
	b.mu.Unlock()
	return nil
}

// relogin refreshes the session with the last known credentials. It never
// reuses a stale cookie.
func (b *Bridge) relogin(ctx context.Context) error {
	b.loginMu.Lock()
	defer b.loginMu.Unlock()
	b.mu.Lock()
	username, password := b.username, b.password
	b.cookies = nil
	b.mu.Unlock()
	return b.login(ctx, username, password)
}

// Logout is best-effort: the cookie is cleared even when the call fails.
func (b *Bridge) Logout(ctx context.Context) error {
	_, _, err := b.call(ctx, "/cgi/logout", url.Values{})
	b.mu.Lock()
	b.cookies = nil
	b.mu.Unlock()
	if err != nil {
		log.Warnf("logout from %v failed: %v", b.host, err)
	}
	return err
}

// call issues one GET against the controller and returns the body text plus
// any cookies the controller set.
func (b *Bridge) call(ctx context.Context, path string, params url.Values) (string, []*http.Cookie, error) {
	u := fmt.Sprintf("http://%s%s?%s", b.host, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", nil, err
	}

	b.mu.Lock()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	b.mu.Unlock()

	resp, err := b.http.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("%w: http status %d from %s", ErrInvalidResponse, resp.StatusCode, path)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}
	log.Debugf("GET %s -> %d bytes", path, len(data))
	return string(data), resp.Cookies(), nil
}

// nonce returns the cache-busting request parameter: a millisecond timestamp,
// strictly monotonic within the process.
func (b *Bridge) nonce() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := time.Now().UnixMilli()
	if n <= b.lastNonce {
		n = b.lastNonce + 1
	}
	b.lastNonce = n
	return strconv.FormatInt(n, 10)
}

// rawTag is one register's slot of a parsed response.
type rawTag struct {
	status   string
	value    string
	hasValue bool
}

var valueLine = regexp.MustCompile(`^\d+\t(-?\d+)`)

// parseTagBlocks splits the line-oriented response body into per-register
// blocks: a "#<code>\t<STATUS>" line optionally followed by an
// "<index>\t<value>" line.
func parseTagBlocks(body string) map[string]rawTag {
	blocks := make(map[string]rawTag)
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line[1:], "\t", 2)
		if len(fields) != 2 || !validTag(fields[0]) {
			continue
		}
		blk := rawTag{status: fields[1]}
		if i+1 < len(lines) {
			if m := valueLine.FindStringSubmatch(lines[i+1]); m != nil {
				blk.value = m[1]
				blk.hasValue = true
			}
		}
		blocks[fields[0]] = blk
	}
	return blocks
}

// collectTags records the (status, value) pair of each requested register.
// Registers missing from the response are soft misses, not call failures.
func collectTags(blocks map[string]rawTag, tags []string, out map[string]rawTag) {
	for _, tag := range tags {
		blk, ok := blocks[tag]
		switch {
		case ok && blk.hasValue:
			out[tag] = blk
		case ok && blk.status == StatusInactiveTag:
			out[tag] = rawTag{status: StatusInactive}
		default:
			log.Warnf("tag %v not found in response", tag)
			out[tag] = rawTag{status: StatusNotFound}
		}
	}
}

// readTags fetches the raw (status, value) pairs for the given registers,
// splitting the request into chunks of at most tagsPerRequest.
func (b *Bridge) readTags(ctx context.Context, tags []string) (map[string]rawTag, error) {
	out := make(map[string]rawTag, len(tags))
	for start := 0; start < len(tags); start += b.tagsPerRequest {
		end := start + b.tagsPerRequest
		if end > len(tags) {
			end = len(tags)
		}
		if err := b.readChunk(ctx, tags[start:end], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (b *Bridge) readChunk(ctx context.Context, tags []string, out map[string]rawTag) error {
	relogged := false
	for {
		params := url.Values{}
		params.Set("n", strconv.Itoa(len(tags)))
		for i, tag := range tags {
			params.Set("t"+strconv.Itoa(i+1), tag)
		}
		params.Set("_", b.nonce())

		body, _, err := b.call(ctx, "/cgi/readTags", params)
		if err != nil {
			return err
		}
		switch {
		case strings.HasPrefix(body, "#"+StatusNeedLogin):
			if relogged {
				return StatusError{Status: StatusNeedLogin}
			}
			if err := b.relogin(ctx); err != nil {
				return err
			}
			relogged = true
			continue
		case strings.HasPrefix(body, "#E_TOO_MANY_USERS"):
			return ErrTooManyUsers
		}
		collectTags(parseTagBlocks(body), tags, out)
		return nil
	}
}

// writeTags writes one raw value per register and returns the controller's
// echoed post-write state. Chunking and re-login rules match readTags.
func (b *Bridge) writeTags(ctx context.Context, tags, values []string) (map[string]rawTag, error) {
	out := make(map[string]rawTag, len(tags))
	for start := 0; start < len(tags); start += b.tagsPerRequest {
		end := start + b.tagsPerRequest
		if end > len(tags) {
			end = len(tags)
		}
		if err := b.writeChunk(ctx, tags[start:end], values[start:end], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (b *Bridge) writeChunk(ctx context.Context, tags, values []string, out map[string]rawTag) error {
	relogged := false
	for {
		params := url.Values{}
		params.Set("n", strconv.Itoa(len(tags)))
		params.Set("returnValue", "true")
		for i, tag := range tags {
			params.Set("t"+strconv.Itoa(i+1), tag)
			params.Set("v"+strconv.Itoa(i+1), values[i])
		}
		params.Set("rnd", b.nonce())

		body, _, err := b.call(ctx, "/cgi/writeTags", params)
		if err != nil {
			return err
		}
		switch {
		case strings.HasPrefix(body, "#"+StatusNeedLogin):
			if relogged {
				return StatusError{Status: StatusNeedLogin}
			}
			if err := b.relogin(ctx); err != nil {
				return err
			}
			relogged = true
			continue
		case strings.HasPrefix(body, "#E_TOO_MANY_USERS"):
			return ErrTooManyUsers
		}
		collectTags(parseTagBlocks(body), tags, out)
		return nil
	}
}

// ReadValue reads a single property.
func (b *Bridge) ReadValue(ctx context.Context, name string) (Result, error) {
	res, err := b.ReadValues(ctx, []string{name})
	if err != nil {
		return Result{}, err
	}
	return res[name], nil
}

// ReadValues reads a set of properties in as few controller calls as the
// chunk size allows. Network, session and capacity failures abort the whole
// call; per-register misses and decode failures are reported inline on the
// affected property's Result.
func (b *Bridge) ReadValues(ctx context.Context, names []string) (map[string]Result, error) {
	descriptors := make(map[string]*TagData, len(names))
	var order []string
	seen := make(map[string]bool)
	for _, name := range names {
		td, err := TagByName(name)
		if err != nil {
			return nil, err
		}
		descriptors[name] = td
		for _, tag := range td.Tags {
			if !seen[tag] {
				seen[tag] = true
				order = append(order, tag)
			}
		}
	}

	raw, err := b.readTags(ctx, order)
	if err != nil {
		return nil, err
	}

	results := make(map[string]Result, len(names))
	for name, td := range descriptors {
		results[name] = b.decodeResult(name, td, raw)
	}
	return results, nil
}

func (b *Bridge) decodeResult(name string, td *TagData, raw map[string]rawTag) Result {
	status := raw[td.Tags[0]].status
	vals := make([]string, len(td.Tags))
	for i, tag := range td.Tags {
		rt := raw[tag]
		if !rt.hasValue {
			// Soft per-register miss: value stays absent, the caller decides
			// materiality from the status.
			return Result{Status: status}
		}
		vals[i] = rt.value
	}

	v, err := td.codec().Decode(td, vals)
	if err != nil {
		log.Warnf("decode of %v failed: %v (raw %v)", name, err, vals)
		return Result{Status: status, Err: err}
	}
	if td.Translate {
		// Only bitmask-decoded values render as labels. A descriptor carrying
		// Translate with some other codec keeps the raw value.
		if set, ok := v.([]bool); ok {
			if labels, ok := b.langMap[td.Tags[0]]; ok {
				v = renderLabels(set, labels)
			}
		}
	}
	return Result{Value: v, Status: status}
}

// renderLabels joins the labels of the set bits with ", ". Empty when none
// are set or labeled.
func renderLabels(set []bool, labels []string) string {
	var parts []string
	for i, on := range set {
		if on && i < len(labels) {
			parts = append(parts, labels[i])
		}
	}
	return strings.Join(parts, ", ")
}

// WriteValue writes one property and returns the device-echoed post-write
// state. Read-after-write is authoritative: on an echo mismatch the Result
// carries the echoed value with Mismatch set, and an error only when the
// bridge was configured with StrictWriteCheck.
func (b *Bridge) WriteValue(ctx context.Context, name string, value any) (Result, error) {
	td, err := TagByName(name)
	if err != nil {
		return Result{}, err
	}
	if !td.Writeable {
		return Result{}, fmt.Errorf("%w: %v", ErrNotWriteable, name)
	}

	acc := make(map[string]string, len(td.Tags))
	if err := td.codec().Encode(td, value, acc); err != nil {
		return Result{}, err
	}
	tags := make([]string, 0, len(acc))
	values := make([]string, 0, len(acc))
	for _, tag := range td.Tags {
		raw, ok := acc[tag]
		if !ok {
			return Result{}, fmt.Errorf("encode of %v left register %v unset: %w", name, tag, ErrInvalidValue)
		}
		tags = append(tags, tag)
		values = append(values, raw)
	}

	raw, err := b.writeTags(ctx, tags, values)
	if err != nil {
		return Result{}, err
	}

	res := b.decodeResult(name, td, raw)
	if res.Err == nil && res.Status == StatusOK && !echoMatches(td, res.Value, tags, values) {
		log.Errorf("write of %v: echoed value %v does not match requested %v", name, res.Value, value)
		res.Mismatch = true
		if b.strictWriteCheck {
			return res, fmt.Errorf("write echo mismatch for %v: got %v, want %v", name, res.Value, value)
		}
	}
	return res, nil
}

// echoMatches compares the device-echoed value against the outbound write at
// the raw register level. Re-encoding the echoed value applies the codec's
// own granularity, so precision the wire cannot carry (sub-minute time
// fields) does not count as a mismatch.
func echoMatches(td *TagData, echoed any, tags, values []string) bool {
	acc := make(map[string]string, len(tags))
	if err := td.codec().Encode(td, echoed, acc); err != nil {
		return false
	}
	for i, tag := range tags {
		if acc[tag] != values[i] {
			return false
		}
	}
	return true
}
