// Package native implements internal/capability against the real
// operating system: the filesystem, net/http for URL reads, os/exec for
// shell commands, math/rand for randomness, and time for the clock.
//
// Grounded on core.py's main()/execute_file (encoding override via an
// environment variable, stdin reads) and spec §6's capability minimum
// set; there is no teacher package for this since DWScript has no
// capability-trait seam (its host interop is ad hoc os/bufio calls
// scattered through cmd/dwscript). The seam itself is this expansion's
// own design (see internal/capability's doc comment).
package native

import (
	"bufio"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/exec"
	"time"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// EncodingEnvVar is the PYTHONIOENCODING-style override spec §6 names:
// "override the default encoding for stdin and for reads of files
// without an explicit encoding".
const EncodingEnvVar = "BIRDIE_ENCODING"

// IO is the real-OS implementation of capability.IO.
type IO struct {
	stdin         *bufio.Reader
	stdout        io.Writer
	defaultEncode string
}

// New builds an IO backed by os.Stdin/os.Stdout. defaultEncoding, when
// empty, is resolved from BIRDIE_ENCODING and falls back to "utf-8".
func New(defaultEncoding string) *IO {
	if defaultEncoding == "" {
		if env := os.Getenv(EncodingEnvVar); env != "" {
			defaultEncoding = env
		} else {
			defaultEncoding = "utf-8"
		}
	}
	return &IO{
		stdin:         bufio.NewReader(os.Stdin),
		stdout:        os.Stdout,
		defaultEncode: defaultEncoding,
	}
}

func (n *IO) resolve(encoding string) string {
	if encoding == "" {
		return n.defaultEncode
	}
	return encoding
}

func (n *IO) decode(raw []byte, encoding string) (string, error) {
	encoding = n.resolve(encoding)
	if encoding == "utf-8" || encoding == "utf8" {
		return string(raw), nil
	}
	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil || enc == nil {
		return string(raw), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (n *IO) encode(s, encoding string) ([]byte, error) {
	encoding = n.resolve(encoding)
	if encoding == "utf-8" || encoding == "utf8" {
		return []byte(s), nil
	}
	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil || enc == nil {
		return []byte(s), nil
	}
	return transform.Bytes(enc.NewEncoder(), []byte(s))
}

func (n *IO) ReadFile(path, encoding string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return n.decode(raw, encoding)
}

func (n *IO) WriteFile(path, encoding, data string) error {
	raw, err := n.encode(data, encoding)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func (n *IO) AppendFile(path, encoding, data string) error {
	raw, err := n.encode(data, encoding)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(raw)
	return err
}

func (n *IO) ReadURL(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", errors.New(resp.Status)
	}
	return string(body), nil
}

func (n *IO) RunCommand(cmdline string) (string, int, error) {
	cmd := exec.Command("sh", "-c", cmdline)
	out, err := cmd.CombinedOutput()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
			err = nil
		}
	}
	return string(out), code, err
}

func (n *IO) ReadChar() (rune, bool, error) {
	r, _, err := n.stdin.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, err
	}
	return r, true, nil
}

func (n *IO) ReadLine() (string, bool, error) {
	line, err := n.stdin.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line == "" {
				return "", false, nil
			}
			return line, true, nil
		}
		return "", false, err
	}
	return line, true, nil
}

func (n *IO) ReadAll() (string, error) {
	raw, err := io.ReadAll(n.stdin)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (n *IO) ReadUntil(delim byte) (string, bool, error) {
	s, err := n.stdin.ReadString(delim)
	if err != nil {
		if err == io.EOF {
			if s == "" {
				return "", false, nil
			}
			return s, true, nil
		}
		return "", false, err
	}
	if len(s) > 0 && s[len(s)-1] == delim {
		s = s[:len(s)-1]
	}
	return s, true, nil
}

func (n *IO) Print(s string) { io.WriteString(n.stdout, s) }

func (n *IO) Getenv(name string) (string, bool) { return os.LookupEnv(name) }

// Clock is the real wall-clock/monotonic implementation of
// capability.Clock, measuring elapsed time from construction.
type Clock struct {
	start time.Time
}

func NewClock() *Clock { return &Clock{start: time.Now()} }

func (c *Clock) Now() time.Time { return time.Now() }

func (c *Clock) Monotonic() time.Duration { return time.Since(c.start) }

// Random wraps math/rand with a seed entry point (capability.Random).
type Random struct {
	r *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

func (r *Random) Seed(seed int64) { r.r = rand.New(rand.NewSource(seed)) }

func (r *Random) Int63() int64 { return r.r.Int63() }

func (r *Random) Float64() float64 { return r.r.Float64() }

// Foreign is a stub: the embedded foreign-code escape hatch is explicitly
// out of core scope (spec §1), so the native backend reports it as
// unsupported rather than shelling out to an interpreter for another
// language.
type Foreign struct{}

func NewForeign() *Foreign { return &Foreign{} }

func (f *Foreign) Exec(code, globalsID, localsID string, stackMirror []any) ([]any, error) {
	return nil, errors.New("foreign-code execution is not supported by this build")
}
