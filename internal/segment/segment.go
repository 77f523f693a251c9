// Package segment fills {name} placeholders in element content with live
// values such as the working directory or the tmux session name.
package segment

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

const (
	Cwd     = "cwd"
	User    = "user"
	Host    = "host"
	Time    = "time"
	Session = "session"
	Window  = "window"
)

// TimeLayout is the format of the time segment.
const TimeLayout = "15:04:05"

// Values maps segment names to their current text.
type Values map[string]string

// Expand replaces {name} with the value of name. Braces around unknown names
// are left as they are.
func (v Values) Expand(content string) string {
	if len(v) == 0 || !strings.Contains(content, "{") {
		return content
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(content, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(content[open:], '}')
		if end < 0 {
			break
		}
		name := content[open+1 : open+end]
		value, ok := v[name]
		if !ok {
			b.WriteString(content[:open+1])
			content = content[open+1:]
			continue
		}
		b.WriteString(content[:open])
		b.WriteString(value)
		content = content[open+end+1:]
	}
	b.WriteString(content)
	return b.String()
}

// Static collects the segments that do not change while the process runs.
func Static() Values {
	v := Values{}
	if wd, err := os.Getwd(); err == nil {
		v[Cwd] = ShortenHome(wd, os.Getenv("HOME"))
	}
	if u, err := user.Current(); err == nil {
		v[User] = u.Username
	}
	if h, err := os.Hostname(); err == nil {
		if i := strings.IndexByte(h, '.'); i > 0 {
			h = h[:i]
		}
		v[Host] = h
	}
	return v
}

// Clock returns the time segment for now.
func Clock(now time.Time) Values {
	return Values{Time: now.Format(TimeLayout)}
}

// ShortenHome replaces a leading home directory with "~".
func ShortenHome(path, home string) string {
	if home == "" {
		return path
	}
	home = filepath.Clean(home)
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return path
}
