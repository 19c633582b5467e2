package locale

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// DefaultLocaleDir is the X11 locale directory if XLOCALEDIR is not set.
const DefaultLocaleDir = "/usr/share/X11/locale"

// Resolver resolves locale names and the paths of Compose files.
// Environment variables are read through Getenv, which defaults to os.Getenv.
// The index files of the locale directory are read through ReadFile, which
// defaults to os.ReadFile. The zero value is ready to use.
type Resolver struct {
	Getenv   func(string) string
	ReadFile func(string) ([]byte, error)
}

// Default returns a resolver for the environment of the process.
func Default() *Resolver {
	return &Resolver{Getenv: os.Getenv, ReadFile: os.ReadFile}
}

func (r *Resolver) getenv(key string) string {
	if r == nil || r.Getenv == nil {
		return os.Getenv(key)
	}
	return r.Getenv(key)
}

func (r *Resolver) readFile(path string) ([]byte, error) {
	if r == nil || r.ReadFile == nil {
		return os.ReadFile(path)
	}
	return r.ReadFile(path)
}

// HomeDir returns the user's home directory, if HOME is set.
func (r *Resolver) HomeDir() (string, bool) {
	home := r.getenv("HOME")
	return home, home != ""
}

// LocaleDir returns the X11 locale directory.
func (r *Resolver) LocaleDir() string {
	if dir := r.getenv("XLOCALEDIR"); dir != "" {
		return dir
	}
	return DefaultLocaleDir
}

// Resolve maps a locale name to its canonical name, as listed in
// "locale.alias". Names without an alias are returned unchanged.
func (r *Resolver) Resolve(loc string) string {
	alias, ok := r.lookup(filepath.Join(r.LocaleDir(), "locale.alias"), loc, leftToRight)
	if !ok {
		return loc
	}
	T().Debugf("locale %q is an alias for %q", loc, alias)
	return alias
}

// ComposeFile returns the path of the system Compose file for a (resolved)
// locale. Locales "C" and "POSIX" use the Compose file of en_US.UTF-8.
func (r *Resolver) ComposeFile(loc string) (string, bool) {
	if loc == "C" || loc == "POSIX" {
		loc = "en_US.UTF-8"
	}
	dir := r.LocaleDir()
	file, ok := r.lookup(filepath.Join(dir, "compose.dir"), loc, rightToLeft)
	if !ok {
		return "", false
	}
	if filepath.IsAbs(file) {
		return file, true
	}
	return filepath.Join(dir, file), true
}

// Candidates returns the Compose files to try for a locale, in order of
// precedence.
func (r *Resolver) Candidates(loc string) []string {
	var paths []string
	if path := r.getenv("XCOMPOSEFILE"); path != "" {
		paths = append(paths, path)
	}
	home, hasHome := r.HomeDir()
	if xdg := r.getenv("XDG_CONFIG_HOME"); filepath.IsAbs(xdg) {
		paths = append(paths, filepath.Join(xdg, "XCompose"))
	} else if hasHome {
		paths = append(paths, filepath.Join(home, ".config", "XCompose"))
	}
	if hasHome {
		paths = append(paths, filepath.Join(home, ".XCompose"))
	}
	if path, ok := r.ComposeFile(loc); ok {
		paths = append(paths, path)
	}
	return paths
}

// Detect returns the locale of the user's environment.
func (r *Resolver) Detect() string {
	for _, key := range [...]string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if loc := r.getenv(key); loc != "" {
			return loc
		}
	}
	ietf, err := jj.DetectIETF()
	if err != nil {
		T().Infof("cannot detect user locale: %v; using C", err)
		return "C"
	}
	T().Infof("detected user locale %v", ietf)
	return FromIETF(ietf)
}

// FromIETF converts an IETF language tag like "en-US" to a POSIX locale
// name like "en_US.UTF-8". Missing regions are filled in with the most
// likely one. Malformed tags result in "C".
func FromIETF(ietf string) string {
	tag, err := language.Parse(ietf)
	if err != nil {
		return "C"
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "C"
	}
	region, conf := tag.Region()
	if conf == language.No {
		return base.String() + ".UTF-8"
	}
	return base.String() + "_" + region.String() + ".UTF-8"
}

// --- Locale index files ----------------------------------------------------

type direction int8

const (
	leftToRight direction = iota // key in left column
	rightToLeft                  // key in right column
)

// lookup scans a two-column X11 locale index file. Lines look like
//
//    en_US.UTF-8/Compose:    en_US.UTF-8
//
// Comment lines start with '#'. The colon after the left column is optional.
func (r *Resolver) lookup(path string, key string, dir direction) (string, bool) {
	data, err := r.readFile(path)
	if err != nil {
		T().Debugf("cannot read locale index: %v", err)
		return "", false
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		left, right := strings.TrimSuffix(fields[0], ":"), fields[1]
		if dir == leftToRight && left == key {
			return right, true
		} else if dir == rightToLeft && right == key {
			return left, true
		}
	}
	if err := sc.Err(); err != nil {
		T().Errorf("reading %s: %v", path, err)
	}
	return "", false
}
