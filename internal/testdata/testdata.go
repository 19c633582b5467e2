/*
Package testdata locates the Compose fixtures used in tests.

The fixtures mimic an X11 installation: a locale directory with index files
"compose.dir" and "locale.alias" and Compose files for a few locales, and a
home directory with user Compose files.
*/
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// ComposeReader returns a reader for a fixture file, relative to the
// fixture root.
func ComposeReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(ComposePath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// ComposePath returns the path of a fixture file, relative to the fixture
// root.
func ComposePath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "compose", file)
}

// LocaleDir returns the fixture replacement for /usr/share/X11/locale.
func LocaleDir() string {
	return ComposePath("locale")
}

// HomeDir returns the fixture home directory.
func HomeDir() string {
	return ComposePath("home")
}

// Env returns an environment with HOME and XLOCALEDIR set to the fixture
// directories, plus additional variables given as key/value pairs.
func Env(kv ...string) func(string) string {
	env := map[string]string{
		"HOME":       HomeDir(),
		"XLOCALEDIR": LocaleDir(),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		env[kv[i]] = kv[i+1]
	}
	return func(key string) string {
		return env[key]
	}
}
