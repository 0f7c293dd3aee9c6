package signature

import (
	"path"
	"reflect"
	"runtime"
	"strings"

	"github.com/fatih/camelcase"
)

// Kebab converts a Go identifier to its command-line spelling:
// "OutputFile" becomes "output-file".
func Kebab(ident string) string {
	return strings.ToLower(strings.Join(camelcase.Split(ident), "-"))
}

// FuncName reports the declared name of fn, kebab-cased, or "" when the
// runtime cannot recover a usable name (anonymous functions, method
// values). Callers are expected to supply an explicit name in that
// case.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}

	// The runtime reports a package path-qualified name such as
	// "github.com/acme/tool/cmd.RunServer" or "main.main.func1".
	name := path.Base(rf.Name())
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	// Method values are reported with an "-fm" suffix.
	name = strings.TrimSuffix(name, "-fm")
	if name == "" || isAnonymous(name) {
		return ""
	}
	return Kebab(name)
}

// isAnonymous reports runtime-generated closure names like "func1".
func isAnonymous(name string) bool {
	if !strings.HasPrefix(name, "func") {
		return false
	}
	rest := name[len("func"):]
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
