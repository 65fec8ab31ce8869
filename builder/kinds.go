// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKind indicates ByName was given a topology name it does not know.
var ErrUnknownKind = errors.New("builder: unknown topology")

// Params carries the size arguments ByName forwards to a constructor.
// Cols is used by "grid" only; P by "random" only.
type Params struct {
	N    int
	Cols int
	P    float64
}

var kinds = map[string]func(Params) Constructor{
	"complete": func(p Params) Constructor { return Complete(p.N) },
	"cycle":    func(p Params) Constructor { return Cycle(p.N) },
	"path":     func(p Params) Constructor { return Path(p.N) },
	"star":     func(p Params) Constructor { return Star(p.N) },
	"wheel":    func(p Params) Constructor { return Wheel(p.N) },
	"grid":     func(p Params) Constructor { return Grid(p.N, p.Cols) },
	"random":   func(p Params) Constructor { return RandomSparse(p.N, p.P) },
}

// Kinds lists the names accepted by ByName in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ByName returns the Constructor registered under kind (case-insensitive).
func ByName(kind string, p Params) (Constructor, error) {
	mk, ok := kinds[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, kind, strings.Join(Kinds(), ", "))
	}

	return mk(p), nil
}
