package callsite

import (
	"go/ast"
	"go/parser"
	"go/token"
	"sync"

	"github.com/liuxd6825/whosetit/internal/fsext"
)

// lineIndex maps a source line to the columns of the selector calls on it,
// keyed by the selected method name. Only the leftmost call of each name is
// kept. The anyCall key holds the leftmost call expression of any shape.
type lineIndex map[int]map[string]int

// anyCall can't clash with a method name.
const anyCall = ""

// Resolver finds the column of a method call in Go source files read from a
// filesystem. Parsed files are cached, including the ones that failed.
type Resolver struct {
	fs fsext.Fs

	mu    sync.Mutex
	files map[string]lineIndex
}

// NewResolver returns a resolver reading sources from fs.
func NewResolver(fs fsext.Fs) *Resolver {
	return &Resolver{fs: fs, files: make(map[string]lineIndex)}
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// DefaultResolver returns the process-wide resolver that reads sources from
// the OS filesystem. A source is read from disk once.
func DefaultResolver() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(fsext.NewCacheOnReadFs(fsext.NewOsFs(), 0))
	})
	return defaultResolver
}

// Column returns the 1-based column of the first call to method on the given
// line of file. A line calling method through a value (f := p.Set; f(...))
// has no selector call to method, so the leftmost call on the line is used
// instead. It is 0 if the source cannot be read or the line has no call.
func (r *Resolver) Column(file string, line int, method string) int {
	idx := r.index(file)
	if idx == nil {
		return 0
	}
	cols := idx[line]
	if c, ok := cols[method]; ok {
		return c
	}
	return cols[anyCall]
}

// Resolve fills in site.Column for a call to method.
func (r *Resolver) Resolve(site Site, method string) Site {
	site.Column = r.Column(site.File, site.Line, method)
	return site
}

func (r *Resolver) index(file string) lineIndex {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.files[file]; ok {
		return idx
	}
	idx := r.parse(file)
	r.files[file] = idx
	return idx
}

func (r *Resolver) parse(file string) lineIndex {
	src, err := fsext.ReadFile(r.fs, file)
	if err != nil {
		return nil
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, src, parser.SkipObjectResolution)
	if err != nil {
		return nil
	}

	idx := make(lineIndex)
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		idx.add(fset.Position(call.Pos()), anyCall)
		if sel, ok := call.Fun.(*ast.SelectorExpr); ok {
			idx.add(fset.Position(sel.Sel.Pos()), sel.Sel.Name)
		}
		return true
	})
	return idx
}

func (idx lineIndex) add(pos token.Position, name string) {
	cols, ok := idx[pos.Line]
	if !ok {
		cols = make(map[string]int)
		idx[pos.Line] = cols
	}
	if c, seen := cols[name]; !seen || pos.Column < c {
		cols[name] = pos.Column
	}
}
