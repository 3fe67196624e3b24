package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Entry represents a log event with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Name    string
	Message string
	Fields  []Field
	Caller  CallerInfo
	Exc     *Traceback
}

// CallerInfo identifies the call site a log event originated from
type CallerInfo struct {
	File     string
	Module   string
	Function string
	Line     int
	Defined  bool
}

// NewCallerInfo builds a CallerInfo from a file path, function name
// and line number, deriving Module from the file's base name.
func NewCallerInfo(file, function string, line int) CallerInfo {
	return CallerInfo{
		File:     file,
		Module:   moduleName(file),
		Function: shortFuncName(function),
		Line:     line,
		Defined:  true,
	}
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Name = ""
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	e.Exc = nil
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.Name = ""
	e.Caller = CallerInfo{}
	e.Exc = nil
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return NewCallerInfo(file, funcName, line)
}

// moduleName derives the module identifier from a source file path:
// the base name without the .go suffix.
func moduleName(file string) string {
	if file == "" {
		return ""
	}
	return strings.TrimSuffix(filepath.Base(file), ".go")
}

// shortFuncName strips the package path and package qualifier from a
// fully qualified function name, keeping receiver types intact
// ("github.com/x/y.(*T).Method" becomes "(*T).Method").
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
