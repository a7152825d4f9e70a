/*
Package wordlist reads dictionary word lists and loads them into pattern
indexes.

A word list is a text file with one word per line, most common words first.
A word may be followed by a blank and an occurrence count:

	the 56271872
	of 33950064
	and 29944184

Carriage returns are ignored, as are blank lines. Word lists for the built-in
languages are looked up by language code, e.g. "en.txt".
*/
package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/cipherkit"
	"github.com/npillmayer/cipherkit/pattern"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
)

// tracer writes to trace with key 'cipherkit.wordlist'
func tracer() tracing.Trace {
	return tracing.Select("cipherkit.wordlist")
}

// Reader streams entries of a word list.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a word list reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(reader)}
}

// Next returns the next word and its count, 0 if the line has none or the
// count is not a number. It returns io.EOF when exhausted.
func (r *Reader) Next() (string, int, error) {
	for r.scanner.Scan() {
		r.line++
		fields := strings.Fields(strings.ReplaceAll(r.scanner.Text(), "\r", " "))
		if len(fields) == 0 {
			continue
		}
		count := 0
		if len(fields) > 1 {
			count, _ = strconv.Atoi(fields[1])
		}
		return fields[0], count, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", 0, fmt.Errorf("word list line %d: %w", r.line, err)
	}
	return "", 0, io.EOF
}

// LoadIndex reads a word list into a new pattern index for lang.
func LoadIndex(lang *cipherkit.Language, reader io.Reader) (*pattern.Index, error) {
	ix := pattern.NewIndex(lang)
	if err := ix.Load(NewReader(reader)); err != nil {
		return nil, err
	}
	return ix, nil
}

// FileName returns the name of the word list file of a language.
func FileName(lang *cipherkit.Language) string {
	return lang.Code + ".txt"
}

// LoadAll loads the word lists of several languages from fsys concurrently.
// Languages without a word list file are skipped. The first error cancels
// the remaining loads.
func LoadAll(ctx context.Context, fsys fs.FS, langs []*cipherkit.Language) (map[string]*pattern.Index, error) {
	var mu sync.Mutex
	indexes := make(map[string]*pattern.Index, len(langs))
	g, ctx := errgroup.WithContext(ctx)
	for _, lang := range langs {
		if lang == nil {
			continue
		}
		lang := lang
		g.Go(func() error {
			ix, err := loadFile(ctx, fsys, lang)
			if err != nil || ix == nil {
				return err
			}
			mu.Lock()
			indexes[lang.Code] = ix
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded word lists for %d of %d languages", len(indexes), len(langs))
	return indexes, nil
}

func loadFile(ctx context.Context, fsys fs.FS, lang *cipherkit.Language) (*pattern.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := fsys.Open(FileName(lang))
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Debugf("no word list for %s", lang)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("word list for %s: %w", lang.Code, err)
	}
	defer f.Close()
	ix := pattern.NewIndex(lang)
	if err := ix.Load(&cancelReader{ctx: ctx, r: NewReader(f)}); err != nil {
		return nil, fmt.Errorf("word list for %s: %w", lang.Code, err)
	}
	return ix, nil
}

// cancelReader stops a word list at cancellation of ctx.
type cancelReader struct {
	ctx context.Context
	r   *Reader
}

func (cr *cancelReader) Next() (string, int, error) {
	if err := cr.ctx.Err(); err != nil {
		return "", 0, err
	}
	return cr.r.Next()
}
