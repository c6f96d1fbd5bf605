package mapdata

import (
	"fmt"
	"io"

	"github.com/danmuck/mapbin/element"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls how a Codec reads and writes map files.
type Options struct {
	CheckHeader bool
	WriteHeader bool
	// MaxStringBytes bounds any single length-prefixed string and MaxDepth
	// the element nesting on read; 0 uses the wire default.
	MaxStringBytes uint64
	MaxDepth       int
}

func DefaultOptions() Options {
	return Options{CheckHeader: true, WriteHeader: true}
}

// Codec loads and stores typed maps with fixed options.
type Codec struct {
	opts   Options
	logger zerolog.Logger
}

func NewCodec(opts Options, logger zerolog.Logger) *Codec {
	return &Codec{opts: opts, logger: logger.With().Str("component", "mapdata").Logger()}
}

func (c *Codec) Options() Options {
	return c.opts
}

// Load decodes a whole map file from r.
func (c *Codec) Load(r io.Reader) (*Map, error) {
	doc, stats, err := element.ReadDocument(r, element.ReadOptions{
		CheckHeader:    c.opts.CheckHeader,
		MaxStringBytes: c.opts.MaxStringBytes,
		MaxDepth:       c.opts.MaxDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("mapdata: load: %w", err)
	}
	m, repaired, err := decodeDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("mapdata: load %q: %w", doc.Package, err)
	}
	if repaired > 0 {
		c.logger.Warn().
			Str("package", m.Package).
			Int("tiles", repaired).
			Msg("replaced malformed tile ids with empty tiles")
	}
	c.logger.Debug().
		Str("package", m.Package).
		Int("levels", len(m.Levels)).
		Int("strings", stats.Strings).
		Uint64("bytes", stats.Bytes).
		Msg("map loaded")
	return m, nil
}

// Store encodes m to w. Nothing is written if encoding fails.
func (c *Codec) Store(m *Map, w io.Writer) error {
	stats, err := element.WriteDocument(w, m.Document(), c.opts.WriteHeader)
	if err != nil {
		return fmt.Errorf("mapdata: store %q: %w", m.Package, err)
	}
	c.logger.Debug().
		Str("package", m.Package).
		Int("levels", len(m.Levels)).
		Int("strings", stats.Strings).
		Uint64("bytes", stats.Bytes).
		Msg("map stored")
	return nil
}

// Load decodes a map file using the global logger.
func Load(r io.Reader, checkHeader bool) (*Map, error) {
	opts := DefaultOptions()
	opts.CheckHeader = checkHeader
	return NewCodec(opts, log.Logger).Load(r)
}

// Store encodes a map file using the global logger.
func Store(m *Map, w io.Writer, writeHeader bool) error {
	opts := DefaultOptions()
	opts.WriteHeader = writeHeader
	return NewCodec(opts, log.Logger).Store(m, w)
}
