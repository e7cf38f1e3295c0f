package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/lixenwraith/road-fighter/core"
)

const (
	dataDir      = "data"
	glyphExt     = ".txt"
	colorGridExt = ".col"
	trackExt     = ".txt"
)

var (
	// ErrAssetMissing is wrapped by every failed texture or track lookup
	ErrAssetMissing = errors.New("asset missing")

	// ErrTrackFormat is wrapped by track parse failures
	ErrTrackFormat = errors.New("invalid track format")
)

//go:embed data
var embedded embed.FS

// Provider supplies glyph grids, color grids and tracks by name
// Results must be deterministic for a given name
type Provider interface {
	// LoadGlyph returns the glyph grid for a texture name
	LoadGlyph(name string) (core.GlyphGrid, error)

	// LoadColorGrid returns the optional color grid; nil with no error when the texture has none
	LoadColorGrid(name string) (*core.ColorGrid, error)

	// LoadTrack returns the ordered spawn list of a track
	LoadTrack(name string) ([]TrackEntry, error)
}

// FSProvider reads assets from a file system, one file per texture
// Each call parses a fresh grid so entities never share one
type FSProvider struct {
	fsys fs.FS
}

// NewFSProvider creates a provider rooted at fsys
func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{fsys: fsys}
}

// Embedded returns a provider over the built-in textures and track
func Embedded() *FSProvider {
	sub, err := fs.Sub(embedded, dataDir)
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return NewFSProvider(sub)
}

// Dir returns a provider over an on-disk asset directory
func Dir(dir string) (*FSProvider, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("asset directory %s: %w", dir, ErrAssetMissing)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset path %s is not a directory: %w", dir, ErrAssetMissing)
	}
	return NewFSProvider(os.DirFS(dir)), nil
}

// LoadGlyph reads <name>.txt
func (p *FSProvider) LoadGlyph(name string) (core.GlyphGrid, error) {
	data, err := p.read(name + glyphExt)
	if err != nil {
		return core.GlyphGrid{}, fmt.Errorf("glyph %q: %w", name, err)
	}
	g := core.ParseGlyphGrid(string(data))
	if g.Empty() {
		return core.GlyphGrid{}, fmt.Errorf("glyph %q is empty: %w", name, ErrAssetMissing)
	}
	return g, nil
}

// LoadColorGrid reads <name>.col when present
func (p *FSProvider) LoadColorGrid(name string) (*core.ColorGrid, error) {
	data, err := fs.ReadFile(p.fsys, path.Clean(name+colorGridExt))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("color grid %q: %w: %v", name, ErrAssetMissing, err)
	}
	return core.ParseColorGrid(string(data)), nil
}

// LoadTrack reads and parses <name>.txt as a track
func (p *FSProvider) LoadTrack(name string) ([]TrackEntry, error) {
	f, err := p.fsys.Open(path.Clean(name + trackExt))
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", name, ErrAssetMissing)
	}
	defer f.Close()

	entries, err := ParseTrack(f)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", name, err)
	}
	return entries, nil
}

func (p *FSProvider) read(file string) ([]byte, error) {
	data, err := fs.ReadFile(p.fsys, path.Clean(file))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetMissing, err)
	}
	return data, nil
}
