// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"fmt"
	"os"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/aiff"
	"github.com/ik5/audwave/formats/flac"
	"github.com/ik5/audwave/formats/mp3"
	"github.com/ik5/audwave/formats/vorbis"
	"github.com/ik5/audwave/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder,
// keyed by file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// OpenFile decodes path with the decoder for its extension and loads
// the whole stream into memory.
func OpenFile(path string, opts audio.LoadOptions) (*audio.MemoryProvider, error) {
	return OpenFileWith(DefaultRegistry(), path, opts)
}

// OpenFileWith is OpenFile with a caller supplied registry.
func OpenFileWith(reg *audio.Registry, path string, opts audio.LoadOptions) (*audio.MemoryProvider, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return audio.Load(src, opts)
}
