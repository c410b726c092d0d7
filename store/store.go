// Package store persists drawings in a directory, one sketch file and
// one metadata file per drawing.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/log"
	"github.com/inkpad/inkpad/model"
)

// ErrNotFound is returned when no drawing with the given id exists.
var ErrNotFound = errors.New("drawing not found")

const (
	sketchExt = ".sketch"
	metaExt   = ".json"
)

// Store is a directory-backed collection of drawings.
type Store struct {
	dir string
}

// DefaultDir returns the store location when none is configured:
// the user cache directory with a home-directory fallback.
func DefaultDir() (string, error) {
	cachedir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return path.Join(home, ".inkpad"), nil
	}
	return path.Join(cachedir, "inkpad"), nil
}

// Open opens (and creates, when missing) the store directory.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "can't create store directory")
	}

	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the metadata of every stored drawing, sorted by name.
func (s *Store) List() ([]model.Drawing, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(err, "can't read store directory")
	}

	var drawings []model.Drawing
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), metaExt) {
			continue
		}

		d, err := s.readMeta(path.Join(s.dir, e.Name()))
		if err != nil {
			log.Warning.Printf("skipping %s: %v", e.Name(), err)
			continue
		}
		drawings = append(drawings, d)
	}

	sort.Slice(drawings, func(i, j int) bool {
		return drawings[i].Name < drawings[j].Name
	})

	return drawings, nil
}

// FindByName returns the first drawing with the given name.
func (s *Store) FindByName(name string) (model.Drawing, error) {
	drawings, err := s.List()
	if err != nil {
		return model.Drawing{}, err
	}
	for _, d := range drawings {
		if d.Name == name {
			return d, nil
		}
	}
	return model.Drawing{}, ErrNotFound
}

// Load reads the sketch content of a drawing.
func (s *Store) Load(id string) (model.Drawing, *sketch.Sketch, error) {
	meta, err := s.readMeta(s.metaPath(id))
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return model.Drawing{}, nil, ErrNotFound
		}
		return model.Drawing{}, nil, err
	}

	data, err := os.ReadFile(s.sketchPath(id))
	if err != nil {
		return model.Drawing{}, nil, errors.Wrap(err, "can't read sketch file")
	}

	sk := &sketch.Sketch{}
	if err := sk.UnmarshalBinary(data); err != nil {
		return model.Drawing{}, nil, errors.Wrapf(err, "can't decode sketch %s", id)
	}

	return meta, sk, nil
}

// Save writes the drawing and its content. When the content hash is
// unchanged the sketch file is left alone and only renames take
// effect.
func (s *Store) Save(meta model.Drawing, sk *sketch.Sketch) error {
	data, err := sk.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "can't encode sketch")
	}

	hash := HashContent(data)
	if hash != meta.Hash {
		if err := os.WriteFile(s.sketchPath(meta.ID), data, 0600); err != nil {
			return errors.Wrap(err, "can't write sketch file")
		}
		meta.Hash = hash
		meta.ModifiedAt = time.Now().UTC()
	} else {
		log.Trace.Printf("content of %s unchanged, skipping write", meta.ID)
	}

	return s.writeMeta(meta)
}

// Delete removes a drawing and its metadata.
func (s *Store) Delete(id string) error {
	if err := os.Remove(s.metaPath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return errors.Wrap(err, "can't delete metadata")
	}
	if err := os.Remove(s.sketchPath(id)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "can't delete sketch file")
	}
	return nil
}

// Rename changes a drawing's name.
func (s *Store) Rename(id, name string) error {
	meta, err := s.readMeta(s.metaPath(id))
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return ErrNotFound
		}
		return err
	}

	meta.Name = name
	meta.ModifiedAt = time.Now().UTC()
	return s.writeMeta(meta)
}

// HashContent returns the hex sha256 of marshalled sketch content.
func HashContent(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (s *Store) sketchPath(id string) string {
	return path.Join(s.dir, id+sketchExt)
}

func (s *Store) metaPath(id string) string {
	return path.Join(s.dir, id+metaExt)
}

func (s *Store) readMeta(p string) (model.Drawing, error) {
	var d model.Drawing

	data, err := os.ReadFile(p)
	if err != nil {
		return d, errors.Wrap(err, "can't read metadata")
	}

	if err := json.Unmarshal(data, &d); err != nil {
		return d, errors.Wrap(err, "can't parse metadata")
	}

	return d, nil
}

func (s *Store) writeMeta(d model.Drawing) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return errors.Wrap(err, "can't serialize metadata")
	}

	return os.WriteFile(s.metaPath(d.ID), data, 0600)
}
