package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Registry bundles the four lexicons used by one analysis. It is shared by
// reference and safe for concurrent readers.
type Registry struct {
	positive  *Lexicon
	negative  *Lexicon
	filler    *Lexicon
	jobSearch *Lexicon
}

// File is the on-disk YAML shape of a registry.
type File struct {
	Positive  []string `yaml:"positive"`
	Negative  []string `yaml:"negative"`
	Filler    []string `yaml:"filler"`
	JobSearch []string `yaml:"job_search"`
}

func NewRegistry(positive, negative, filler, jobSearch []string) (*Registry, error) {
	var (
		r   Registry
		err error
	)
	if r.positive, err = New(Positive, positive); err != nil {
		return nil, err
	}
	if r.negative, err = New(Negative, negative); err != nil {
		return nil, err
	}
	if r.filler, err = New(Filler, filler); err != nil {
		return nil, err
	}
	if r.jobSearch, err = New(JobSearch, jobSearch); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Registry) Positive() *Lexicon { return r.positive }
func (r *Registry) Negative() *Lexicon { return r.negative }
func (r *Registry) Filler() *Lexicon { return r.filler }
func (r *Registry) JobSearch() *Lexicon { return r.jobSearch }

func (r *Registry) Lexicon(c Category) (*Lexicon, error) {
	switch c {
	case Positive:
		return r.positive, nil
	case Negative:
		return r.negative, nil
	case Filler:
		return r.filler, nil
	case JobSearch:
		return r.jobSearch, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCat, c)
}

// File returns a copy of the registry in its YAML shape.
func (r *Registry) File() File {
	return File{
		Positive:  r.positive.Terms(),
		Negative:  r.negative.Terms(),
		Filler:    r.filler.Terms(),
		JobSearch: r.jobSearch.Terms(),
	}
}

func (r *Registry) MarshalYAML() (any, error) { return r.File(), nil }

// Decode reads a YAML registry. Unknown keys are rejected so a typo in a
// category name does not silently fall back to an empty set.
func Decode(rd io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("lexicon decode: %w", err)
	}
	return NewRegistry(f.Positive, f.Negative, f.Filler, f.JobSearch)
}

func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
