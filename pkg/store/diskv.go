package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/swot/pkg/schedule"
	"tableflip.dev/swot/pkg/syllabus"
	"tableflip.dev/swot/pkg/timeutil"
)

var (
	// ErrUnavailable means the backing storage could not be reached. It is
	// never fatal: the next interaction simply retries.
	ErrUnavailable = errors.New("store: unavailable")

	// ErrCorrupt means the stored document did not parse into a valid
	// repository. Callers recover by falling back to the default syllabus
	// and must surface the data loss.
	ErrCorrupt = errors.New("store: corrupt document")
)

// documentKey is the single diskv key holding the whole repository document.
const documentKey = "syllabus"

// Persistence is the storage contract for the planner: load the full
// document, save the full document, watch for changes. The engine never
// retries these calls itself.
type Persistence interface {
	Load(ctx context.Context) (*syllabus.Repository, error)
	Save(ctx context.Context, r *syllabus.Repository) error
	Watch(ctx context.Context) (<-chan Event, error)
	Tuning() schedule.Config
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		tuning:   cfg.Tuning(),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	tuning   schedule.Config
}

func (p *persistence) Tuning() schedule.Config {
	return p.tuning
}

// Load reads the whole document. A missing document is a fresh install and
// yields the seeded default syllabus; a present-but-unreadable one is
// ErrUnavailable and a present-but-unparsable one is ErrCorrupt.
func (p *persistence) Load(ctx context.Context) (*syllabus.Repository, error) {
	if !p.d.Has(documentKey) {
		return syllabus.Default(timeutil.Today(time.Now())), nil
	}
	data, err := p.d.Read(documentKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read document: %v", ErrUnavailable, err)
	}
	r := &syllabus.Repository{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return r, nil
}

// Save replaces the whole document.
func (p *persistence) Save(ctx context.Context, r *syllabus.Repository) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := p.d.Write(documentKey, data); err != nil {
		return fmt.Errorf("%w: write document: %v", ErrUnavailable, err)
	}
	return nil
}
