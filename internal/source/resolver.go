package source

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/peapod-fundraiser/site/internal/catalog"
)

// Origin tags which source produced a resolved catalog.
type Origin string

const (
	OriginRemote Origin = "remote"
	OriginLocal  Origin = "local"
)

// Result is a resolved catalog and where it came from.
type Result struct {
	Catalog *catalog.Catalog
	Origin  Origin
}

// Resolver tries the remote source and falls back to the local one. The two
// attempts run one after the other; nothing is cached between calls.
type Resolver struct {
	remote Source
	local  Source
	logger *zap.Logger
}

// NewResolver creates a Resolver. remote may be nil, in which case every
// load goes straight to local.
func NewResolver(remote, local Source, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{remote: remote, local: local, logger: logger}
}

// Load resolves the catalog. Remote failures are logged and never returned;
// an error means the local source failed too.
func (r *Resolver) Load(ctx context.Context) (*Result, error) {
	if r.remote != nil {
		c, err := r.remote.Fetch(ctx)
		if err == nil {
			r.logger.Debug("catalog loaded", zap.String("origin", string(OriginRemote)), zap.String("source", r.remote.Name()))
			return &Result{Catalog: c, Origin: OriginRemote}, nil
		}
		r.logger.Warn("remote catalog not available, loading local",
			zap.String("source", r.remote.Name()),
			zap.Error(err))
	}

	if r.local == nil {
		return nil, errors.New("no local catalog source configured")
	}

	c, err := r.local.Fetch(ctx)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			r.logger.Error("failed to parse local catalog",
				zap.String("source", pe.Source),
				zap.String("excerpt", pe.Excerpt),
				zap.Error(pe.Err))
		}
		return nil, err
	}
	r.logger.Debug("catalog loaded", zap.String("origin", string(OriginLocal)), zap.String("source", r.local.Name()))
	return &Result{Catalog: c, Origin: OriginLocal}, nil
}
