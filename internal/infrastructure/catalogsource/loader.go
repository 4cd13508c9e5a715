package catalogsource

import (
	"context"
	"time"

	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Loader fetches the pricing catalog from a repository once at startup.
//
// Repository errors are retried with exponential backoff until the context
// expires. A catalog that fails validation is not retried.
type Loader struct {
	repo       interfaces.ICatalogRepository
	log        *zap.Logger
	newBackOff func() backoff.BackOff
}

func NewLoader(repo interfaces.ICatalogRepository, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		repo: repo,
		log:  log,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 5 * time.Second
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (l *Loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	var loaded *catalog.Catalog
	attempt := 0

	op := func() error {
		attempt++
		entries, err := l.repo.ListEntries(ctx)
		if err != nil {
			return err
		}
		c, err := catalog.New(entries)
		if err != nil {
			return backoff.Permanent(err)
		}
		loaded = c
		return nil
	}
	notify := func(err error, wait time.Duration) {
		l.log.Warn("[catalog][loader] load failed, retrying",
			zap.Int("attempt", attempt), zap.Duration("wait", wait), zap.Error(err))
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(l.newBackOff(), ctx), notify); err != nil {
		l.log.Error("[catalog][loader] load failed", zap.Int("attempts", attempt), zap.Error(err))
		return nil, err
	}
	l.log.Info("[catalog][loader] catalog loaded", zap.Int("attempts", attempt))
	return loaded, nil
}

// Resolve returns the catalog for the configured source. With fallback set,
// a failed remote load degrades to the built-in catalog instead of failing.
func Resolve(ctx context.Context, loader *Loader, timeout time.Duration, fallback bool) (*catalog.Catalog, error) {
	if loader == nil {
		return catalog.Default(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c, err := loader.Load(ctx)
	if err != nil {
		if !fallback {
			return nil, err
		}
		loader.log.Warn("[catalog][loader] using built-in catalog", zap.Error(err))
		return catalog.Default(), nil
	}
	return c, nil
}
