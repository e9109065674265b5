package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/pool"
)

// processTranslations runs fetch, which loads an entity and its translation for a
// single language, for every language concurrently and merges the results.
// The entity of the first language (by position, not completion) is returned with
// one translation per language. The first failure cancels the remaining fetches and
// is returned alone; no partial result is produced.
func processTranslations[E any, T any](ctx context.Context, languages []string, fetch func(ctx context.Context, language string) (E, T, error)) (E, map[string]T, error) {
	var zero E
	if len(languages) == 0 {
		return zero, nil, errors.New("no language to fetch")
	}

	entities := make([]E, len(languages))
	translations := make([]T, len(languages))

	// Recorded before the pool cancels the siblings, so their context errors never win
	var (
		firstErr error
		once     sync.Once
	)

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError()

	for i, lng := range languages {
		p.Go(func(ctx context.Context) error {
			entity, translation, err := fetch(ctx, lng)
			if err != nil {
				err = fmt.Errorf("language %s: %w", lng, err)
				once.Do(func() { firstErr = err })
				return err
			}
			entities[i] = entity
			translations[i] = translation
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return zero, nil, firstErr
	}

	merged := make(map[string]T, len(languages))
	for i, lng := range languages {
		merged[lng] = translations[i]
	}
	return entities[0], merged, nil
}
