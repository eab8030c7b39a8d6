package service

import (
	"context"
	"log"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
	"github.com/actuallystonmai/stream-aggregator/internal/search"
)

// ResultCache stores search results. A nil cache disables caching.
type ResultCache interface {
	Get(ctx context.Context, q domain.SearchQuery, limit int) (*domain.SearchResult, bool, error)
	Set(ctx context.Context, q domain.SearchQuery, limit int, res *domain.SearchResult) error
}

type Searcher interface {
	Search(q domain.SearchQuery) (*domain.SearchResult, error)
}

type CommandParser interface {
	Parse(command string) domain.ParsedIntent
}

type PlatformLister interface {
	All() []domain.Platform
}

type Service struct {
	engine    Searcher
	parser    CommandParser
	platforms PlatformLister
	cache     ResultCache
}

func NewService(engine Searcher, parser CommandParser, platforms PlatformLister, cache ResultCache) *Service {
	return &Service{
		engine:    engine,
		parser:    parser,
		platforms: platforms,
		cache:     cache,
	}
}

func (s *Service) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchOutcome, error) {
	if err := search.Validate(q); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit := search.ClampLimit(q.Limit)

	// Check Cache
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, q, limit)
		if err != nil {
			log.Printf("[service] cache get error for %q: %v", q.Query, err)
		}
		if found {
			return &domain.SearchOutcome{Result: cached, CacheHit: true}, nil
		}
	}

	res, err := s.engine.Search(q)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, q, limit, res); cacheErr != nil {
			log.Printf("[service] cache set error for %q: %v", q.Query, cacheErr)
		}
	}

	return &domain.SearchOutcome{Result: res}, nil
}

// ParseCommand classifies command. Only an empty command is rejected; any
// other string, blank or not, yields an intent.
func (s *Service) ParseCommand(ctx context.Context, command string) (domain.ParsedIntent, error) {
	if command == "" {
		return domain.ParsedIntent{}, domain.ErrMissingCommand
	}
	if err := ctx.Err(); err != nil {
		return domain.ParsedIntent{}, err
	}
	return s.parser.Parse(command), nil
}

func (s *Service) Platforms() []domain.Platform {
	if s.platforms == nil {
		return []domain.Platform{}
	}
	return s.platforms.All()
}
