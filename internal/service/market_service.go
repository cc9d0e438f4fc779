package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"bazaarwatch/internal/domain"
)

const (
	snapshotCacheKey = "bazaarwatch:snapshot:latest"
	snapshotCacheTTL = 10 * time.Minute
)

// BazaarSource yields the currency and gold categories; both come from
// the same primary document, so one fetch serves both.
type BazaarSource interface {
	Fetch(ctx context.Context) (currencies, gold []domain.PriceFact, err error)
}

// CoinSource yields one coin fact list.
type CoinSource interface {
	Fetch(ctx context.Context) ([]domain.PriceFact, error)
}

// CryptoSource yields the crypto category. It has an internal
// placeholder tier and therefore never fails.
type CryptoSource interface {
	Fetch(ctx context.Context) []domain.PriceFact
}

// GovernmentSource yields national-exchange rates, served on demand.
type GovernmentSource interface {
	Fetch(ctx context.Context) ([]domain.GovernmentRate, error)
}

// RedisClient is the slice of go-redis the service needs.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// MarketService orchestrates the source strategies into one snapshot per
// refresh cycle and keeps the last good snapshot in Redis.
type MarketService struct {
	tracer trace.Tracer
	bazaar BazaarSource
	coins  CoinSource
	gerami CoinSource
	crypto CryptoSource
	gov    GovernmentSource
	redis  RedisClient
}

func NewMarketService(
	tracer trace.Tracer,
	bazaar BazaarSource,
	coins CoinSource,
	gerami CoinSource,
	crypto CryptoSource,
	gov GovernmentSource,
	redisClient RedisClient,
) *MarketService {
	return &MarketService{
		tracer: tracer,
		bazaar: bazaar,
		coins:  coins,
		gerami: gerami,
		crypto: crypto,
		gov:    gov,
		redis:  redisClient,
	}
}

// Run executes one pipeline cycle. The four upstream fetches are
// independent network round trips and run in parallel; each branch's
// failure degrades its category to empty. Run reports an error only when
// the orchestration itself panics; every degraded cycle still returns a
// timestamped snapshot.
func (s *MarketService) Run(ctx context.Context) (snap *domain.MarketSnapshot, err error) {
	ctx, span := s.tracer.Start(ctx, "market-service.run")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			snap = nil
			err = fmt.Errorf("market pipeline panic: %v", r)
		}
	}()

	var (
		wg         sync.WaitGroup
		currencies []domain.PriceFact
		gold       []domain.PriceFact
		coins      []domain.PriceFact
		gerami     []domain.PriceFact
		crypto     []domain.PriceFact
	)

	// Each goroutine writes only its own slice; the merge happens after
	// the join.
	wg.Add(4)
	go func() {
		defer wg.Done()
		defer logBranchPanic("bazaar")
		var ferr error
		currencies, gold, ferr = s.bazaar.Fetch(ctx)
		if ferr != nil {
			log.Printf("bazaar fetch failed, currencies and gold empty: %v", ferr)
			currencies, gold = nil, nil
		}
	}()
	go func() {
		defer wg.Done()
		defer logBranchPanic("coins")
		var ferr error
		coins, ferr = s.coins.Fetch(ctx)
		if ferr != nil {
			log.Printf("coin fetch failed, category degraded: %v", ferr)
			coins = nil
		}
	}()
	go func() {
		defer wg.Done()
		defer logBranchPanic("gerami")
		var ferr error
		gerami, ferr = s.gerami.Fetch(ctx)
		if ferr != nil {
			log.Printf("gerami fetch failed: %v", ferr)
			gerami = nil
		}
	}()
	go func() {
		defer wg.Done()
		defer logBranchPanic("crypto")
		crypto = s.crypto.Fetch(ctx)
	}()
	wg.Wait()

	if bubble, ok := computeBubble(currencies, gold); ok {
		gold = append(gold, bubble)
	}

	return &domain.MarketSnapshot{
		Currencies:  currencies,
		Gold:        gold,
		Coins:       append(coins, gerami...),
		Crypto:      crypto,
		GeneratedAt: time.Now(),
	}, nil
}

// Refresh runs one cycle and stores the snapshot as the last known good.
func (s *MarketService) Refresh(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "market-service.refresh")
	defer span.End()

	snap, err := s.Run(ctx)
	if err != nil {
		return err
	}
	if s.redis != nil {
		if cerr := s.setSnapshotCache(ctx, snap); cerr != nil {
			log.Printf("snapshot cache write error: %v", cerr)
		}
	}
	return nil
}

// Latest returns the cached snapshot, running a fresh cycle on a miss.
func (s *MarketService) Latest(ctx context.Context) (*domain.MarketSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.latest")
	defer span.End()

	if s.redis != nil {
		cached, err := s.getSnapshotCache(ctx)
		if err != nil {
			log.Printf("snapshot cache read error: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	snap, err := s.Run(ctx)
	if err != nil {
		return nil, err
	}
	if s.redis != nil {
		_ = s.setSnapshotCache(ctx, snap)
	}
	return snap, nil
}

// GovernmentRates fetches the national-exchange rates on demand; they
// are not part of the snapshot.
func (s *MarketService) GovernmentRates(ctx context.Context) ([]domain.GovernmentRate, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.government-rates")
	defer span.End()

	return s.gov.Fetch(ctx)
}

func (s *MarketService) setSnapshotCache(ctx context.Context, snap *domain.MarketSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, snapshotCacheKey, data, snapshotCacheTTL).Err()
}

func (s *MarketService) getSnapshotCache(ctx context.Context) (*domain.MarketSnapshot, error) {
	data, err := s.redis.Get(ctx, snapshotCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap domain.MarketSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// logBranchPanic keeps a panicking strategy from taking the run down
// with it; the branch just contributes nothing this cycle.
func logBranchPanic(name string) {
	if r := recover(); r != nil {
		log.Printf("%s strategy panicked: %v", name, r)
	}
}
