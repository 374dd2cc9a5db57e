// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, the upstream search provider and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory TTL cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache backed by go-redis
// - http/standard: Timeout-bounded HTTP client with credential-redacting request logs
// - provider/serpapi: SerpAPI client producing raw organic results
// - provider/pool: ants worker pool bounding concurrent provider calls
// - logger/logrus: logrus logger with optional lumberjack file rotation
//
// # Provider Chain
//
//	httpClient := standard.NewStandardHTTPClient(20*time.Second, standard.WithLogger(logger))
//	serp := serpapi.NewClient(httpClient, cfg.Provider)
//	pooled, err := pool.New(serp, cfg.Provider.MaxConcurrent, cfg.Provider.MaxWaiting)
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache(5 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Minute)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
package infrastructure
