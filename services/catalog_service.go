package services

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/models"
)

// CatalogService proxies the remote product catalog. Responses are cached in
// Redis for a short TTL when a client is available; the service works without
// one. Product ids are normalized at this boundary so the rest of the code
// only ever sees the canonical id field.
type CatalogService struct {
	api   *apiClient
	cache *redis.Client
	ttl   time.Duration
}

func NewCatalogService(apiBaseURL string, timeout time.Duration, cache *redis.Client, ttl time.Duration) *CatalogService {
	return &CatalogService{
		api:   newAPIClient(apiBaseURL, timeout),
		cache: cache,
		ttl:   ttl,
	}
}

func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.fetchList(ctx, "/api/products", "catalog:products")
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	path := "/api/products/category/" + url.PathEscape(category)
	return s.fetchList(ctx, path, "catalog:category:"+category)
}

func (s *CatalogService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	cacheKey := "catalog:product:" + id

	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		var product models.Product
		if err := json.Unmarshal(cached, &product); err == nil {
			return &product, nil
		}
	}

	var payload models.ProductPayload
	if err := s.api.doJSON(ctx, "GET", "/api/products/"+url.PathEscape(id), "", nil, &payload); err != nil {
		return nil, err
	}

	product, err := payload.Normalize()
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cacheKey, product)
	return &product, nil
}

func (s *CatalogService) fetchList(ctx context.Context, path, cacheKey string) ([]models.Product, error) {
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		var products []models.Product
		if err := json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}
	}

	var payloads []models.ProductPayload
	if err := s.api.doJSON(ctx, "GET", path, "", nil, &payloads); err != nil {
		return nil, err
	}

	products := []models.Product{}
	for _, payload := range payloads {
		product, err := payload.Normalize()
		if err != nil {
			log.Printf("Skipping catalog entry without usable id: %v", err)
			continue
		}
		products = append(products, product)
	}

	s.cacheSet(ctx, cacheKey, products)
	return products, nil
}

func (s *CatalogService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
		log.Printf("Failed to cache %s: %v", key, err)
	}
}
