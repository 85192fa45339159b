package repositories

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"

	"storefront/models"
)

// CartRepository persists one cart record per owner under a fixed key.
// Load never fails: a missing or corrupt record degrades to an empty cart.
type CartRepository interface {
	Load(owner string) (models.CartState, bool)
	Save(owner string, state models.CartState) error
	Delete(owner string) error
}

type FileCartRepository struct {
	dir string
}

func NewFileCartRepository(dir string) *FileCartRepository {
	return &FileCartRepository{dir: dir}
}

func (r *FileCartRepository) path(owner string) string {
	return filepath.Join(r.dir, "cart_"+sanitizeOwner(owner)+".json")
}

func (r *FileCartRepository) Load(owner string) (models.CartState, bool) {
	data, err := os.ReadFile(r.path(owner))
	if err != nil {
		return models.EmptyCart(), false
	}

	var state models.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Discarding corrupt cart record for %s: %v", owner, err)
		return models.EmptyCart(), false
	}
	if state.CartItems == nil {
		state.CartItems = []models.CartItem{}
	}
	return state, true
}

// Save writes the record to a temp file and renames it into place, so a
// crash mid-write can never leave a truncated record behind.
func (r *FileCartRepository) Save(owner string, state models.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return writeFileAtomic(r.dir, r.path(owner), data)
}

func (r *FileCartRepository) Delete(owner string) error {
	err := os.Remove(r.path(owner))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func (r *RedisCartRepository) key(owner string) string {
	return "cart:" + owner
}

func (r *RedisCartRepository) Load(owner string) (models.CartState, bool) {
	data, err := r.client.Get(context.Background(), r.key(owner)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to load cart record for %s: %v", owner, err)
		}
		return models.EmptyCart(), false
	}

	var state models.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Discarding corrupt cart record for %s: %v", owner, err)
		return models.EmptyCart(), false
	}
	if state.CartItems == nil {
		state.CartItems = []models.CartItem{}
	}
	return state, true
}

func (r *RedisCartRepository) Save(owner string, state models.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), r.key(owner), data, 0).Err()
}

func (r *RedisCartRepository) Delete(owner string) error {
	return r.client.Del(context.Background(), r.key(owner)).Err()
}

func writeFileAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func sanitizeOwner(owner string) string {
	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		}
		return '_'
	}, owner)
}
