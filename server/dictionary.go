package server

import (
	"context"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Dictionary stores user-supplied words that extend the corpus vocabulary at
// suggestion time. Implementations must be safe for concurrent use.
type Dictionary interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

const redisDictKey = "azpipe:custom_dict"

// RedisDictionary keeps the custom words in a Redis set, so several server
// instances share one dictionary.
type RedisDictionary struct {
	client *redis.Client
	key    string
}

// NewRedisDictionary wraps an existing Redis client.
func NewRedisDictionary(client *redis.Client) *RedisDictionary {
	return &RedisDictionary{client: client, key: redisDictKey}
}

func (d *RedisDictionary) Add(ctx context.Context, word string) error {
	return d.client.SAdd(ctx, d.key, word).Err()
}

func (d *RedisDictionary) Remove(ctx context.Context, word string) error {
	return d.client.SRem(ctx, d.key, word).Err()
}

func (d *RedisDictionary) All(ctx context.Context) ([]string, error) {
	words, err := d.client.SMembers(ctx, d.key).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(words)
	return words, nil
}

// MemoryDictionary is a process-local Dictionary for single-instance
// deployments and tests.
type MemoryDictionary struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

func NewMemoryDictionary() *MemoryDictionary {
	return &MemoryDictionary{words: make(map[string]struct{})}
}

func (d *MemoryDictionary) Add(_ context.Context, word string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.words[word] = struct{}{}
	return nil
}

func (d *MemoryDictionary) Remove(_ context.Context, word string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.words, word)
	return nil
}

func (d *MemoryDictionary) All(_ context.Context) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}
