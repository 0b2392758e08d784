// Package redis stores saved games and results in Redis.
//
// Keys, relative to the configured prefix:
//
//	save:{name}  serialized game text
//	saves        set of slot names
//	results      list of JSON results, newest at the head
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/AustinJGreen/goyahtzee/internal/storage"
)

// DefaultPrefix namespaces every key the store writes.
const DefaultPrefix = "yahtzee:"

type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type Store struct {
	rdb    *redis.Client
	prefix string
}

var _ storage.Store = (*Store)(nil)

// Open connects to Redis and checks the connection.
func Open(ctx context.Context, opts Options) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return New(rdb, opts.Prefix), nil
}

// New wraps an existing client. An empty prefix uses DefaultPrefix.
func New(rdb *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{rdb: rdb, prefix: prefix}
}

func (s *Store) saveKey(name string) string { return s.prefix + "save:" + name }
func (s *Store) savesKey() string           { return s.prefix + "saves" }
func (s *Store) resultsKey() string         { return s.prefix + "results" }

func (s *Store) Save(ctx context.Context, name, text string) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.saveKey(name), text, 0)
		pipe.SAdd(ctx, s.savesKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, name string) (string, error) {
	if err := storage.ValidateName(name); err != nil {
		return "", err
	}
	text, err := s.rdb.Get(ctx, s.saveKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("save %s: %w", name, storage.ErrNotFound)
	} else if err != nil {
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	return text, nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.rdb.SMembers(ctx, s.savesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	var del *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.saveKey(name))
		pipe.SRem(ctx, s.savesKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("save %s: %w", name, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) RecordResult(ctx context.Context, r storage.Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := s.rdb.LPush(ctx, s.resultsKey(), data).Err(); err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

func (s *Store) Results(ctx context.Context, limit int) ([]storage.Result, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	raw, err := s.rdb.LRange(ctx, s.resultsKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	out := make([]storage.Result, 0, len(raw))
	for _, item := range raw {
		var r storage.Result
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.rdb.Close()
}
