// Package cache 统计结果缓存，未配置 Redis 时为空实现
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"teslastats/config"

	"github.com/redis/go-redis/v9"
)

// keyPrefix 所有统计缓存键的前缀，导入后按前缀整体失效
const keyPrefix = "teslastats:stats:"

// Cache 统计结果缓存
type Cache interface {
	// Get 命中时将值解码到 dest 并返回 true
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	// Invalidate 清空全部统计缓存
	Invalidate(ctx context.Context) error
}

var (
	current Cache = Noop{}
	mu      sync.RWMutex
)

// Default 获取当前缓存实例
func Default() Cache {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDefault 替换当前缓存实例（测试中也用于注入）
func SetDefault(c Cache) {
	mu.Lock()
	defer mu.Unlock()
	if c == nil {
		c = Noop{}
	}
	current = c
}

// Init 根据配置连接 Redis，地址为空或连接失败时退化为空实现
func Init(cfg *config.RedisConfig) {
	if cfg.Addr == "" {
		log.Println("未配置 redis.addr，统计缓存已禁用")
		SetDefault(Noop{})
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("警告: 无法连接 Redis %s: %v，统计缓存已禁用", cfg.Addr, err)
		_ = client.Close()
		SetDefault(Noop{})
		return
	}

	log.Printf("已连接 Redis: %s", cfg.Addr)
	SetDefault(NewRedisCache(client, cfg.TTL))
}

// Key 生成统计缓存键
func Key(parts ...string) string {
	key := keyPrefix
	for i, p := range parts {
		if i > 0 {
			key += ":"
		}
		key += p
	}
	return key
}

// Noop 不缓存任何内容
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}) error         { return nil }
func (Noop) Invalidate(context.Context) error                       { return nil }

// RedisCache 基于 Redis 的 JSON 缓存
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache 创建 Redis 缓存
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("读取缓存失败: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("解析缓存失败: %w", err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化缓存失败: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("扫描缓存失败: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Memory 进程内缓存，不设过期，用于本地运行与测试
type Memory struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemory 创建进程内缓存
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	data, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *Memory) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = data
	m.mu.Unlock()
	return nil
}

func (m *Memory) Invalidate(context.Context) error {
	m.mu.Lock()
	m.items = make(map[string][]byte)
	m.mu.Unlock()
	return nil
}

// Len 当前缓存条目数
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
