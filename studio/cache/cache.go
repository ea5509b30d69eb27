/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache

import (
	"context"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	logger "d7y.io/studio/internal/dflog"
	pkgredis "d7y.io/studio/pkg/redis"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/studio/models"
)

// Cache is cache client. Every replica keeps a local layer in front of
// redis, evictions are broadcast on a redis channel so that the other
// replicas drop their local copy too.
type Cache struct {
	*cache.Cache
	TTL time.Duration

	rdb     redis.UniversalClient
	channel string
}

// New cache instance.
func New(cfg *config.Config, rdb redis.UniversalClient) *Cache {
	return &Cache{
		Cache: cache.New(&cache.Options{
			Redis:      rdb,
			LocalCache: cache.NewTinyLFU(cfg.Cache.Local.Size, cfg.Cache.Local.TTL),
		}),
		TTL:     cfg.Cache.Redis.TTL,
		rdb:     rdb,
		channel: cfg.Cache.Local.Channel,
	}
}

// GetProject loads a project by id, filling the cache from load on a miss.
func (c *Cache) GetProject(ctx context.Context, id uint, load func(ctx context.Context) (*models.Project, error)) (*models.Project, error) {
	project := new(models.Project)
	if err := c.Once(&cache.Item{
		Ctx:   ctx,
		Key:   pkgredis.MakeProjectKey(id),
		Value: project,
		TTL:   c.TTL,
		Do: func(item *cache.Item) (any, error) {
			return load(item.Context())
		},
	}); err != nil {
		return nil, err
	}

	return project, nil
}

// EvictProject drops the cached project here and in redis, then tells the
// other replicas to drop their local copy.
func (c *Cache) EvictProject(ctx context.Context, id uint) {
	key := pkgredis.MakeProjectKey(id)
	if err := c.Delete(ctx, key); err != nil && err != cache.ErrCacheMiss {
		logger.WithProject(id).Warnf("evict project cache failed: %s", err.Error())
	}

	if c.rdb == nil {
		return
	}

	if err := c.rdb.Publish(ctx, c.channel, key).Err(); err != nil {
		logger.WithProject(id).Warnf("broadcast project eviction failed: %s", err.Error())
	}
}

// Serve drops the local entries evicted by any replica until ctx is done.
func (c *Cache) Serve(ctx context.Context) error {
	if c.rdb == nil {
		<-ctx.Done()
		return nil
	}

	pubsub := c.rdb.Subscribe(ctx, c.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}

	logger.Infof("subscribed to cache eviction channel %s", c.channel)
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}

			c.evictLocal(m)
		}
	}
}

func (c *Cache) evictLocal(m *redis.Message) {
	if m.Payload == "" {
		return
	}

	c.DeleteFromLocalCache(m.Payload)
}
