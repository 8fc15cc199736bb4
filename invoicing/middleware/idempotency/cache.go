package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/invoicing/model"
)

// IdempotencyCluster backs the idempotency keyspace.
var IdempotencyCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache maps request keys to their recorded outcomes. Entries
// expire after a day; a replay beyond that window is treated as new.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyRecord](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
