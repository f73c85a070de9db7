package memcache_fx

import (
	"go.uber.org/fx"

	mem "minutely/pkg/memcache"
)

var Module = fx.Provide(provideDedupeStore)

func provideDedupeStore() mem.EventDedupeStore {
	return mem.NewSeenEvents()
}
