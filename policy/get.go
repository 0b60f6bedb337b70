package policy

import (
	"github.com/harshisingh777/tic-tac-toe/cache"
	"github.com/harshisingh777/tic-tac-toe/config"
)

func cacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	return LoadOrEmpty(key), nil
}

// Get returns the policy at the configured policy path, loading it on first
// use. A missing or malformed file yields an empty policy.
func Get(cfg *config.Config) (Policy, error) {
	obj, err := cache.Load(cfg, cfg.GetString(config.ConfigPolicyPath), cacheLoadFunc)
	if err != nil {
		return nil, err
	}
	return obj.(Policy), nil
}
