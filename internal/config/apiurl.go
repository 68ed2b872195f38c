package config

import (
	"os"
	"strings"
	"sync"
)

// Resolver resolves the backend base address once and caches it.
// The environment is consulted on the first call only.
type Resolver struct {
	lookup func(string) (string, bool)

	once  sync.Once
	value string
}

// NewResolver returns a Resolver reading from lookup, or os.LookupEnv when nil.
func NewResolver(lookup func(string) (string, bool)) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Resolver{lookup: lookup}
}

// APIURL returns REDDITWORDCLOUD_API_URL, or DefaultAPIURL when it is unset or blank.
func (r *Resolver) APIURL() string {
	r.once.Do(func() {
		r.value = DefaultAPIURL
		if v, ok := r.lookup(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
			r.value = strings.TrimSpace(v)
		}
	})
	return r.value
}

var processResolver = NewResolver(nil)

// APIURL returns the process-wide backend base address, resolved on first use.
func APIURL() string {
	return processResolver.APIURL()
}
