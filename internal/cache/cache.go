// Package cache keeps fetched listing pages on disk for a short while so repeated
// lookups of the same show do not hit the site again.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pftv-cli/pftv/filesystem"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/log"
	"github.com/pftv-cli/pftv/where"
	"github.com/spf13/viper"
)

// TTL returns how long a page stays valid. Zero disables the cache.
func TTL() time.Duration {
	minutes := viper.GetInt(key.FetchCacheTTL)
	if minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}

// Enabled reports whether pages should be cached at all.
func Enabled() bool {
	return TTL() > 0
}

// GenerateKey derives a file name from a page URL.
func GenerateKey(url string) string {
	hash := sha256.Sum256([]byte(strings.TrimSpace(url)))
	return hex.EncodeToString(hash[:])
}

func path(key string) string {
	return filepath.Join(where.Pages(), key+".html")
}

// Read returns the cached page for key if it is younger than ttl.
func Read(key string, ttl time.Duration) ([]byte, bool) {
	p := path(key)
	if !filesystem.Fresh(p, ttl) {
		return nil, false
	}

	data, err := filesystem.API().ReadFile(p)
	if err != nil {
		log.Debugf("cache: read %s: %s", key, err)
		return nil, false
	}
	return data, true
}

// Write stores page under key.
func Write(key string, page []byte) error {
	return filesystem.WriteAtomic(path(key), page)
}

// Prune removes every cached page older than ttl and returns how many were removed.
func Prune(ttl time.Duration) int {
	var removed int
	_ = filesystem.API().Walk(where.Pages(), func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > ttl {
			if filesystem.API().Remove(p) == nil {
				removed++
			}
		}
		return nil
	})
	return removed
}

// CollectGarbage prunes expired pages in the background.
func CollectGarbage() {
	ttl := TTL()
	go func() {
		if n := Prune(ttl); n > 0 {
			log.Infof("cache: pruned %d expired pages", n)
		}
	}()
}
