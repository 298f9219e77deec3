// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"os"
	"path/filepath"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	defaultExpiration = 5 * time.Minute
	defaultCleanup    = 10 * time.Minute
)

// Cache - parsed script files, reparsed when the file size or
// modification time changes
type Cache struct {
	cache *cache.Cache
}

type cachedScript struct {
	modTime  time.Time
	size     int64
	commands []Command
}

// NewCache - create an empty cache
func NewCache() *Cache {
	return &Cache{
		cache: cache.New(defaultExpiration, defaultCleanup),
	}
}

// Load - commands of a script file, parsing only if not cached
func (c *Cache) Load(fileName string) ([]Command, bool, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, false, err
	}

	info, err := os.Stat(fileName)
	if os.IsNotExist(err) {
		c.cache.Delete(fileName)
		return nil, false, fault.ErrScriptFileNotFound
	}
	if nil != err {
		return nil, false, err
	}

	if obj, found := c.cache.Get(fileName); found {
		cached := obj.(cachedScript)
		if cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
			return cached.commands, true, nil
		}
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, false, err
	}
	defer f.Close()

	commands, err := Parse(f)
	if nil != err {
		c.cache.Delete(fileName)
		return nil, false, err
	}

	c.cache.Set(fileName, cachedScript{
		modTime:  info.ModTime(),
		size:     info.Size(),
		commands: commands,
	}, cache.DefaultExpiration)

	return commands, false, nil
}

// Count - number of cached files
func (c *Cache) Count() int {
	return c.cache.ItemCount()
}

// Clear - drop all cached files
func (c *Cache) Clear() {
	c.cache.Flush()
}
