package config

import "fmt"

type CacheKeyStruct struct {
	prefix string
}

func NewCacheKeyStruct(prefix string) *CacheKeyStruct {
	return &CacheKeyStruct{prefix: prefix}
}

// SessionStateKey returns the key holding a login's state snapshot.
func (k *CacheKeyStruct) SessionStateKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s", k.prefix, sessionID)
}

// SessionStatePattern matches every session snapshot key.
func (k *CacheKeyStruct) SessionStatePattern() string {
	return fmt.Sprintf("%s:session:*", k.prefix)
}

var CacheKey = NewCacheKeyStruct("portal")
