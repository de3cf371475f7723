package driver

import (
	"crypto/sha256"
	"testing"
)

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	cache, err := OpenDiskCache("svlift-test", t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return cache
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := testCache(t)
	key := sha256.Sum256([]byte("fixture content"))
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        "a.toml",
		ContentHash: key,
		Rendered:    "int x = 1;\n",
		DiagLines:   "",
		HasErrors:   false,
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Rendered != payload.Rendered || got.Path != payload.Path {
		t.Errorf("payload mismatch: %+v", got)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache := testCache(t)
	var got DiskPayload
	ok, err := cache.Get(sha256.Sum256([]byte("absent")), &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("unexpected cache hit")
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	cache := testCache(t)
	key := sha256.Sum256([]byte("old"))
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	var got DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("stale schema entry accepted")
	}
}

func TestDiskCacheNil(t *testing.T) {
	var cache *DiskCache
	key := sha256.Sum256([]byte("x"))
	if err := cache.Put(key, &DiskPayload{}); err != nil {
		t.Errorf("nil put: %v", err)
	}
	ok, err := cache.Get(key, &DiskPayload{})
	if ok || err != nil {
		t.Errorf("nil get: ok=%v err=%v", ok, err)
	}
}
