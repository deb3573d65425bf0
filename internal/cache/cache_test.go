package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(true)
	data := []byte(`{"ok":true}`)

	etag := c.Set("alerts", data, time.Minute)
	if etag == "" {
		t.Fatal("Set returned empty etag")
	}

	got, gotTag, ok := c.Get("alerts")
	if !ok {
		t.Fatal("Get miss after Set")
	}
	if string(got) != string(data) || gotTag != etag {
		t.Errorf("Get = (%q, %q), want (%q, %q)", got, gotTag, data, etag)
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New(true)
	c.Set("alerts", []byte("x"), 10*time.Millisecond)

	time.Sleep(25 * time.Millisecond)
	if _, _, ok := c.Get("alerts"); ok {
		t.Error("Get hit on expired entry")
	}
}

func TestCache_DisabledIsNoOp(t *testing.T) {
	c := New(false)
	data := []byte("x")

	// Even disabled, callers still need a valid ETag for conditional requests.
	if etag := c.Set("k", data, time.Minute); etag != ComputeETag(data) {
		t.Errorf("disabled Set etag = %q, want %q", etag, ComputeETag(data))
	}
	if _, _, ok := c.Get("k"); ok {
		t.Error("disabled cache returned a hit")
	}
}

func TestCache_Evict(t *testing.T) {
	c := New(true)
	c.Set("old", []byte("x"), -time.Second)
	c.Set("live", []byte("y"), time.Minute)

	c.evict()

	stats := c.Stats()
	if stats["total_keys"] != 1 || stats["active_keys"] != 1 {
		t.Errorf("stats after evict = %v", stats)
	}
}

func TestComputeETag_Stable(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	if a != b {
		t.Errorf("etag not deterministic: %q vs %q", a, b)
	}
	if a == ComputeETag([]byte("other")) {
		t.Error("different payloads share an etag")
	}
}

func TestCheckETagMatch(t *testing.T) {
	tests := []struct {
		name        string
		ifNoneMatch string
		etag        string
		want        bool
	}{
		{"empty header", "", `W/"ab"`, false},
		{"wildcard", "*", `W/"ab"`, true},
		{"exact match", `W/"ab"`, `W/"ab"`, true},
		{"mismatch", `W/"cd"`, `W/"ab"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckETagMatch(tt.ifNoneMatch, tt.etag); got != tt.want {
				t.Errorf("CheckETagMatch(%q, %q) = %v, want %v", tt.ifNoneMatch, tt.etag, got, tt.want)
			}
		})
	}
}
