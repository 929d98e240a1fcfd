package mastery

import (
	"testing"
	"time"
)

func TestAnsweredCache_HitAndMiss(t *testing.T) {
	c := NewAnsweredCache(5 * time.Minute)
	now := time.Now()

	if _, ok := c.Get("u1", "far", now); ok {
		t.Error("expected miss on empty cache")
	}

	c.Put("u1", "far", map[string]bool{"q1": true}, now)
	ids, ok := c.Get("u1", "far", now)
	if !ok || !ids["q1"] {
		t.Error("expected hit with q1 after Put")
	}

	// Different section is a separate entry.
	if _, ok := c.Get("u1", "aud", now); ok {
		t.Error("expected miss for other section")
	}
	// So is a different user.
	if _, ok := c.Get("u2", "far", now); ok {
		t.Error("expected miss for other user")
	}
}

func TestAnsweredCache_TTLExpiry(t *testing.T) {
	c := NewAnsweredCache(5 * time.Minute)
	now := time.Now()

	c.Put("u1", "far", map[string]bool{"q1": true}, now)

	if _, ok := c.Get("u1", "far", now.Add(4*time.Minute)); !ok {
		t.Error("expected hit before TTL")
	}
	if _, ok := c.Get("u1", "far", now.Add(6*time.Minute)); ok {
		t.Error("expected miss after TTL")
	}
}

func TestAnsweredCache_Invalidate(t *testing.T) {
	c := NewAnsweredCache(5 * time.Minute)
	now := time.Now()

	c.Put("u1", "far", map[string]bool{"q1": true}, now)
	c.Put("u1", "aud", map[string]bool{"q2": true}, now)

	c.Invalidate("u1", "far")

	if _, ok := c.Get("u1", "far", now); ok {
		t.Error("expected miss after Invalidate")
	}
	if _, ok := c.Get("u1", "aud", now); !ok {
		t.Error("other sections must survive Invalidate")
	}
}

func TestNewAnsweredCache_DefaultTTL(t *testing.T) {
	c := NewAnsweredCache(0)
	if c.ttl != DefaultCacheTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultCacheTTL)
	}
}
