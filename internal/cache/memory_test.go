package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name  string   `json:"name"`
		Stack []string `json:"stack"`
	}

	in := payload{Name: "Ada", Stack: []string{"Python"}}
	if err := c.SetJSON(ctx, "k", in, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var out payload
	hit, err := c.GetJSON(ctx, "k", &out)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if !hit {
		t.Fatal("expected hit")
	}
	if out.Name != in.Name || len(out.Stack) != 1 || out.Stack[0] != "Python" {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestMemoryCache_MissAndDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var out map[string]any
	hit, err := c.GetJSON(ctx, "missing", &out)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if hit {
		t.Error("unexpected hit for missing key")
	}

	if err := c.SetJSON(ctx, "k", map[string]string{"a": "b"}, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	hit, _ = c.GetJSON(ctx, "k", &out)
	if hit {
		t.Error("key survived delete")
	}
}

func TestMemoryCache_SetNX(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	won, err := c.SetNX(ctx, "lock", true, time.Minute)
	if err != nil {
		t.Fatalf("SetNX: %v", err)
	}
	if !won {
		t.Fatal("first SetNX lost on an empty key")
	}

	won, err = c.SetNX(ctx, "lock", true, time.Minute)
	if err != nil {
		t.Fatalf("second SetNX: %v", err)
	}
	if won {
		t.Error("second SetNX won while the key was held")
	}

	if err := c.Del(ctx, "lock"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	won, _ = c.SetNX(ctx, "lock", true, time.Minute)
	if !won {
		t.Error("SetNX lost after the key was deleted")
	}
}

func TestMemoryCache_SetNXReclaimsExpired(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, err := c.SetNX(ctx, "lock", true, time.Millisecond); err != nil {
		t.Fatalf("SetNX: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	won, err := c.SetNX(ctx, "lock", true, time.Minute)
	if err != nil {
		t.Fatalf("SetNX after expiry: %v", err)
	}
	if !won {
		t.Error("SetNX lost against an expired entry")
	}
}

func TestMemoryCache_TTL(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.SetJSON(ctx, "k", "v", time.Millisecond); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var out string
	hit, _ := c.GetJSON(ctx, "k", &out)
	if hit {
		t.Error("expired key still readable")
	}
}
