package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/blizzardcast/blizzard/pkg/api"
)

func sampleEntry() Entry {
	return Entry{
		Response: api.ForecastResponse{
			Forecast: []float64{100, 110, 120},
			Lower:    []float64{90, 95, 100},
			Upper:    []float64{110, 125, 140},
		},
		GeneratedAt: time.Now(),
	}
}

func TestNewMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if s.Len() != 0 {
		t.Errorf("new store Len() = %d, want 0", s.Len())
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()
	entry := sampleEntry()

	if err := s.Put(context.Background(), "key-1", entry); err != nil {
		t.Fatalf("Put() = %v, want nil", err)
	}

	got, found, err := s.Get(context.Background(), "key-1")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if len(got.Response.Forecast) != len(entry.Response.Forecast) {
		t.Errorf("Forecast length = %d, want %d", len(got.Response.Forecast), len(entry.Response.Forecast))
	}
}

func TestMemoryStoreRejectsEmptyKey(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Put(context.Background(), "", sampleEntry()); err == nil {
		t.Error("Put() with empty key = nil error, want error")
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, found, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if found {
		t.Error("Get() found = true for missing key, want false")
	}
}

func TestMemoryStorePutOverwrites(t *testing.T) {
	s := NewMemoryStore()
	first := sampleEntry()
	if err := s.Put(context.Background(), "key", first); err != nil {
		t.Fatalf("Put() first = %v", err)
	}

	second := sampleEntry()
	second.Response.Forecast = []float64{999}
	if err := s.Put(context.Background(), "key", second); err != nil {
		t.Fatalf("Put() second = %v", err)
	}

	got, _, _ := s.Get(context.Background(), "key")
	if len(got.Response.Forecast) != 1 || got.Response.Forecast[0] != 999 {
		t.Errorf("Get() after overwrite = %v, want the second entry", got.Response.Forecast)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after overwrite", s.Len())
	}
}

func TestMemoryStoreTTLExpiration(t *testing.T) {
	s := NewMemoryStoreWithTTL(100*time.Millisecond, 30*time.Millisecond)
	defer s.Stop()

	entry := sampleEntry()
	if err := s.Put(context.Background(), "ttl-key", entry); err != nil {
		t.Fatalf("Put() = %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	_, found, _ := s.Get(context.Background(), "ttl-key")
	if found {
		t.Error("entry should have expired")
	}
}

func TestMemoryStorePanicsOnInvalidTTL(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewMemoryStoreWithTTL(0, ...) should panic")
		}
	}()
	NewMemoryStoreWithTTL(0, time.Second)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", id)
			if err := s.Put(context.Background(), key, sampleEntry()); err != nil {
				t.Errorf("Put(%s) error = %v", key, err)
			}
			if _, _, err := s.Get(context.Background(), key); err != nil {
				t.Errorf("Get(%s) error = %v", key, err)
			}
		}(i)
	}

	wg.Wait()
	if s.Len() != 20 {
		t.Errorf("Len() = %d, want 20", s.Len())
	}
}

func TestMemoryStoreStopIsIdempotent(t *testing.T) {
	s := NewMemoryStoreWithTTL(time.Minute, time.Second)
	s.Stop()
	s.Stop()
}
