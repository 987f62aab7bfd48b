package outbound

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

func TestSuggestDisabledWithoutKey(t *testing.T) {
	client := NewSuggestClient("http://example.invalid", "", time.Second)
	if client.Enabled() {
		t.Fatal("expected client without key to be disabled")
	}

	suggestions, err := client.Suggest(context.Background(), "delhi")
	if err != nil || suggestions != nil {
		t.Fatalf("disabled client must be a silent no-op, got %v, %v", suggestions, err)
	}
}

func TestSuggestValidatesAndDedups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck
		w.Write([]byte(`[
			{"iata":"DEL","city":"Delhi","name":"Indira Gandhi International Airport"},
			{"iata":"DEL","city":"Delhi","name":"duplicate"},
			{"iata":"","city":"Nowhere"},
			{"iata":"XYZ","city":""}
		]`))
	}))
	defer server.Close()

	client := NewSuggestClient(server.URL, "test-key", time.Second)
	suggestions, err := client.Suggest(context.Background(), "delhi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 valid suggestion after dedup, got %d", len(suggestions))
	}
	if suggestions[0].IATA != "DEL" {
		t.Fatalf("expected DEL, got %s", suggestions[0].IATA)
	}
}

func TestSuggestSurfacesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewSuggestClient(server.URL, "test-key", time.Second)
	if _, err := client.Suggest(context.Background(), "delhi"); err == nil {
		t.Fatal("expected an error from a failing upstream")
	}
}

func TestLiveStatesFiltersGroundedAndLow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck
		w.Write([]byte(`{"states":[
			["abc","AI101  ",null,null,null,77.1,28.5,null,false,230.5,null,null,null,9500.0],
			["def","6E202  ",null,null,null,77.2,28.6,null,true,120.0,null,null,null,200.0],
			["ghi","UK303  ",null,null,null,77.3,28.7,null,false,180.0,null,null,null,500.0],
			["jkl","EK404  ",null,null,null,77.4,28.8,null,false,250.0,null,null,null,11000.0]
		]}`))
	}))
	defer server.Close()

	client := NewLiveClient(server.URL, time.Second)
	airport := entity.Airport{IATA: "DEL", Lat: 28.5562, Lon: 77.1}

	states, err := client.States(context.Background(), airport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("expected 2 airborne states, got %d", len(states))
	}
	if states[0].Callsign != "AI101" {
		t.Errorf("expected trimmed callsign AI101, got %q", states[0].Callsign)
	}
	if states[1].Altitude != 11000 {
		t.Errorf("expected altitude 11000, got %f", states[1].Altitude)
	}
}

func TestLiveStatesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		//nolint:errcheck
		w.Write([]byte(`{"states": "not-an-array"`))
	}))
	defer server.Close()

	client := NewLiveClient(server.URL, time.Second)
	if _, err := client.States(context.Background(), entity.Airport{}); err == nil {
		t.Fatal("expected decode error")
	}
}
