package filesource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/christophbittig/network-subnet-assignment/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadRequests_JSON(t *testing.T) {
	path := writeFile(t, "networks.json", `{
  "networks": [
    {"name": "server", "cidr": 24, "vid": 2000},
    {"name": "clients", "cidr": 24, "vid": 2010},
    {"name": "guest", "cidr": 23, "vid": 2021}
  ]
}`)

	got, err := New(path).LoadRequests(context.Background())
	if err != nil {
		t.Fatalf("LoadRequests failed: %v", err)
	}

	want := []domain.AllocationRequest{
		{Name: "server", PrefixLen: 24, VID: 2000},
		{Name: "clients", PrefixLen: 24, VID: 2010},
		{Name: "guest", PrefixLen: 23, VID: 2021},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadRequests_YAML(t *testing.T) {
	path := writeFile(t, "networks.yaml", `networks:
  - name: server
    cidr: 24
    vid: 2000
  - name: guest
    cidr: 23
    vid: 2021
`)

	got, err := New(path).LoadRequests(context.Background())
	if err != nil {
		t.Fatalf("LoadRequests failed: %v", err)
	}
	if len(got) != 2 || got[0].Name != "server" || got[1].PrefixLen != 23 {
		t.Fatalf("unexpected requests: %+v", got)
	}
}

func TestLoadRequests_FileNotFound(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.json")).LoadRequests(context.Background())
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLoadRequests_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "empty_list",
			content: `{"networks": []}`,
			wantErr: ErrEmptyNetworks,
		},
		{
			name:    "no_networks_key",
			content: `{"something": 1}`,
			wantErr: ErrEmptyNetworks,
		},
		{
			name:    "missing_name",
			content: `{"networks": [{"cidr": 24, "vid": 10}]}`,
			wantErr: ErrMissingName,
		},
		{
			name:    "missing_cidr",
			content: `{"networks": [{"name": "server", "vid": 10}]}`,
			wantErr: ErrMissingCIDR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "networks.json", tt.content)
			_, err := New(path).LoadRequests(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadRequests_MalformedJSON(t *testing.T) {
	path := writeFile(t, "networks.json", `{"networks": [`)
	if _, err := New(path).LoadRequests(context.Background()); err == nil {
		t.Fatal("expected error on malformed JSON, got nil")
	}
}
