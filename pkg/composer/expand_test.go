package composer

import (
	"reflect"
	"testing"
)

func TestExpandMinified(t *testing.T) {
	tests := []struct {
		name   string
		deltas []VersionRecord
		want   VersionList
	}{
		{
			name:   "empty input",
			deltas: nil,
			want:   VersionList{},
		},
		{
			name:   "single record passes through",
			deltas: []VersionRecord{{"version": "1.0.0", "license": "MIT"}},
			want:   VersionList{{"version": "1.0.0", "license": "MIT"}},
		},
		{
			name: "fields inherited and overwritten",
			deltas: []VersionRecord{
				{"a": "1", "b": "2"},
				{"b": "3"},
			},
			want: VersionList{
				{"a": "1", "b": "2"},
				{"a": "1", "b": "3"},
			},
		},
		{
			name: "sentinel deletes field",
			deltas: []VersionRecord{
				{"a": "1", "b": "2"},
				{"b": "__unset"},
			},
			want: VersionList{
				{"a": "1", "b": "2"},
				{"a": "1"},
			},
		},
		{
			name: "deleted field stays gone until re-emitted",
			deltas: []VersionRecord{
				{"version": "1.0", "require": "php >=7.4"},
				{"version": "1.1", "require": "__unset"},
				{"version": "1.2"},
				{"version": "2.0", "require": "php >=8.1"},
			},
			want: VersionList{
				{"version": "1.0", "require": "php >=7.4"},
				{"version": "1.1"},
				{"version": "1.2"},
				{"version": "2.0", "require": "php >=8.1"},
			},
		},
		{
			name: "sentinel in first record is kept verbatim",
			deltas: []VersionRecord{
				{"version": "1.0", "extra": "__unset"},
				{"version": "1.1"},
			},
			want: VersionList{
				{"version": "1.0", "extra": "__unset"},
				{"version": "1.1"},
			},
		},
		{
			name: "nested values pass through unexamined",
			deltas: []VersionRecord{
				{"version": "1.0", "source": map[string]any{"url": "https://example.org"}},
				{"version": "1.1"},
			},
			want: VersionList{
				{"version": "1.0", "source": map[string]any{"url": "https://example.org"}},
				{"version": "1.1", "source": map[string]any{"url": "https://example.org"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandMinified(tt.deltas)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandMinified() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandMinified_OrderAndLength(t *testing.T) {
	deltas := []VersionRecord{
		{"version": "3.0.0"},
		{"version": "2.0.0"},
		{"version": "1.0.0"},
	}
	got := ExpandMinified(deltas)
	if len(got) != len(deltas) {
		t.Fatalf("output length = %d, want %d", len(got), len(deltas))
	}
	for i, rec := range got {
		want, _ := deltas[i].Version()
		if v, _ := rec.Version(); v != want {
			t.Errorf("record %d version = %q, want %q", i, v, want)
		}
	}
}

func TestExpandMinified_NoAliasing(t *testing.T) {
	deltas := []VersionRecord{
		{"version": "1.0", "license": "MIT"},
		{"version": "1.1"},
		{"version": "1.2", "license": "BSD"},
	}
	got := ExpandMinified(deltas)

	// Every output record must be an independent snapshot: the accumulator
	// keeps mutating after each append.
	if got[0]["license"] != "MIT" || got[1]["license"] != "MIT" {
		t.Errorf("early records changed after later merges: %v", got)
	}
	got[0]["license"] = "mutated"
	if got[1]["license"] != "MIT" {
		t.Error("mutating one output record leaked into another")
	}
}

func TestExpandMinified_InputNotMutated(t *testing.T) {
	deltas := []VersionRecord{
		{"version": "1.0", "a": "x"},
		{"version": "1.1", "a": "__unset"},
	}
	ExpandMinified(deltas)
	if deltas[1]["a"] != "__unset" {
		t.Error("expansion mutated its input")
	}
}
