package mappers

import (
	"context"
	"testing"

	"webfetch-api/core/tools"
)

type stubRetriever struct{}

func (stubRetriever) CheckInternet(ctx context.Context) string     { return "" }
func (stubRetriever) Scrape(ctx context.Context, url string) string { return "" }
func (stubRetriever) ResetCache(ctx context.Context) string        { return "" }

func TestToToolList(t *testing.T) {
	ops := tools.NewDispatcher(stubRetriever{}).Operations()

	list := ToToolList(ops)

	if len(list.Tools) != len(ops) {
		t.Fatalf("len(Tools) = %d, want %d", len(list.Tools), len(ops))
	}
	for i, op := range ops {
		got := list.Tools[i]
		if got.Name != op.Name || got.Description != op.Description {
			t.Errorf("Tools[%d] = %+v, want %s", i, got, op.Name)
		}
		if got.Parameters["type"] != "object" {
			t.Errorf("Tools[%d] parameters not carried over", i)
		}
	}
}

func TestToToolList_Empty(t *testing.T) {
	list := ToToolList(nil)

	if list.Tools == nil || len(list.Tools) != 0 {
		t.Errorf("empty list should marshal as [], got %#v", list.Tools)
	}
}
