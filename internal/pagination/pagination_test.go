package pagination

import "testing"

func TestPageRequestDefaults(t *testing.T) {
	var req PageRequest
	req.Defaults()

	if req.Page != 1 {
		t.Errorf("default page = %d, want 1", req.Page)
	}
	if req.PageSize != 20 {
		t.Errorf("default page size = %d, want 20", req.PageSize)
	}

	explicit := PageRequest{Page: 3, PageSize: 50}
	explicit.Defaults()
	if explicit.Page != 3 || explicit.PageSize != 50 {
		t.Errorf("explicit values were overwritten: %+v", explicit)
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	t.Run("first page", func(t *testing.T) {
		resp := Paginate(items, PageRequest{})
		if len(resp.Data) != 20 || resp.Data[0] != 0 {
			t.Errorf("unexpected first page: len=%d", len(resp.Data))
		}
		if resp.TotalItems != 45 || resp.TotalPages != 3 {
			t.Errorf("totals = %d items %d pages, want 45/3", resp.TotalItems, resp.TotalPages)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 3, PageSize: 20})
		if len(resp.Data) != 5 || resp.Data[0] != 40 {
			t.Errorf("unexpected last page: len=%d", len(resp.Data))
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 9, PageSize: 20})
		if len(resp.Data) != 0 {
			t.Errorf("got %d items past the end", len(resp.Data))
		}
		if resp.Data == nil {
			t.Error("empty page serialized as null")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		resp := Paginate([]int{}, PageRequest{})
		if resp.TotalItems != 0 || resp.TotalPages != 0 {
			t.Errorf("unexpected totals for empty input: %+v", resp)
		}
	})
}
