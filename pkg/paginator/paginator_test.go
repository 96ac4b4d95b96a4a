package paginator

import "testing"

func TestAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   PaginateQuery
		want PaginateQuery
	}{
		{"zero", PaginateQuery{}, PaginateQuery{Page: 1, Limit: DefaultLimit}},
		{"negative page", PaginateQuery{Page: -3, Limit: 10}, PaginateQuery{Page: 1, Limit: 10}},
		{"over max", PaginateQuery{Page: 2, Limit: 500}, PaginateQuery{Page: 2, Limit: MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			if q != tt.want {
				t.Errorf("Adjust() = %+v, want %+v", q, tt.want)
			}
		})
	}
}

func TestOffsetAndNext(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 20}
	if got := q.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
	if next := q.Next(); next.Page != 4 || next.Limit != 20 {
		t.Errorf("Next() = %+v", next)
	}
}

func TestToResponse(t *testing.T) {
	p := Paginator{Total: 41, Count: 1, PerPage: 20, CurrentPage: 3}
	resp := p.ToResponse()

	if resp.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
	}
	if resp.HasNext {
		t.Error("last page should not have a next page")
	}
	if !resp.HasPrev {
		t.Error("page 3 should have a previous page")
	}
}
