package listing

import "testing"

func TestBuildQueryDefaults(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"empty", "", "", 1, 10},
		{"valid", "3", "25", 3, 25},
		{"zero", "0", "0", 1, 10},
		{"negative", "-5", "-1", 1, 10},
		{"non-numeric", "abc", "x", 1, 10},
		{"mixed", "2", "junk", 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BuildQuery(tt.page, tt.limit, "", "")
			if q.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", q.Page, tt.wantPage)
			}
			if q.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", q.Limit, tt.wantLimit)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 7, 14},
		{100, 1, 99},
	}

	for _, tt := range tests {
		q := Query{Page: tt.page, Limit: tt.limit}
		if got := q.Skip(); got != tt.want {
			t.Errorf("Skip(page=%d, limit=%d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestNamePattern(t *testing.T) {
	tests := []struct {
		search string
		want   string
	}{
		{"", ""},
		{"ryzen", "%ryzen%"},
		{"50%_off", `%50\%\_off%`},
		{`back\slash`, `%back\\slash%`},
	}

	for _, tt := range tests {
		q := Query{Search: tt.search}
		if got := q.NamePattern(); got != tt.want {
			t.Errorf("NamePattern(%q) = %q, want %q", tt.search, got, tt.want)
		}
	}
}

func TestCategoryPattern(t *testing.T) {
	q := Query{Category: "CPU"}
	if got := q.CategoryPattern(); got != "%CPU%" {
		t.Errorf("CategoryPattern = %q, want %%CPU%%", got)
	}

	q = Query{}
	if got := q.CategoryPattern(); got != "" {
		t.Errorf("CategoryPattern = %q, want empty", got)
	}
}
