package view

import (
	"sync"
	"testing"
	"time"
)

func TestStore_MutatorsResetPage(t *testing.T) {
	cases := []struct {
		name string
		call func(*Store)
	}{
		{"SetSort", func(s *Store) { s.SetSort(SortPriceAsc) }},
		{"ToggleCategory", func(s *Store) { s.ToggleCategory("beauty") }},
		{"ToggleBrand", func(s *Store) { s.ToggleBrand("Essence") }},
		{"SetPriceMin", func(s *Store) { s.SetPriceMin(f(5)) }},
		{"SetPriceMax", func(s *Store) { s.SetPriceMax(f(50)) }},
		{"ToggleInStockOnly", func(s *Store) { s.ToggleInStockOnly() }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			initial := DefaultParams()
			initial.Page = 5
			s := NewStore(initial)
			t.Cleanup(s.Close)

			tc.call(s)
			if got := s.Params().Page; got != 1 {
				t.Fatalf("Page = %d, want 1 after %s", got, tc.name)
			}
		})
	}
}

func TestStore_SetPageLeavesOtherFieldsAlone(t *testing.T) {
	initial := ParseQuery("q=desk&sort=price_desc&cat=furniture&stock=1")
	s := NewStore(initial)
	t.Cleanup(s.Close)

	s.SetPage(3)

	p := s.Params()
	if p.Page != 3 {
		t.Fatalf("Page = %d, want 3", p.Page)
	}
	if p.CommittedSearch != "desk" || p.Sort != SortPriceDesc || !p.InStockOnly {
		t.Fatalf("SetPage disturbed other fields: %+v", p)
	}

	s.SetPage(0)
	if got := s.Params().Page; got != 1 {
		t.Fatalf("Page = %d, want 1 for out-of-range request", got)
	}
}

func TestStore_ToggleIsSymmetric(t *testing.T) {
	s := NewStore(DefaultParams())
	t.Cleanup(s.Close)

	s.ToggleCategory("beauty")
	s.ToggleCategory("groceries")
	s.ToggleCategory("beauty")

	p := s.Params()
	if len(p.Categories) != 1 || p.Categories[0] != "groceries" {
		t.Fatalf("Categories = %v, want [groceries]", p.Categories)
	}
}

func TestStore_ClearAllIsIdempotent(t *testing.T) {
	s := NewStore(ParseQuery("q=desk&page=9&sort=rating_desc&brand=Apple&pmin=3"))
	t.Cleanup(s.Close)

	s.ClearAll()
	first := s.Params()
	s.ClearAll()
	second := s.Params()

	if !first.Equal(DefaultParams()) {
		t.Fatalf("ClearAll produced %+v, want defaults", first)
	}
	if !first.Equal(second) {
		t.Fatalf("second ClearAll produced %+v, want %+v", second, first)
	}
}

func TestStore_DebounceCommitsOnlyFinalValue(t *testing.T) {
	s := NewStore(DefaultParams())
	s.debounce = 40 * time.Millisecond
	t.Cleanup(s.Close)

	var mu sync.Mutex
	var commits []string
	s.Subscribe(func(p Params) {
		mu.Lock()
		defer mu.Unlock()
		if len(commits) == 0 || commits[len(commits)-1] != p.CommittedSearch {
			commits = append(commits, p.CommittedSearch)
		}
	})

	for _, text := range []string{"l", "la", "lam", "lamp", "lamp "} {
		s.SetSearchText(text)
		time.Sleep(2 * time.Millisecond)
	}

	// Raw text is visible immediately, commit has not happened yet.
	p := s.Params()
	if p.SearchText != "lamp " {
		t.Fatalf("SearchText = %q, want raw final input", p.SearchText)
	}
	if p.CommittedSearch != "" {
		t.Fatalf("CommittedSearch = %q, want empty before the quiet period", p.CommittedSearch)
	}

	time.Sleep(120 * time.Millisecond)

	p = s.Params()
	if p.CommittedSearch != "lamp" {
		t.Fatalf("CommittedSearch = %q, want trimmed %q", p.CommittedSearch, "lamp")
	}
	if p.Page != 1 {
		t.Fatalf("Page = %d, want reset to 1 on commit", p.Page)
	}

	mu.Lock()
	defer mu.Unlock()
	var nonEmpty int
	for _, c := range commits {
		if c != "" {
			nonEmpty++
		}
	}
	if nonEmpty != 1 {
		t.Fatalf("committed %d distinct values %v, want exactly one", nonEmpty, commits)
	}
}

func TestStore_DebounceRestartsPerKeystroke(t *testing.T) {
	s := NewStore(DefaultParams())
	s.debounce = 50 * time.Millisecond
	t.Cleanup(s.Close)

	s.SetSearchText("a")
	time.Sleep(30 * time.Millisecond)
	s.SetSearchText("ab")
	time.Sleep(30 * time.Millisecond)

	// 60ms after the first call, but only 30ms after the second: the
	// window restarted, so nothing is committed yet.
	if got := s.Params().CommittedSearch; got != "" {
		t.Fatalf("CommittedSearch = %q, want empty while typing continues", got)
	}

	time.Sleep(60 * time.Millisecond)
	if got := s.Params().CommittedSearch; got != "ab" {
		t.Fatalf("CommittedSearch = %q, want ab", got)
	}
}

func TestStore_ClearAllCancelsPendingCommit(t *testing.T) {
	s := NewStore(DefaultParams())
	s.debounce = 40 * time.Millisecond
	t.Cleanup(s.Close)

	s.SetSearchText("lamp")
	s.ClearAll()

	time.Sleep(100 * time.Millisecond)

	p := s.Params()
	if p.SearchText != "" || p.CommittedSearch != "" {
		t.Fatalf("search = (%q, %q), want cleared with no late commit", p.SearchText, p.CommittedSearch)
	}
}

func TestStore_SubscribeSeesEveryChange(t *testing.T) {
	s := NewStore(DefaultParams())
	t.Cleanup(s.Close)

	var got []SortKey
	s.Subscribe(func(p Params) { got = append(got, p.Sort) })

	s.SetSort(SortPriceAsc)
	s.SetSort(SortRatingDesc)

	if len(got) != 2 || got[0] != SortPriceAsc || got[1] != SortRatingDesc {
		t.Fatalf("listener saw %v, want both changes in order", got)
	}
}
