package layout

import (
	"testing"

	"github.com/maine/historical_times/internal/press"
)

func event(id, category string) press.HistoricalEvent {
	return press.HistoricalEvent{ID: id, Title: "T-" + id, Content: "C-" + id, Category: category}
}

func TestBuild(t *testing.T) {
	categories := []press.CategoryDefinition{
		{ID: press.CategoryPolitics, Name: "Politics"},
		{ID: press.CategorySports, Name: "Sports"},
		{ID: press.CategoryWeather, Name: "Weather"},
	}

	events := []press.HistoricalEvent{
		event("a", press.CategorySports),
		event("b", press.CategoryPolitics),
		event("c", press.CategorySports),
		event("d", press.CategoryUncategorized),
	}

	got := Build(events, categories)

	if got.FrontPage.Feature == nil || got.FrontPage.Feature.ID != "a" {
		t.Error("feature must be the first event of the batch")
	}
	if got.FrontPage.Sidebar == nil || got.FrontPage.Sidebar.ID != "b" {
		t.Error("sidebar must be the second event of the batch")
	}

	// Политика, спорт, затем полоса для неклассифицированных. Погода пуста и не верстается.
	wantSections := []struct {
		id  string
		ids []string
	}{
		{press.CategoryPolitics, []string{"b"}},
		{press.CategorySports, []string{"a", "c"}},
		{press.CategoryUncategorized, []string{"d"}},
	}

	if len(got.Sections) != len(wantSections) {
		t.Fatalf("Build() sections = %d, want %d", len(got.Sections), len(wantSections))
	}
	for i, want := range wantSections {
		section := got.Sections[i]
		if section.Category.ID != want.id {
			t.Errorf("section %d category = %q, want %q", i, section.Category.ID, want.id)
		}
		if len(section.Articles) != len(want.ids) {
			t.Fatalf("section %q articles = %d, want %d", want.id, len(section.Articles), len(want.ids))
		}
		for j, id := range want.ids {
			if section.Articles[j].ID != id {
				t.Errorf("section %q article %d = %q, want %q", want.id, j, section.Articles[j].ID, id)
			}
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	got := Build(nil, []press.CategoryDefinition{{ID: press.CategoryPolitics}})

	if got.FrontPage.Feature != nil || got.FrontPage.Sidebar != nil {
		t.Error("empty batch must not produce a front page")
	}
	if len(got.Sections) != 0 {
		t.Errorf("empty batch produced %d sections", len(got.Sections))
	}
}

func TestBuildDeterministic(t *testing.T) {
	categories := press.DefaultCategories()
	events := []press.HistoricalEvent{
		event("a", press.CategoryLocal),
		event("b", press.CategoryBusiness),
	}

	first := Build(events, categories)
	second := Build(events, categories)

	if len(first.Sections) != len(second.Sections) {
		t.Fatal("Build() is not deterministic")
	}
	for i := range first.Sections {
		if first.Sections[i].Category.ID != second.Sections[i].Category.ID {
			t.Error("section order differs between identical calls")
		}
	}
}
