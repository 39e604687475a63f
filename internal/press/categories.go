package press

// Идентификаторы рубрик, которые модель обязана использовать в поле category.
const (
	CategoryPolitics      = "politics"
	CategoryInternational = "international"
	CategoryLocal         = "local"
	CategoryEntertainment = "entertainment"
	CategorySports        = "sports"
	CategoryBusiness      = "business"
	CategoryScience       = "science"
	CategoryWeather       = "weather"
	CategoryTechnology    = "technology"

	// CategoryUncategorized — служебная рубрика для статей, чья категория
	// не входит в фиксированный перечень. В перечень для модели не входит.
	CategoryUncategorized = "uncategorized"
)

var knownCategories = map[string]struct{}{
	CategoryPolitics:      {},
	CategoryInternational: {},
	CategoryLocal:         {},
	CategoryEntertainment: {},
	CategorySports:        {},
	CategoryBusiness:      {},
	CategoryScience:       {},
	CategoryWeather:       {},
	CategoryTechnology:    {},
}

// IsValidCategory сообщает, входит ли категория в фиксированный перечень.
func IsValidCategory(category string) bool {
	_, ok := knownCategories[category]
	return ok
}

// CategoryIDs возвращает перечень идентификаторов в порядке объявления.
// Используется при подстановке списка категорий в промпт.
func CategoryIDs() []string {
	return []string{
		CategoryPolitics,
		CategoryInternational,
		CategoryLocal,
		CategoryEntertainment,
		CategorySports,
		CategoryBusiness,
		CategoryScience,
		CategoryWeather,
		CategoryTechnology,
	}
}

// DefaultCategories — рубрики выпуска в порядке вёрстки полос.
func DefaultCategories() []CategoryDefinition {
	return []CategoryDefinition{
		{ID: CategoryPolitics, Name: "Politics", Description: "Political news and governmental affairs"},
		{ID: CategoryInternational, Name: "International", Description: "World news and global events"},
		{ID: CategoryLocal, Name: "Local", Description: "New York City news and events"},
		{ID: CategoryEntertainment, Name: "Arts & Entertainment", Description: "Culture, arts, and entertainment news"},
		{ID: CategorySports, Name: "Sports", Description: "Sports news and athletic achievements"},
		{ID: CategoryBusiness, Name: "Business", Description: "Business and financial news"},
		{ID: CategoryScience, Name: "Science", Description: "Scientific discoveries and advancements"},
		{ID: CategoryWeather, Name: "Weather", Description: "Weather forecasts and conditions"},
	}
}

// UncategorizedSection — полоса для статей с категорией вне перечня.
func UncategorizedSection() CategoryDefinition {
	return CategoryDefinition{
		ID:          CategoryUncategorized,
		Name:        "Other News",
		Description: "Stories that did not match a regular section",
	}
}
