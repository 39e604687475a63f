package fallback

import "github.com/maine/historical_times/internal/press"

// DefaultEvents возвращает фиксированный набор статей за 1924 год — по одной
// на основные рубрики. Набор служит выпуском «режима разработки», когда ключ
// API не настроен, и страховкой при любом сбое генерации.
func (s *Store) DefaultEvents() []press.HistoricalEvent {
	return []press.HistoricalEvent{
		{
			ID:          "politics-1",
			Title:       "PRESIDENT COOLIDGE SIGNS NEW IMMIGRATION ACT",
			Content:     "President Calvin Coolidge today signed the Immigration Act of 1924, dramatically restricting immigration into the United States. The new law establishes quotas based on national origin, significantly reducing immigration from Southern and Eastern Europe while completely excluding immigrants from Asia. Supporters argue the measure will preserve American culture and protect American workers, while critics contend it unfairly discriminates against certain nationalities. The legislation represents one of the most significant changes to U.S. immigration policy in the nation's history, effectively ending the era of mass immigration from Europe.",
			Category:    press.CategoryPolitics,
			ImagePrompt: "President Calvin Coolidge signing the Immigration Act of 1924 at his desk in the White House, black and white historical photograph",
			Byline:      "Thomas Reynolds, Historical Times Staff",
		},
		{
			ID:          "international-1",
			Title:       "LENIN'S DEATH PROMPTS POWER STRUGGLE IN SOVIET RUSSIA",
			Content:     "The recent death of Vladimir Lenin has thrown Soviet Russia into political uncertainty as a power struggle emerges among top Bolshevik leaders. Joseph Stalin has begun consolidating power as General Secretary of the Communist Party, while Leon Trotsky, once considered Lenin's natural successor, appears to be losing influence. Reports from Moscow suggest Stalin is forming alliances with other Politburo members Grigory Zinoviev and Lev Kamenev to isolate Trotsky. Western observers are watching closely as this internal conflict could determine the future direction of the world's first communist state, now entering its seventh year since the 1917 revolution.",
			Category:    press.CategoryInternational,
			ImagePrompt: "A solemn crowd gathered in Moscow's Red Square for Lenin's funeral in 1924, with Soviet flags and Bolshevik leaders visible, historical black and white photograph",
			Byline:      "Frederick Williams, Foreign Correspondent",
		},
		{
			ID:          "sports-1",
			Title:       "OLYMPICS OPEN IN PARIS WITH GRAND CEREMONY",
			Content:     "The VIII Olympic Games commenced yesterday in Paris with an opening ceremony at the newly constructed Colombes Stadium. Nearly 3,000 athletes from 44 nations paraded before a capacity crowd of 45,000 spectators. The United States team, 299 strong, received warm applause as they marched past the reviewing stand. French organizing committee president Comte de Clary declared the games officially open, followed by the release of 10,000 pigeons symbolizing peace. These Olympics mark the first since the Great War, with Germany notably absent due to its exclusion following the conflict. Competition begins today with swimming and athletics events expected to draw the largest crowds.",
			Category:    press.CategorySports,
			ImagePrompt: "The opening ceremony of the 1924 Paris Olympics at Colombes Stadium with athletes parading with national flags, black and white historical photograph",
			Byline:      "James Sullivan, Sports Department",
		},
		{
			ID:          "local-1",
			Title:       "SUBWAY FARE REMAINS 5 CENTS DESPITE FINANCIAL TROUBLES",
			Content:     "The New York Transit Commission announced yesterday that the subway fare will remain at five cents despite mounting financial pressures on the system. Mayor John Francis Hylan has steadfastly opposed any increase, arguing that affordable transportation is essential for working-class New Yorkers. However, transit officials warn that the fixed fare, unchanged since the subway's opening in 1904, is becoming increasingly unsustainable as operational costs rise. The Commission reports that passenger volume has grown substantially in recent years, with daily ridership now exceeding 1.3 million. Plans for system expansion continue despite the financial constraints, with new lines under construction to serve growing neighborhoods in outer boroughs.",
			Category:    press.CategoryLocal,
			ImagePrompt: "Crowded New York City subway platform in 1924 with passengers in period clothing boarding a train, black and white historical photograph",
			Byline:      "Eleanor Davis, Metropolitan Desk",
		},
		{
			ID:          "entertainment-1",
			Title:       `CHAPLIN'S "THE GOLD RUSH" DELIGHTS FIRST AUDIENCES`,
			Content:     "Charlie Chaplin's latest motion picture, 'The Gold Rush,' premiered to enthusiastic audiences this weekend. The film, which Chaplin both directed and stars in, follows his famous 'Little Tramp' character as he seeks fortune in the Alaskan gold fields. Critics are hailing it as possibly his finest work to date, particularly praising the now-famous scene in which Chaplin's character cooks and eats his own shoe. The elaborate production reportedly cost nearly $1 million to create, an extraordinary sum reflecting Chaplin's meticulous approach and artistic control. Theater owners report long lines and sold-out showings, confirming Chaplin's enduring popularity with the movie-going public.",
			Category:    press.CategoryEntertainment,
			ImagePrompt: "Charlie Chaplin in costume as the Little Tramp in a scene from The Gold Rush (1924), black and white historical still photograph",
			Byline:      "Margaret Windsor, Arts & Leisure",
		},
		{
			ID:          "weather-1",
			Title:       "FAIR WEATHER EXPECTED TO CONTINUE THROUGH WEEK",
			Content:     "The Weather Bureau forecasts continued fair conditions for New York City and vicinity through the remainder of the week. Temperatures are expected to reach the mid-70s during daytime hours with overnight lows in the pleasant mid-50s. Light northeasterly winds will provide comfortable conditions for outdoor activities. The favorable weather comes as a relief following last week's unexpected heavy rainfall that caused minor flooding in parts of Lower Manhattan and Brooklyn. Weather Bureau Chief Willis Gregg notes that conditions remain ideal for the season, though farmers in upstate regions continue to express concern about lower-than-average rainfall affecting crops.",
			Category:    press.CategoryWeather,
			ImagePrompt: "New Yorkers enjoying a sunny day in Central Park in 1924, with women in long dresses and men in suits and hats, black and white historical photograph",
			Byline:      "Harold Jenkins, Weather Bureau Correspondent",
		},
	}
}
