package memory

import "github.com/ghuser/mediashelf/services/media/domain/models"

// SampleBoardGames returns the board games the service can be seeded with.
func SampleBoardGames() []models.BoardGame {
	return []models.BoardGame{
		{Title: "Catan", Price: models.MustPrice("40")},
	}
}

// SampleMovies returns the movies the service can be seeded with.
func SampleMovies() []models.Movie {
	return []models.Movie{
		{Title: "The Bourne Identity", Price: models.MustPrice("3.99"), Minutes: 113},
		{Title: "Oppenheimer", Price: models.MustPrice("17.99"), Minutes: 180},
		{Title: "No Time To Die", Price: models.MustPrice("19.99"), Minutes: 163},
	}
}

// SampleTVShows returns the TV shows the service can be seeded with.
func SampleTVShows() []models.TVShow {
	return []models.TVShow{
		{Title: "Severance", Price: models.MustPrice("2.99"), Minutes: 55},
	}
}

// SampleVideoGames returns the video games served by the video game repository.
func SampleVideoGames() []models.VideoGame {
	return []models.VideoGame{
		{Title: "Batman: Arkham Knight", Price: models.MustPrice("49.99"), Console: models.ConsoleXbox},
		{Title: "The Legend of Zelda: Tears of the Kingdom", Price: models.MustPrice("59.99"), Console: models.ConsoleSwitch},
	}
}

// SampleCardGames returns the card games the playground deals from.
func SampleCardGames() []models.CardGame {
	return []models.CardGame{
		{Title: "Bridge"},
		{Title: "Solitaire"},
	}
}
