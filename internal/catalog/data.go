package catalog

import "cinequery/searchservice/internal/domain"

// Default returns the built-in catalog used by the offline provider. The set
// is intentionally small: it exists to give the heuristic scorer something
// meaningful to rank when every network provider is down.
func Default() *Catalog {
	return New([]Entry{
		{
			Title:     "Hidden Figures",
			Year:      2016,
			Plot:      "The story of a team of female African-American mathematicians who served a vital role in NASA during the early years of the U.S. space program.",
			Genres:    []string{"Biography", "Drama"},
			Keywords:  []string{"inspiring", "true story", "nasa", "space", "mathematics"},
			Cast:      []string{"Taraji P. Henson", "Octavia Spencer", "Janelle Monae"},
			Director:  "Theodore Melfi",
			Rating:    7.8,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "Apollo 13",
			Year:      1995,
			Plot:      "NASA must devise a strategy to return Apollo 13 to Earth safely after the spacecraft undergoes massive internal damage.",
			Genres:    []string{"Adventure", "Drama"},
			Keywords:  []string{"space", "nasa", "true story", "survival"},
			Cast:      []string{"Tom Hanks", "Bill Paxton", "Kevin Bacon"},
			Director:  "Ron Howard",
			Rating:    7.7,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "Interstellar",
			Year:      2014,
			Plot:      "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			Genres:    []string{"Adventure", "Drama", "Sci-Fi"},
			Keywords:  []string{"space", "wormhole", "time dilation", "astronaut"},
			Cast:      []string{"Matthew McConaughey", "Anne Hathaway", "Jessica Chastain"},
			Director:  "Christopher Nolan",
			Rating:    8.7,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "Inception",
			Year:      2010,
			Plot:      "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a CEO.",
			Genres:    []string{"Action", "Sci-Fi", "Thriller"},
			Keywords:  []string{"dream", "heist", "mind bending", "subconscious"},
			Cast:      []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"},
			Director:  "Christopher Nolan",
			Rating:    8.8,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "The Shawshank Redemption",
			Year:      1994,
			Plot:      "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Genres:    []string{"Drama"},
			Keywords:  []string{"inspiring", "prison", "friendship", "hope"},
			Cast:      []string{"Tim Robbins", "Morgan Freeman"},
			Director:  "Frank Darabont",
			Rating:    9.3,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "Rocky",
			Year:      1976,
			Plot:      "A small-time Philadelphia boxer gets a supremely rare chance to fight the world heavyweight champion.",
			Genres:    []string{"Drama", "Sport"},
			Keywords:  []string{"inspiring", "underdog", "boxing"},
			Cast:      []string{"Sylvester Stallone", "Talia Shire"},
			Director:  "John G. Avildsen",
			Rating:    8.1,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "Paddington 2",
			Year:      2017,
			Plot:      "Paddington picks up a series of odd jobs to buy the perfect present for his aunt, but the gift is stolen.",
			Genres:    []string{"Adventure", "Comedy", "Family"},
			Keywords:  []string{"family", "bear", "heartwarming", "london"},
			Cast:      []string{"Ben Whishaw", "Hugh Grant", "Sally Hawkins"},
			Director:  "Paul King",
			Rating:    7.8,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "Toy Story",
			Year:      1995,
			Plot:      "A cowboy doll is profoundly threatened and jealous when a new spaceman action figure supplants him as top toy in a boy's bedroom.",
			Genres:    []string{"Animation", "Comedy", "Family"},
			Keywords:  []string{"family", "toys", "friendship", "animation"},
			Cast:      []string{"Tom Hanks", "Tim Allen"},
			Director:  "John Lasseter",
			Rating:    8.3,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "The Grand Budapest Hotel",
			Year:      2014,
			Plot:      "A writer encounters the owner of an aging high-class hotel, who tells him of his early years serving as a lobby boy under an exceptional concierge.",
			Genres:    []string{"Adventure", "Comedy", "Crime"},
			Keywords:  []string{"hotel", "quirky", "caper"},
			Cast:      []string{"Ralph Fiennes", "F. Murray Abraham", "Tony Revolori"},
			Director:  "Wes Anderson",
			Rating:    8.1,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "Groundhog Day",
			Year:      1993,
			Plot:      "A weatherman finds himself inexplicably living the same day over and over again.",
			Genres:    []string{"Comedy", "Fantasy", "Romance"},
			Keywords:  []string{"time loop", "comedy", "self improvement"},
			Cast:      []string{"Bill Murray", "Andie MacDowell"},
			Director:  "Harold Ramis",
			Rating:    8.0,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "Breaking Bad",
			Year:      2008,
			Plot:      "A chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing methamphetamine to secure his family's future.",
			Genres:    []string{"Crime", "Drama", "Thriller"},
			Keywords:  []string{"crime", "transformation", "antihero"},
			Cast:      []string{"Bryan Cranston", "Aaron Paul", "Anna Gunn"},
			Director:  "Vince Gilligan",
			Rating:    9.5,
			MediaType: domain.MediaTypeTV,
		},
		{
			Title:     "Planet Earth",
			Year:      2006,
			Plot:      "A documentary series on the wildlife found on Earth, with an emphasis on the planet's rarest creatures and places.",
			Genres:    []string{"Documentary", "Family"},
			Keywords:  []string{"nature", "wildlife", "documentary"},
			Cast:      []string{"David Attenborough"},
			Director:  "Alastair Fothergill",
			Rating:    9.4,
			MediaType: domain.MediaTypeTV,
		},
		{
			Title:     "Dead Poets Society",
			Year:      1989,
			Plot:      "An English teacher inspires his students to look at poetry with a different perspective of authentic knowledge and feelings.",
			Genres:    []string{"Comedy", "Drama"},
			Keywords:  []string{"inspiring", "teacher", "coming of age", "poetry"},
			Cast:      []string{"Robin Williams", "Ethan Hawke", "Robert Sean Leonard"},
			Director:  "Peter Weir",
			Rating:    8.1,
			MediaType: domain.MediaTypeMovie,
		},
		{
			Title:     "The Martian",
			Year:      2015,
			Plot:      "An astronaut becomes stranded on Mars and must rely on his ingenuity to find a way to signal to Earth that he is alive.",
			Genres:    []string{"Adventure", "Drama", "Sci-Fi"},
			Keywords:  []string{"space", "survival", "mars", "astronaut"},
			Cast:      []string{"Matt Damon", "Jessica Chastain", "Chiwetel Ejiofor"},
			Director:  "Ridley Scott",
			Rating:    8.0,
			MediaType: domain.MediaTypeMovie,
		},
	})
}
