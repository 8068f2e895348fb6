package knowledge

import "cinequery/searchservice/internal/domain"

const sourceName = "knowledge-base"

func kbResult(title string, year int, description string, rating float64, genres []string, mediaType domain.MediaType, confidence float64) domain.CandidateResult {
	return domain.CandidateResult{
		Title:       title,
		Year:        year,
		Description: description,
		Rating:      rating,
		Genres:      genres,
		MediaType:   mediaType,
		Source:      sourceName,
		Confidence:  confidence,
	}
}

// Default returns the built-in curated base. Entries are ordered from the
// most specific phrase to the most generic so partial lookups stay
// predictable.
func Default() *Base {
	return New([]Entry{
		{
			Phrase: "movies or tv shows that require a lot of thinking",
			Results: []domain.CandidateResult{
				kbResult("Donnie Darko", 2001, "A troubled teenager is plagued by visions of a man in a rabbit suit who manipulates him into committing a series of crimes.", 8.0, []string{"Drama", "Mystery", "Sci-Fi"}, domain.MediaTypeMovie, 95),
				kbResult("Black Mirror", 2011, "An anthology series exploring a twisted, high-tech multiverse where humanity's greatest innovations collide with its darkest instincts.", 8.7, []string{"Drama", "Sci-Fi", "Thriller"}, domain.MediaTypeTV, 95),
				kbResult("The Wire", 2002, "The Baltimore drug scene, seen through the eyes of drug dealers and law enforcement.", 9.3, []string{"Crime", "Drama", "Thriller"}, domain.MediaTypeTV, 94),
				kbResult("Breaking Bad", 2008, "A chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing methamphetamine to secure his family's future.", 9.5, []string{"Crime", "Drama", "Thriller"}, domain.MediaTypeTV, 94),
				kbResult("Memento", 2000, "A man with short-term memory loss attempts to track down his wife's murderer.", 8.4, []string{"Mystery", "Thriller"}, domain.MediaTypeMovie, 93),
				kbResult("Inception", 2010, "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a CEO.", 8.8, []string{"Action", "Sci-Fi", "Thriller"}, domain.MediaTypeMovie, 93),
			},
		},
		{
			Phrase: "movies of a man age backwards",
			Results: []domain.CandidateResult{
				kbResult("The Curious Case of Benjamin Button", 2008, "Tells the story of Benjamin Button, a man who starts aging backwards with consequences.", 7.8, []string{"Drama", "Fantasy", "Romance"}, domain.MediaTypeMovie, 96),
			},
		},
		{
			Phrase: "movies about dreams within dreams",
			Results: []domain.CandidateResult{
				kbResult("Inception", 2010, "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a CEO.", 8.8, []string{"Action", "Sci-Fi", "Thriller"}, domain.MediaTypeMovie, 97),
				kbResult("Paprika", 2006, "When a machine that allows therapists to enter their patients' dreams is stolen, all hell breaks loose.", 7.7, []string{"Animation", "Fantasy", "Mystery"}, domain.MediaTypeMovie, 92),
			},
		},
		{
			Phrase: "shows like breaking bad",
			Results: []domain.CandidateResult{
				kbResult("Better Call Saul", 2015, "The trials and tribulations of criminal lawyer Jimmy McGill before he becomes Saul Goodman.", 9.0, []string{"Crime", "Drama"}, domain.MediaTypeTV, 98),
				kbResult("Ozark", 2017, "A financial advisor drags his family from Chicago to the Missouri Ozarks, where he must launder money to appease a drug boss.", 8.5, []string{"Crime", "Drama", "Thriller"}, domain.MediaTypeTV, 93),
				kbResult("Narcos", 2015, "The true story of the growth and spread of cocaine drug cartels across the globe.", 8.8, []string{"Biography", "Crime", "Drama"}, domain.MediaTypeTV, 92),
			},
		},
		{
			Phrase: "movies where the twist changes everything",
			Results: []domain.CandidateResult{
				kbResult("The Sixth Sense", 1999, "A frightened boy who communicates with spirits seeks the help of a disheartened child psychologist.", 8.2, []string{"Drama", "Mystery", "Thriller"}, domain.MediaTypeMovie, 96),
				kbResult("The Usual Suspects", 1995, "The sole survivor of a pier shoot-out tells the story of how a notorious criminal influenced the events.", 8.5, []string{"Crime", "Drama", "Mystery"}, domain.MediaTypeMovie, 95),
				kbResult("Fight Club", 1999, "An insomniac office worker and a soap maker form an underground fight club that evolves into something much more.", 8.8, []string{"Drama"}, domain.MediaTypeMovie, 93),
			},
		},
		{
			Phrase: "feel good movies for a rainy day",
			Results: []domain.CandidateResult{
				kbResult("Paddington 2", 2017, "Paddington picks up a series of odd jobs to buy the perfect present, but it is stolen.", 7.8, []string{"Adventure", "Comedy", "Family"}, domain.MediaTypeMovie, 94),
				kbResult("Amelie", 2001, "A shy waitress decides to change the lives of those around her for the better, while struggling with her own isolation.", 8.3, []string{"Comedy", "Romance"}, domain.MediaTypeMovie, 93),
				kbResult("Chef", 2014, "A head chef quits his restaurant job and buys a food truck in an effort to reclaim his creative promise.", 7.3, []string{"Comedy", "Drama"}, domain.MediaTypeMovie, 90),
			},
		},
	})
}
