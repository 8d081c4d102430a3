package classifier

// Stage prompts. Each pass sends one batch of video metadata and expects a
// JSON array with exactly one verdict per input, in input order.

const contentSystemPrompt = `You classify video metadata by content type.

For each video in the input array, determine:
1. content_type: ONE of MOVIE, TRAILER, REVIEW, PROMO, TEST, ESSAY, OTHER
   - MOVIE: full-length feature film (narrative story, 45+ minutes)
   - TRAILER: preview or teaser for a movie (typically 1-5 minutes)
   - REVIEW: analysis, critique, or discussion about movies
   - PROMO: promotional content (channel idents, network promos, ads)
   - TEST: technical tests (camera, lens, VFX breakdowns)
   - ESSAY: video essays about film or cinema
   - OTHER: does not fit the above
2. content_confidence: float 0.0-1.0
3. content_reasoning: 1-2 sentence explanation

Red flags for non-movies: titles containing "trailer", "promo", "review",
"breakdown", "test", "essay", "recap"; very short duration; descriptions
mentioning "client:", "agency:", "shot on", "VFX".
Green flags for movies: duration 45-180 minutes, plot or story elements in
the description, character names, vocabulary like "starring", "directed by",
"film noir", "drama".

Respond with ONLY a valid JSON array of objects in the same order as the
input, one object per video, each with keys content_type,
content_confidence, content_reasoning.`

const narrativeSystemPrompt = `These videos were classified as MOVIE in an
initial screening. Verify whether each is a genuine feature-length narrative
film.

For each video, determine:
1. is_feature_film: true/false
   - true if it is a narrative, character-driven story of 40+ minutes with
     theatrical release quality
   - false if it is a documentary about films, a compilation, a short film,
     or a music video
2. has_narrative: true/false (does it tell a story with characters and plot,
   or is it experimental, abstract, or documentary?)
3. narrative_confidence: float 0.0-1.0
4. film_reasoning: 2-3 sentence explanation citing specific evidence

Positive indicators: plot synopsis in the description, character names,
genre keywords (drama, comedy, thriller, western, noir, horror, sci-fi),
duration 40-180 minutes, "starring", "directed by", "screenplay".
Negative indicators: "documentary about", "supercut", "compilation",
"montage", "music video", "concert film", instructional content, modern
creator-style descriptions.

Respond with ONLY a valid JSON array in input order, one object per video,
each with keys is_feature_film, has_narrative, narrative_confidence,
film_reasoning.`

const eraSystemPrompt = `These are verified feature-length narrative films.
Determine each film's production era and studio authenticity.

For each video, determine:
1. estimated_production_year: best guess of the PRODUCTION year, not the
   upload date; null if truly uncertain
2. estimated_era: decade string, one of "1900s" through "1980s" or "modern"
3. is_pre_1965: true/false; be conservative and mark true only with good
   evidence
4. production_company: studio or production company name, or null
5. is_formal_studio: true if produced by a recognized studio (major or
   established independent), false if amateur, modern indie, or uncertain
6. genre: primary genre (drama, comedy, thriller, horror, western, noir,
   sci-fi, romance, war, crime, musical)
7. quality_score: integer 1-10; how confident are you this is a genuine
   classic movie worth watching? 8-10 highly confident, 5-7 probable with
   some uncertainty, 1-4 uncertain or likely not a true classic
8. era_reasoning: 2-3 sentences explaining the era and studio determination

Evidence to look for: a year in the title, era descriptors ("silent film",
"pre-code", "golden age"), known classic titles, classic-era actor and
director names, studio mentions, "public domain" or "copyright expired".

Respond with ONLY a valid JSON array in input order, one object per video,
each with keys estimated_production_year, estimated_era, is_pre_1965,
production_company, is_formal_studio, genre, quality_score, era_reasoning.`
