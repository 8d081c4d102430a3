package config

const (
	defaultOutputDir          = "~/.local/share/reelfinder/outputs"
	defaultLogDir             = "~/.local/share/reelfinder/logs"
	defaultResultsPerQuery    = 5
	defaultPageSize           = 25
	defaultMinDurationMinutes = 45
	defaultMaxDurationMinutes = 180
	defaultVimeoBaseURL       = "https://api.vimeo.com"
	defaultVimeoRate          = 2.0
	defaultLLMBaseURL         = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel           = "anthropic/claude-sonnet-4"
	defaultLLMReferer         = "https://github.com/reelfinder/reelfinder"
	defaultLLMTitle           = "Reelfinder Classifier"
	defaultLLMTimeoutSeconds  = 60
	defaultContentBatchSize   = 10
	defaultNarrativeBatchSize = 8
	defaultEraBatchSize       = 8
	defaultBatchDelaySeconds  = 1
	defaultTMDBBaseURL        = "https://api.themoviedb.org/3"
	defaultTMDBLanguage       = "en-US"
	defaultTMDBDelayMillis    = 300
	defaultTMDBMinConfidence  = 70
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// defaultQueries targets known classics, era and genre phrases, directors,
// and public-domain wording. Overridable via [search].queries.
var defaultQueries = []string{
	// Known classic films
	"Casablanca 1942",
	"Citizen Kane 1941",
	"Metropolis 1927",
	"Nosferatu 1922",
	"The Cabinet of Dr Caligari",
	"The General Buster Keaton",
	"Modern Times Chaplin",
	"City Lights Chaplin",
	"The 39 Steps Hitchcock",
	"The Maltese Falcon",
	"Double Indemnity",
	"Sunset Boulevard",
	"The Third Man",

	// Era and genre combinations
	"1920s silent feature film",
	"1930s classic film noir",
	"1940s hollywood classic",
	"1950s feature film",
	"pre-code hollywood 1930s",
	"golden age cinema 1940s",
	"classic westerns 1950s",
	"vintage horror 1930s",

	// Director searches
	"Hitchcock classic film",
	"Chaplin feature film",
	"Orson Welles film",
	"Fritz Lang film",
	"John Ford western",
	"Frank Capra film",

	// Public domain indicators
	"public domain feature film",
	"copyright free classic movie",
	"classic cinema full movie",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	queries := make([]string, len(defaultQueries))
	copy(queries, defaultQueries)

	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Search: Search{
			Queries:            queries,
			ResultsPerQuery:    defaultResultsPerQuery,
			PageSize:           defaultPageSize,
			MinDurationMinutes: defaultMinDurationMinutes,
			MaxDurationMinutes: defaultMaxDurationMinutes,
		},
		Vimeo: Vimeo{
			BaseURL:           defaultVimeoBaseURL,
			RequestsPerSecond: defaultVimeoRate,
		},
		LLM: LLM{
			BaseURL:            defaultLLMBaseURL,
			Model:              defaultLLMModel,
			Referer:            defaultLLMReferer,
			Title:              defaultLLMTitle,
			TimeoutSeconds:     defaultLLMTimeoutSeconds,
			ContentBatchSize:   defaultContentBatchSize,
			NarrativeBatchSize: defaultNarrativeBatchSize,
			EraBatchSize:       defaultEraBatchSize,
			BatchDelaySeconds:  defaultBatchDelaySeconds,
		},
		TMDB: TMDB{
			BaseURL:            defaultTMDBBaseURL,
			Language:           defaultTMDBLanguage,
			RequestDelayMillis: defaultTMDBDelayMillis,
			MinConfidence:      defaultTMDBMinConfidence,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
