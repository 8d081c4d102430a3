package crossref

import "strings"

// classicStudioFragments are matched as case-insensitive substrings against
// production company names. A hit on any fragment marks the studio classic.
var classicStudioFragments = []string{
	"Metro-Goldwyn-Mayer", "MGM", "Paramount", "Paramount Pictures",
	"Warner Bros.", "Warner Brothers", "Universal", "Universal Pictures",
	"20th Century Fox", "20th Century-Fox", "Twentieth Century Fox",
	"RKO", "RKO Radio Pictures", "Columbia Pictures", "Columbia",
	"United Artists", "Republic Pictures", "Monogram Pictures",
	"Allied Artists", "American International Pictures", "AIP",
	"Selznick International Pictures", "The Criterion Collection",
	"British Film Institute", "Ealing Studios", "Hammer Film Productions",
	"Pathé", "Gaumont", "UFA", "Mosfilm", "Toho",
}

// classicStudios returns whether any production company name contains a
// known classic-studio fragment, and the company names that matched.
func classicStudios(companies []string) (bool, []string) {
	var matching []string
	for _, company := range companies {
		lowered := strings.ToLower(company)
		for _, fragment := range classicStudioFragments {
			if strings.Contains(lowered, strings.ToLower(fragment)) {
				matching = append(matching, company)
				break
			}
		}
	}
	return len(matching) > 0, matching
}
