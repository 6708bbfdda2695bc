// ABOUTME: Fabricated byline generation from fixed name and title pools
// ABOUTME: Deterministic pools, non-deterministic selection

package satire

import "fmt"

var (
	firstNames = []string{"Skip", "Brenda", "Chuck", "Mildred", "Bartholomew", "Penelope"}
	lastNames  = []string{"McGee", "Henderson", "Fiddlebottom", "Winklestein", "Puddington", "Snodgrass"}
	jobTitles  = []string{"Staff Writer", "Senior Correspondent", "Investigative Journalist", "Cultural Analyst"}
)

// fabricateByline combines a random first name, surname and job title
// into a plausible-looking author credit.
func (s *Service) fabricateByline() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fmt.Sprintf("%s %s, %s",
		firstNames[s.rng.Intn(len(firstNames))],
		lastNames[s.rng.Intn(len(lastNames))],
		jobTitles[s.rng.Intn(len(jobTitles))])
}
