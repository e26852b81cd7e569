package progress

import (
	"math"

	"github.com/abhisek/cyberpath/internal/catalog"
)

// MissingPrerequisites returns the topic's prerequisite IDs not yet
// completed in the log, in declaration order. Used for the advisory
// warning only: completion is never blocked by unmet prerequisites.
func MissingPrerequisites(topic catalog.Topic, log Log) []string {
	var missing []string
	for _, id := range topic.Prerequisites {
		if !log.Completed(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// NextTopic scans phases and topics in declaration order and returns
// the first incomplete topic whose prerequisites are all completed.
// The second return is false when every topic is completed, or when
// every incomplete topic is blocked by an unmet prerequisite. The
// blocked case yields no fallback suggestion.
func NextTopic(roadmap catalog.Roadmap, log Log) (catalog.Topic, bool) {
	for _, phase := range roadmap.Phases {
		for _, topic := range phase.Topics {
			if log.Completed(topic.ID) {
				continue
			}
			if len(MissingPrerequisites(topic, log)) == 0 {
				return topic, true
			}
		}
	}
	return catalog.Topic{}, false
}

// Stats summarizes roadmap completion.
type Stats struct {
	TotalTopics       int
	CompletedTopics   int
	TotalHoursLogged  float64
	CompletionPercent int
}

// Aggregate computes completion statistics for the roadmap. Hours are
// summed over every record in the log, completed or not. An empty
// roadmap reports zero percent.
func Aggregate(roadmap catalog.Roadmap, log Log) Stats {
	s := Stats{TotalTopics: roadmap.TopicCount()}
	for _, rec := range log {
		if rec.Completed {
			s.CompletedTopics++
		}
		s.TotalHoursLogged += rec.HoursLogged
	}
	if s.TotalTopics > 0 {
		s.CompletionPercent = int(math.Round(100 * float64(s.CompletedTopics) / float64(s.TotalTopics)))
	}
	return s
}
