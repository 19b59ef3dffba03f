package manager

import (
	"fmt"
	"sort"
	"time"
)

// GameRecord holds the outcome of one finished round
type GameRecord struct {
	Round     int
	Score     int
	StartTime time.Time
	EndTime   time.Time
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats collects the rounds played by this process. It lives in memory
// only; the high score is the sole value that outlives the process.
type SessionStats struct {
	Games []GameRecord
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		Games: make([]GameRecord, 0),
	}
}

// AddGame records a finished round
func (s *SessionStats) AddGame(round, score int, startTime, endTime time.Time) {
	s.Games = append(s.Games, GameRecord{
		Round:     round,
		Score:     score,
		StartTime: startTime,
		EndTime:   endTime,
	})
}

func (s *SessionStats) GetGamesPlayed() int {
	return len(s.Games)
}

// GetLast returns the most recent record, if any
func (s *SessionStats) GetLast() (GameRecord, bool) {
	if len(s.Games) == 0 {
		return GameRecord{}, false
	}
	return s.Games[len(s.Games)-1], true
}

func (s *SessionStats) GetAverageScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}

	total := 0
	for _, game := range s.Games {
		total += game.Score
	}
	return float64(total) / float64(len(s.Games))
}

func (s *SessionStats) GetMedianScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}

	scores := make([]int, len(s.Games))
	for i, game := range s.Games {
		scores[i] = game.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *SessionStats) GetMaxScore() int {
	maxScore := 0
	for _, game := range s.Games {
		if game.Score > maxScore {
			maxScore = game.Score
		}
	}
	return maxScore
}

// GetAverageDuration returns the mean round length
func (s *SessionStats) GetAverageDuration() time.Duration {
	if len(s.Games) == 0 {
		return 0
	}

	var total time.Duration
	for _, game := range s.Games {
		total += game.Duration()
	}
	return total / time.Duration(len(s.Games))
}

// Summary formats the session for the game over screen, one entry per line
func (s *SessionStats) Summary() []string {
	lines := []string{
		fmt.Sprintf("Games: %d  Avg: %.1f  Median: %.1f  Best: %d",
			s.GetGamesPlayed(), s.GetAverageScore(), s.GetMedianScore(), s.GetMaxScore()),
		fmt.Sprintf("Avg round: %s", s.GetAverageDuration().Round(time.Second)),
	}
	if last, ok := s.GetLast(); ok {
		lines = append(lines, fmt.Sprintf("Last round: %d points in %s",
			last.Score, last.Duration().Round(time.Second)))
	}
	return lines
}
