// Package types contains common types used across the application
package types

// Entry represents a leaderboard entry
type Entry struct {
	Rank  int    `json:"rank"`
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Leaders holds every key sharing the maximum count.
type Leaders struct {
	Keys    []string `json:"keys"`
	Count   int      `json:"count"`
	Summary string   `json:"summary,omitempty"`
}

// Race is the API shape of a race record.
type Race struct {
	Year      int    `json:"year"`
	GrandPrix string `json:"grand_prix"`
	Country   string `json:"country"`
	Date      string `json:"date"`
	Winner    string `json:"winner"`
	Team      string `json:"team"`
}

// MapPoint is one country marker on the races map.
type MapPoint struct {
	Country string   `json:"country"`
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
	Geohash string   `json:"geohash"`
	Races   int      `json:"races"`
	Venues  []string `json:"venues"`
	Tooltip string   `json:"tooltip"`
}

// TimelineEvent is a narrative milestone for one season.
type TimelineEvent struct {
	Year int    `json:"year"`
	Text string `json:"text"`
}

// Birthday is the answer to "was there a race on my birthday". Races holds
// the exact matches; when there are none, Nearest and Sentence describe the
// closest race.
type Birthday struct {
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Exact     bool   `json:"exact"`
	Message   string `json:"message"`
	Races     []Race `json:"races,omitempty"`
	Nearest   *Race  `json:"nearest,omitempty"`
	Distance  int    `json:"distance_days,omitempty"`
	Sentence  string `json:"sentence,omitempty"`
}

// Wins is the drill-down of one winner or team.
type Wins struct {
	Dimension string `json:"dimension"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Races     []Race `json:"races"`
}

// QuizQuestion is a trivia question without its answer.
type QuizQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// QuizSession is the client view of a quiz in progress. Answer is only set
// once the current question has been answered.
type QuizSession struct {
	ID       string        `json:"id"`
	Index    int           `json:"index"`
	Total    int           `json:"total"`
	Score    int           `json:"score"`
	Finished bool          `json:"finished"`
	Question *QuizQuestion `json:"question,omitempty"`
	Selected string        `json:"selected,omitempty"`
	Answered bool          `json:"answered"`
	Correct  bool          `json:"correct"`
	Answer   string        `json:"answer,omitempty"`
}

// QuestionnaireQuestion is one forced-choice question.
type QuestionnaireQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Recommendation is the team suggested by the questionnaire.
type Recommendation struct {
	Profile string `json:"profile"`
	Team    string `json:"team"`
	Message string `json:"message"`
}
