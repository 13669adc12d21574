package models

import "time"

type QuizResult struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	CompletedAt    time.Time `db:"completed_at"`
}

// Percentage truncates like the summary shown at the end of a quiz.
func (r QuizResult) Percentage() int {
	if r.TotalQuestions == 0 {
		return 0
	}
	return r.Score * 100 / r.TotalQuestions
}

// QuizFilter selects the question pool. The zero value means all concepts.
type QuizFilter struct {
	Group    string `json:"group,omitempty"`
	Category string `json:"category,omitempty"`
}

// QuizSession is the in-progress state of one user's quiz.
type QuizSession struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"user_id"`
	Questions []Concept  `json:"questions"`
	Index     int        `json:"index"`
	Score     int        `json:"score"`
	Filter    QuizFilter `json:"filter"`
	StartedAt time.Time  `json:"started_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (s QuizSession) Done() bool {
	return s.Index >= len(s.Questions)
}

type AnswerOption struct {
	Label     string
	ConceptID int64
}

type QuestionView struct {
	SessionID string
	Index     int
	Total     int
	Prompt    string
	Options   []AnswerOption
}

// AnswerInput identifies the question being answered so late or duplicated
// callbacks can be told apart from the live one.
type AnswerInput struct {
	SessionID     string
	QuestionIndex int
	SelectedID    int64
}

type AnswerOutcome struct {
	Correct     bool
	CorrectID   int64
	CorrectTerm string
}

type Tier int

const (
	TierKeepTrying Tier = iota
	TierFair
	TierGood
	TierExcellent
	TierPerfect
)

type QuizSummary struct {
	Score      int
	Total      int
	Percentage int
	Tier       Tier
}

// QuizStep is either the next question or, once the quiz is exhausted, the summary.
type QuizStep struct {
	Question *QuestionView
	Summary  *QuizSummary
}

func (s QuizStep) Done() bool {
	return s.Summary != nil
}
