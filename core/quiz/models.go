package quiz

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Pass levels, from the highest percentage threshold down.
const (
	TierGold   = "gold"   // >= 90%
	TierSilver = "silver" // >= 70%
	TierBronze = "bronze" // >= 50%
)

// TierFor maps a percentage to a pass level and the certificate-earned flag.
// Below the bronze threshold there is no pass level and no certificate.
func TierFor(percentage int) (null.String, bool) {
	switch {
	case percentage >= 90:
		return null.StringFrom(TierGold), true
	case percentage >= 70:
		return null.StringFrom(TierSilver), true
	case percentage >= 50:
		return null.StringFrom(TierBronze), true
	}
	return null.String{}, false
}

// Question is immutable reference data, loaded once at startup.
// JSON field names match the quiz.json data file.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // zero-based index into Options
	Explanation   string   `json:"explanation"`
}

// PublicQuestion is a Question stripped of its answer key.
type PublicQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (q Question) Public() PublicQuestion {
	return PublicQuestion{ID: q.ID, Question: q.Question, Options: q.Options}
}

// Answer is one submitted question/selected-option pair.
// A missing selected option is never correct.
type Answer struct {
	QuestionID     int      `json:"question_id"`
	SelectedOption null.Int `json:"selected_option"`
}

// Attempt is the immutable record of one grading event. It snapshots the raw
// submission; question text is not denormalized into history.
type Attempt struct {
	Timestamp      time.Time   `json:"timestamp"`
	Score          int         `json:"score"`
	TotalQuestions int         `json:"total_questions"`
	Percentage     int         `json:"percentage"`
	PassLevel      null.String `json:"pass_level"`
	Answers        []Answer    `json:"answers"`
}

// AnswerResult is the per-question outcome returned to the submitter.
type AnswerResult struct {
	QuestionID     int      `json:"question_id"`
	Question       string   `json:"question"`
	SelectedOption null.Int `json:"selected_option"`
	CorrectOption  int      `json:"correct_option"`
	IsCorrect      bool     `json:"is_correct"`
	Explanation    string   `json:"explanation"`
}

// Result aggregates one grading run.
type Result struct {
	Results           []AnswerResult `json:"results"`
	Score             int            `json:"score"`
	TotalQuestions    int            `json:"total_questions"`
	Percentage        int            `json:"percentage"`
	PassLevel         null.String    `json:"pass_level"`
	CertificateEarned bool           `json:"certificate_earned"`
}
