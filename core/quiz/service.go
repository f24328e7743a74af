package quiz

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

var NowFunc = time.Now // mockable

type (
	// AttemptRecorder persists a graded attempt against a user's progress:
	// it appends to the attempt history and overwrites the current-state
	// fields in one atomic operation, or fails without touching state.
	AttemptRecorder interface {
		RecordQuizAttempt(phoneNumber string, att Attempt) error
	}

	Service struct {
		catalog  *Catalog
		recorder AttemptRecorder
	}
)

func NewService(catalog *Catalog, recorder AttemptRecorder) *Service {
	return &Service{catalog: catalog, recorder: recorder}
}

// Submit grades a submitted answer set against the full question catalog and
// records the attempt. The denominator is always the catalog size: omitted or
// unknown answers count as incorrect. Answers referencing unknown question ids
// are dropped from the per-question result list.
func (svc *Service) Submit(phoneNumber string, answers []Answer) (Result, error) {
	var correctCount int
	results := make([]AnswerResult, 0, len(answers))

	for _, ans := range answers {
		q, ok := svc.catalog.Get(ans.QuestionID)
		if !ok {
			continue
		}
		isCorrect := ans.SelectedOption.Valid && ans.SelectedOption.Int == q.CorrectAnswer
		if isCorrect {
			correctCount++
		}
		results = append(results, AnswerResult{
			QuestionID:     ans.QuestionID,
			Question:       q.Question,
			SelectedOption: ans.SelectedOption,
			CorrectOption:  q.CorrectAnswer,
			IsCorrect:      isCorrect,
			Explanation:    q.Explanation,
		})
	}

	total := svc.catalog.Size()
	percentage := Percentage(correctCount, total)
	passLevel, certEarned := TierFor(percentage)

	att := Attempt{
		Timestamp:      NowFunc().UTC(),
		Score:          correctCount,
		TotalQuestions: total,
		Percentage:     percentage,
		PassLevel:      passLevel,
		Answers:        answers,
	}
	if err := svc.recorder.RecordQuizAttempt(phoneNumber, att); err != nil {
		return Result{}, errors.Wrap(err, "recording quiz attempt")
	}

	return Result{
		Results:           results,
		Score:             correctCount,
		TotalQuestions:    total,
		Percentage:        percentage,
		PassLevel:         passLevel,
		CertificateEarned: certEarned,
	}, nil
}

// Percentage rounds 100*correct/total half-up. An empty catalog grades as 0
// rather than dividing by zero.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(100*correct) / float64(total)))
}
