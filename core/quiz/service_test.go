package quiz

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

type fakeRecorder struct {
	attempts []Attempt
	err      error
}

func (r *fakeRecorder) RecordQuizAttempt(phoneNumber string, att Attempt) error {
	if r.err != nil {
		return r.err
	}
	r.attempts = append(r.attempts, att)
	return nil
}

// testCatalog builds n questions with ids 1..n; option 0 is always correct.
func testCatalog(n int) *Catalog {
	questions := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, Question{
			ID:            i,
			Question:      fmt.Sprintf("question %d", i),
			Options:       []string{"right", "wrong", "also wrong"},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("explanation %d", i),
		})
	}
	return NewCatalog(questions)
}

func answer(id int, opt int) Answer {
	return Answer{QuestionID: id, SelectedOption: null.IntFrom(opt)}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		percentage string
		pct        int
		wantLevel  null.String
		wantEarned bool
	}{
		{"100", 100, null.StringFrom(TierGold), true},
		{"90", 90, null.StringFrom(TierGold), true},
		{"89", 89, null.StringFrom(TierSilver), true},
		{"70", 70, null.StringFrom(TierSilver), true},
		{"69", 69, null.StringFrom(TierBronze), true},
		{"50", 50, null.StringFrom(TierBronze), true},
		{"49", 49, null.String{}, false},
		{"0", 0, null.String{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.percentage, func(t *testing.T) {
			level, earned := TierFor(tt.pct)
			if level != tt.wantLevel {
				t.Errorf("TierFor(%d) level = %v, want %v", tt.pct, level, tt.wantLevel)
			}
			if earned != tt.wantEarned {
				t.Errorf("TierFor(%d) earned = %v, want %v", tt.pct, earned, tt.wantEarned)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name           string
		correct, total int
		want           int
	}{
		{"all correct", 10, 10, 100},
		{"nine of ten", 9, 10, 90},
		{"six of ten", 6, 10, 60},
		{"rounds down", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"empty catalog", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.correct, tt.total); got != tt.want {
				t.Errorf("Percentage(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestService_Submit(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	NowFunc = func() time.Time { return now }
	defer func() { NowFunc = time.Now }()

	t.Run("empty submission", func(t *testing.T) {
		rec := &fakeRecorder{}
		svc := NewService(testCatalog(10), rec)

		res, err := svc.Submit("9876543210", nil)
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if res.Score != 0 || res.TotalQuestions != 10 || res.Percentage != 0 {
			t.Errorf("Submit() = %d/%d (%d%%), want 0/10 (0%%)", res.Score, res.TotalQuestions, res.Percentage)
		}
		if res.PassLevel.Valid || res.CertificateEarned {
			t.Errorf("Submit() pass level = %v, earned = %v; want none", res.PassLevel, res.CertificateEarned)
		}
		if len(res.Results) != 0 {
			t.Errorf("Submit() results = %d, want 0", len(res.Results))
		}
		// the attempt is still recorded
		if len(rec.attempts) != 1 {
			t.Fatalf("recorded attempts = %d, want 1", len(rec.attempts))
		}
		if att := rec.attempts[0]; att.Score != 0 || att.TotalQuestions != 10 || !att.Timestamp.Equal(now) {
			t.Errorf("recorded attempt = %+v", att)
		}
	})

	t.Run("full marks earn gold", func(t *testing.T) {
		rec := &fakeRecorder{}
		svc := NewService(testCatalog(10), rec)

		answers := make([]Answer, 0, 10)
		for id := 1; id <= 10; id++ {
			answers = append(answers, answer(id, 0))
		}
		res, err := svc.Submit("9876543210", answers)
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if res.Score != 10 || res.Percentage != 100 {
			t.Errorf("Submit() = %d (%d%%), want 10 (100%%)", res.Score, res.Percentage)
		}
		if res.PassLevel.String != TierGold || !res.CertificateEarned {
			t.Errorf("Submit() pass level = %v, want gold + certificate", res.PassLevel)
		}
		for _, r := range res.Results {
			if !r.IsCorrect || r.CorrectOption != 0 || r.Explanation == "" {
				t.Errorf("result %+v not graded as correct", r)
			}
		}
	})

	t.Run("nine of ten is gold", func(t *testing.T) {
		rec := &fakeRecorder{}
		svc := NewService(testCatalog(10), rec)

		answers := []Answer{answer(1, 1)} // wrong
		for id := 2; id <= 10; id++ {
			answers = append(answers, answer(id, 0))
		}
		res, err := svc.Submit("9876543210", answers)
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if res.Percentage != 90 || res.PassLevel.String != TierGold {
			t.Errorf("Submit() = %d%% %v, want 90%% gold", res.Percentage, res.PassLevel)
		}
	})

	t.Run("six of ten is bronze", func(t *testing.T) {
		rec := &fakeRecorder{}
		svc := NewService(testCatalog(10), rec)

		answers := make([]Answer, 0, 6)
		for id := 1; id <= 6; id++ {
			answers = append(answers, answer(id, 0))
		}
		res, err := svc.Submit("9876543210", answers)
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if res.Percentage != 60 || res.PassLevel.String != TierBronze {
			t.Errorf("Submit() = %d%% %v, want 60%% bronze", res.Percentage, res.PassLevel)
		}
	})

	t.Run("unknown question ids are dropped but still count against the total", func(t *testing.T) {
		rec := &fakeRecorder{}
		svc := NewService(testCatalog(4), rec)

		answers := []Answer{answer(1, 0), answer(2, 0), answer(99, 0)}
		res, err := svc.Submit("9876543210", answers)
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if len(res.Results) != 2 {
			t.Errorf("Submit() results = %d, want 2", len(res.Results))
		}
		if res.Score != 2 || res.TotalQuestions != 4 || res.Percentage != 50 {
			t.Errorf("Submit() = %d/%d (%d%%), want 2/4 (50%%)", res.Score, res.TotalQuestions, res.Percentage)
		}
		// raw submission is preserved in the attempt, unknown id included
		if att := rec.attempts[0]; len(att.Answers) != 3 {
			t.Errorf("recorded answers = %d, want 3", len(att.Answers))
		}
	})

	t.Run("missing selected option is never correct", func(t *testing.T) {
		rec := &fakeRecorder{}
		svc := NewService(testCatalog(2), rec)

		res, err := svc.Submit("9876543210", []Answer{
			{QuestionID: 1}, // no option selected
			answer(2, 0),
		})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if res.Score != 1 {
			t.Errorf("Submit() score = %d, want 1", res.Score)
		}
		if res.Results[0].IsCorrect {
			t.Error("nil selection graded as correct")
		}
	})

	t.Run("duplicate answers each count", func(t *testing.T) {
		rec := &fakeRecorder{}
		svc := NewService(testCatalog(4), rec)

		res, err := svc.Submit("9876543210", []Answer{answer(1, 0), answer(1, 0)})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if res.Score != 2 || len(res.Results) != 2 {
			t.Errorf("Submit() = score %d, results %d; want 2, 2", res.Score, len(res.Results))
		}
	})

	t.Run("recorder failure aborts", func(t *testing.T) {
		boom := errors.New("boom")
		svc := NewService(testCatalog(2), &fakeRecorder{err: boom})

		_, err := svc.Submit("9876543210", []Answer{answer(1, 0)})
		if errors.Cause(err) != boom {
			t.Errorf("Submit() error = %v, want cause %v", err, boom)
		}
	})

	t.Run("sequential submissions append history", func(t *testing.T) {
		rec := &fakeRecorder{}
		svc := NewService(testCatalog(2), rec)

		if _, err := svc.Submit("9876543210", []Answer{answer(1, 0)}); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if _, err := svc.Submit("9876543210", []Answer{answer(1, 0), answer(2, 0)}); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if len(rec.attempts) != 2 {
			t.Fatalf("recorded attempts = %d, want 2", len(rec.attempts))
		}
		if rec.attempts[0].Percentage != 50 || rec.attempts[1].Percentage != 100 {
			t.Errorf("attempt percentages = %d, %d; want 50, 100",
				rec.attempts[0].Percentage, rec.attempts[1].Percentage)
		}
	})
}
