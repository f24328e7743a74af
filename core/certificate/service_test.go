package certificate

import (
	"fmt"
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/iiskills/shiksha/core/quiz"
	"github.com/iiskills/shiksha/core/user"
	inmemdb "github.com/iiskills/shiksha/storage/database/inmem"
	testutil "github.com/iiskills/shiksha/tests"
)

const courseName = "Data Science & AI/ML for Indian Job Market"

func setup(t *testing.T) (*Service, user.Repository) {
	t.Helper()
	repo := inmemdb.NewUserRepository(inmemdb.Open())
	return NewService(user.NewService(repo), courseName), repo
}

func TestService_Issue(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	NowFunc = func() time.Time { return now }
	defer func() { NowFunc = time.Now }()

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := setup(t)
		if _, err := svc.Issue("0000000000"); err != user.ErrNotFound {
			t.Errorf("Issue() error = %v, want %v", err, user.ErrNotFound)
		}
	})

	t.Run("not earned", func(t *testing.T) {
		svc, repo := setup(t)
		testutil.CreateUser(t, repo, "9876543210", user.PaymentCompleted)

		if _, err := svc.Issue("9876543210"); err != ErrNotEarned {
			t.Errorf("Issue() error = %v, want %v", err, ErrNotEarned)
		}
	})

	t.Run("failed attempt does not earn", func(t *testing.T) {
		svc, repo := setup(t)
		testutil.CreateUser(t, repo, "9876543210", user.PaymentCompleted)
		if _, err := repo.AppendQuizAttempt("9876543210", quiz.Attempt{
			Timestamp: now, Score: 4, TotalQuestions: 10, Percentage: 40,
		}); err != nil {
			t.Fatal(err)
		}

		if _, err := svc.Issue("9876543210"); err != ErrNotEarned {
			t.Errorf("Issue() error = %v, want %v", err, ErrNotEarned)
		}
	})

	t.Run("earned", func(t *testing.T) {
		svc, repo := setup(t)
		testutil.CreateUser(t, repo, "9876543210", user.PaymentCompleted)
		if _, err := repo.AppendQuizAttempt("9876543210", quiz.Attempt{
			Timestamp: now, Score: 9, TotalQuestions: 10,
			Percentage: 90, PassLevel: null.StringFrom(quiz.TierGold),
		}); err != nil {
			t.Fatal(err)
		}

		cert, err := svc.Issue("9876543210")
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		if cert.HolderPhone != "9876543210" || cert.CourseName != courseName {
			t.Errorf("Issue() = %+v", cert)
		}
		if cert.Score.Int != 90 || cert.PassLevel.String != quiz.TierGold {
			t.Errorf("Issue() score/level = %v/%v", cert.Score, cert.PassLevel)
		}
		if !cert.IssuedAt.Equal(now) {
			t.Errorf("IssuedAt = %v, want %v", cert.IssuedAt, now)
		}
		wantSerial := fmt.Sprintf("CERT-9876543210-%d", now.UnixNano()/int64(time.Millisecond))
		if cert.SerialNumber != wantSerial {
			t.Errorf("SerialNumber = %q, want %q", cert.SerialNumber, wantSerial)
		}
	})

	t.Run("reissue stamps a fresh serial", func(t *testing.T) {
		svc, repo := setup(t)
		testutil.CreateUser(t, repo, "9876543210", user.PaymentCompleted)
		if _, err := repo.AppendQuizAttempt("9876543210", quiz.Attempt{
			Timestamp: now, Score: 8, TotalQuestions: 10,
			Percentage: 80, PassLevel: null.StringFrom(quiz.TierSilver),
		}); err != nil {
			t.Fatal(err)
		}

		first, err := svc.Issue("9876543210")
		if err != nil {
			t.Fatal(err)
		}
		NowFunc = func() time.Time { return now.Add(time.Second) }
		second, err := svc.Issue("9876543210")
		if err != nil {
			t.Fatal(err)
		}
		if first.SerialNumber == second.SerialNumber {
			t.Error("reissue kept the same serial number")
		}
	})
}
