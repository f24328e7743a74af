package admin

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/volatiletech/null/v8"

	"github.com/iiskills/shiksha/core"
	"github.com/iiskills/shiksha/core/quiz"
	"github.com/iiskills/shiksha/core/user"
	inmemdb "github.com/iiskills/shiksha/storage/database/inmem"
	testutil "github.com/iiskills/shiksha/tests"
)

const password = "phil123"

func setup(t *testing.T) (*Service, user.Repository) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := inmemdb.NewUserRepository(inmemdb.Open())
	return NewService(user.NewService(repo), string(hash)), repo
}

func TestService_Authenticate(t *testing.T) {
	svc, _ := setup(t)

	if err := svc.Authenticate(password); err != nil {
		t.Errorf("Authenticate() error = %v", err)
	}
	if err := svc.Authenticate("wrong"); err != ErrInvalidCredentials {
		t.Errorf("Authenticate() error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("wrong current password", func(t *testing.T) {
		svc, _ := setup(t)
		if err := svc.ChangePassword("wrong", "newpassword"); err != ErrInvalidCredentials {
			t.Errorf("ChangePassword() error = %v, want %v", err, ErrInvalidCredentials)
		}
	})

	t.Run("too short", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.ChangePassword(password, "12345")
		if _, ok := err.(*core.ValidationError); !ok {
			t.Errorf("ChangePassword() error = %T, want *core.ValidationError", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		svc, _ := setup(t)
		if err := svc.ChangePassword(password, "newpassword"); err != nil {
			t.Fatalf("ChangePassword() error = %v", err)
		}
		if err := svc.Authenticate("newpassword"); err != nil {
			t.Errorf("Authenticate(new) error = %v", err)
		}
		if err := svc.Authenticate(password); err != ErrInvalidCredentials {
			t.Errorf("Authenticate(old) error = %v, want %v", err, ErrInvalidCredentials)
		}
	})
}

func seedUsers(t *testing.T, repo user.Repository) {
	t.Helper()
	now := time.Now().UTC()

	// gold, paid, 2 attempts
	testutil.CreateUser(t, repo, "9000000001", user.PaymentCompleted)
	mustAppend(t, repo, "9000000001", quiz.Attempt{Timestamp: now, Percentage: 40})
	mustAppend(t, repo, "9000000001", quiz.Attempt{
		Timestamp: now, Score: 9, TotalQuestions: 10, Percentage: 90,
		PassLevel: null.StringFrom(quiz.TierGold),
	})

	// silver, pending payment
	testutil.CreateUser(t, repo, "9000000002", user.PaymentPending)
	mustAppend(t, repo, "9000000002", quiz.Attempt{
		Timestamp: now, Score: 7, TotalQuestions: 10, Percentage: 70,
		PassLevel: null.StringFrom(quiz.TierSilver),
	})

	// no attempts, pending payment
	testutil.CreateUser(t, repo, "9000000003", user.PaymentPending)
}

func mustAppend(t *testing.T, repo user.Repository, phone string, att quiz.Attempt) {
	t.Helper()
	if _, err := repo.AppendQuizAttempt(phone, att); err != nil {
		t.Fatal(err)
	}
}

func TestService_Stats(t *testing.T) {
	svc, repo := setup(t)
	seedUsers(t, repo)

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	want := Stats{
		TotalUsers:         3,
		PaidUsers:          1,
		CertifiedUsers:     2,
		GoldCertificates:   1,
		SilverCertificates: 1,
		BronzeCertificates: 0,
		TotalQuizAttempts:  3,
	}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
}

func TestService_SearchUsers(t *testing.T) {
	svc, repo := setup(t)
	seedUsers(t, repo)

	all, err := svc.SearchUsers(user.QueryFilter{})
	if err != nil {
		t.Fatalf("SearchUsers() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("SearchUsers(empty) = %d users, want 3", len(all))
	}

	certified, err := svc.SearchUsers(user.QueryFilter{Status: user.FilterCertified})
	if err != nil {
		t.Fatalf("SearchUsers() error = %v", err)
	}
	if len(certified) != 2 {
		t.Errorf("SearchUsers(certified) = %d users, want 2", len(certified))
	}
}

func TestService_WriteCSV(t *testing.T) {
	svc, repo := setup(t)
	seedUsers(t, repo)

	var buf bytes.Buffer
	if err := svc.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if len(records) != 4 { // header + 3 users
		t.Fatalf("rows = %d, want 4", len(records))
	}
	wantHeader := []string{
		"Phone Number", "Created At", "Payment Status", "Completed Modules",
		"Quiz Score", "Pass Level", "Certificate Earned", "Quiz Attempts",
	}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	rows := make(map[string][]string, 3)
	for _, rec := range records[1:] {
		rows[rec[0]] = rec
	}
	gold := rows["9000000001"]
	if gold[2] != "completed" || gold[4] != "90" || gold[5] != "gold" || gold[6] != "Yes" || gold[7] != "2" {
		t.Errorf("gold row = %v", gold)
	}
	fresh := rows["9000000003"]
	if fresh[2] != "pending" || fresh[4] != "N/A" || fresh[5] != "N/A" || fresh[6] != "No" || fresh[7] != "0" {
		t.Errorf("fresh row = %v", fresh)
	}
}
