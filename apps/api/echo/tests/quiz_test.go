package tests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/iiskills/shiksha/core/certificate"
	"github.com/iiskills/shiksha/core/quiz"
	"github.com/iiskills/shiksha/core/user"
	testutil "github.com/iiskills/shiksha/tests"
)

func allCorrectAnswers() []map[string]int {
	answers := make([]map[string]int, 0, len(quiz.DefaultQuestions))
	for _, q := range quiz.DefaultQuestions {
		answers = append(answers, map[string]int{
			"question_id":     q.ID,
			"selected_option": q.CorrectAnswer,
		})
	}
	return answers
}

func TestQuiz_questions(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "9876543210", user.PaymentCompleted)

	t.Run("requires token", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodGet, "/v1/quiz/questions")
		env.app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("strips the answer key", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/quiz/questions", getToken(t, usr))
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d", rec.Code)
		}

		var resp []map[string]interface{}
		decodeBody(t, rec, &resp)
		if len(resp) != len(quiz.DefaultQuestions) {
			t.Fatalf("questions = %d, want %d", len(resp), len(quiz.DefaultQuestions))
		}
		for _, q := range resp {
			if _, ok := q["correctAnswer"]; ok {
				t.Fatal("answer key leaked")
			}
			if _, ok := q["explanation"]; ok {
				t.Fatal("explanation leaked")
			}
		}
	})
}

func TestQuiz_submit(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "9876543210", user.PaymentCompleted)
	token := getToken(t, usr)

	t.Run("full marks", func(t *testing.T) {
		body := marchallObj(t, map[string]interface{}{"answers": allCorrectAnswers()})
		req, rec := newAuthRequest(http.MethodPost, "/v1/quiz/submit", token, body)
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d; body = %s", rec.Code, rec.Body.String())
		}

		var resp quiz.Result
		decodeBody(t, rec, &resp)
		if resp.Percentage != 100 || resp.PassLevel.String != quiz.TierGold || !resp.CertificateEarned {
			t.Errorf("result = %d%% %v earned=%v", resp.Percentage, resp.PassLevel, resp.CertificateEarned)
		}
		if len(resp.Results) != len(quiz.DefaultQuestions) {
			t.Errorf("results = %d, want %d", len(resp.Results), len(quiz.DefaultQuestions))
		}

		refreshed, err := env.usrSvc.GetByPhone("9876543210")
		if err != nil {
			t.Fatal(err)
		}
		if !refreshed.Progress.CertificateEarned || len(refreshed.Progress.QuizAttempts) != 1 {
			t.Errorf("progress not recorded: %+v", refreshed.Progress)
		}
	})

	t.Run("empty submission still records an attempt", func(t *testing.T) {
		body := marchallObj(t, map[string]interface{}{"answers": []int{}})
		req, rec := newAuthRequest(http.MethodPost, "/v1/quiz/submit", token, body)
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d; body = %s", rec.Code, rec.Body.String())
		}

		var resp quiz.Result
		decodeBody(t, rec, &resp)
		if resp.Score != 0 || resp.Percentage != 0 || resp.PassLevel.Valid {
			t.Errorf("result = %+v", resp)
		}

		refreshed, err := env.usrSvc.GetByPhone("9876543210")
		if err != nil {
			t.Fatal(err)
		}
		// current fields track the latest attempt
		if refreshed.Progress.CertificateEarned || len(refreshed.Progress.QuizAttempts) != 2 {
			t.Errorf("progress = %+v", refreshed.Progress)
		}
	})
}

func TestQuiz_certificate(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "9876543210", user.PaymentCompleted)
	token := getToken(t, usr)

	t.Run("not earned", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "certificate not earned"}),
		}
		req, rec := newAuthRequest(http.MethodGet, "/v1/quiz/certificate", token)
		env.app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("earned", func(t *testing.T) {
		body := marchallObj(t, map[string]interface{}{"answers": allCorrectAnswers()})
		req, rec := newAuthRequest(http.MethodPost, "/v1/quiz/submit", token, body)
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("submit code = %d", rec.Code)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/quiz/certificate", token)
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d; body = %s", rec.Code, rec.Body.String())
		}

		var cert certificate.Certificate
		decodeBody(t, rec, &cert)
		if cert.HolderPhone != "9876543210" || cert.CourseName != env.conf.CourseName {
			t.Errorf("certificate = %+v", cert)
		}
		if !strings.HasPrefix(cert.SerialNumber, "CERT-9876543210-") {
			t.Errorf("serial = %q", cert.SerialNumber)
		}

		// the PDF view serves an attachment
		req, rec = newAuthRequest(http.MethodGet, "/v1/quiz/certificate/pdf", token)
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("pdf code = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("content type = %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") {
			t.Errorf("content disposition = %q", cd)
		}
		if !strings.HasPrefix(rec.Body.String(), "%PDF") {
			t.Error("body is not a PDF document")
		}
	})
}
