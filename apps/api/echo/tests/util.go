package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/iiskills/shiksha/apps/api/echo"
	"github.com/iiskills/shiksha/core"
	"github.com/iiskills/shiksha/core/admin"
	"github.com/iiskills/shiksha/core/certificate"
	"github.com/iiskills/shiksha/core/course"
	"github.com/iiskills/shiksha/core/otp"
	"github.com/iiskills/shiksha/core/quiz"
	"github.com/iiskills/shiksha/core/user"
	pdfsvc "github.com/iiskills/shiksha/services/pdf"
	smssvc "github.com/iiskills/shiksha/services/sms"
	"github.com/iiskills/shiksha/storage/database/inmem"
	testutil "github.com/iiskills/shiksha/tests"
)

// adminPassword matches the default Admin.PasswordHash in core.NewConfig.
const adminPassword = "phil123"

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type env struct {
	app     Server
	conf    *core.Config
	usrRepo user.Repository
	usrSvc  *user.Service
	otpSvc  *otp.Service
}

func setup(t *testing.T) *env {
	t.Helper()

	conf := core.NewConfig()
	conf.Debug = true
	conf.TestMode = true

	db := inmemdb.Open()
	usrRepo := inmemdb.NewUserRepository(db)
	otpRepo := inmemdb.NewOTPRepository(db)

	usrSvc := user.NewService(usrRepo)
	otpSvc := otp.NewService(otpRepo, conf.OTP.Length, conf.OTP.Expiry)
	quizCatalog := quiz.NewCatalog(quiz.DefaultQuestions)
	courseCatalog := course.NewCatalog(course.DefaultModules)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	smssvc.ClearSentMessages()

	app := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         testutil.NopLogger{},
		UserSvc:        usrSvc,
		OTPSvc:         otpSvc,
		QuizSvc:        quiz.NewService(quizCatalog, usrSvc),
		CertSvc:        certificate.NewService(usrSvc, conf.CourseName),
		AdminSvc:       admin.NewService(usrSvc, conf.Admin.PasswordHash),
		CourseCatalog:  courseCatalog,
		QuizCatalog:    quizCatalog,
		PDFGen:         pdfsvc.NewCertificateGenerator(conf.AppName),
		SMSSvc:         smssvc.NewConsoleServiceMock(conf),
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})

	return &env{
		app:     app,
		conf:    conf,
		usrRepo: usrRepo,
		usrSvc:  usrSvc,
		otpSvc:  otpSvc,
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	t.Helper()
	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func getAdminToken(t *testing.T) string {
	t.Helper()
	token, err := GenerateToken(GetAdminClaims())
	if err != nil {
		t.Fatalf("getAdminToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decodeBody(): %v; body = %s", err, rec.Body.String())
	}
}
