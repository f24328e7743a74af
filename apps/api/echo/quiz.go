package echoapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/iiskills/shiksha/core/quiz"
)

type quizApi struct {
	deps *ServerDeps
}

func registerQuizAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *ServerDeps) {
	api := quizApi{deps: deps}

	qg := g.Group("/quiz", jwt)
	qg.GET("/questions", api.questions)
	qg.POST("/submit", api.submit)
	qg.GET("/certificate", api.certificate)
	qg.GET("/certificate/pdf", api.certificatePDF)
}

// Handlers

func (api *quizApi) questions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.deps.QuizCatalog.Public())
}

func (api *quizApi) submit(ctx echo.Context) error {
	var data SubmitQuizRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmitQuizRequest")
	}

	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	result, err := api.deps.QuizSvc.Submit(usr.PhoneNumber, data.Answers)
	if err != nil {
		return errors.Wrap(err, "submitting quiz")
	}
	return ctx.JSON(http.StatusOK, result)
}

func (api *quizApi) certificate(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	cert, err := api.deps.CertSvc.Issue(usr.PhoneNumber)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cert)
}

func (api *quizApi) certificatePDF(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	cert, err := api.deps.CertSvc.Issue(usr.PhoneNumber)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = api.deps.PDFGen.WriteCertificate(&buf, cert); err != nil {
		return errors.Wrap(err, "rendering certificate")
	}

	disposition := fmt.Sprintf("attachment; filename=%s.pdf", cert.SerialNumber)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return ctx.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

type SubmitQuizRequest struct {
	Answers []quiz.Answer `json:"answers"`
}
