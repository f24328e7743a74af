package echoapi

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/iiskills/shiksha/core/user"
)

type adminApi struct {
	deps *ServerDeps
}

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *ServerDeps) {
	api := adminApi{deps: deps}

	ag := g.Group("/admin")

	// un-authed endpoints
	// TODO: rate limit `/login`
	ag.POST("/login", api.login)

	// authed endpoints
	pg := ag.Group("", jwt, adminMiddleware())
	pg.POST("/change-password", api.changePassword)
	pg.GET("/users", api.queryUsers)
	pg.GET("/users/search", api.searchUsers)
	pg.GET("/users/:phone", api.retrieveUser)
	pg.GET("/users/:phone/quiz-history", api.quizHistory)
	pg.GET("/export/users", api.exportUsers)
	pg.GET("/modules", api.queryModules)
	pg.GET("/quiz", api.queryQuiz)
	pg.GET("/stats", api.stats)
}

// Handlers

func (api *adminApi) login(ctx echo.Context) error {
	var data AdminLoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AdminLoginRequest")
	}
	if err := api.deps.Validate.Struct(&data); err != nil {
		return err
	}

	if err := api.deps.AdminSvc.Authenticate(data.Password); err != nil {
		return err
	}
	token, err := GenerateToken(GetAdminClaims())
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (api *adminApi) changePassword(ctx echo.Context) error {
	var data ChangePasswordRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChangePasswordRequest")
	}
	if err := api.deps.Validate.Struct(&data); err != nil {
		return err
	}

	if err := api.deps.AdminSvc.ChangePassword(data.CurrentPassword, data.NewPassword); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Password changed."})
}

func (api *adminApi) queryUsers(ctx echo.Context) error {
	users, err := api.deps.UserSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if users == nil {
		users = []user.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *adminApi) searchUsers(ctx echo.Context) error {
	filter := new(user.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []user.User{})
	}

	users, err := api.deps.AdminSvc.SearchUsers(*filter)
	if err != nil {
		return errors.Wrap(err, "searching users")
	}
	if users == nil {
		users = []user.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *adminApi) retrieveUser(ctx echo.Context) error {
	usr, err := api.deps.UserSvc.GetByPhone(ctx.Param("phone"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *adminApi) quizHistory(ctx echo.Context) error {
	attempts, err := api.deps.UserSvc.QuizHistory(ctx.Param("phone"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, attempts)
}

func (api *adminApi) exportUsers(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := api.deps.AdminSvc.WriteCSV(&buf); err != nil {
		return errors.Wrap(err, "exporting users")
	}

	filename := fmt.Sprintf("users-%s.csv", time.Now().UTC().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return ctx.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (api *adminApi) queryModules(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.deps.CourseCatalog.All())
}

// queryQuiz returns the question set with the answer key; never exposed on the
// learner surface.
func (api *adminApi) queryQuiz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.deps.QuizCatalog.Questions())
}

func (api *adminApi) stats(ctx echo.Context) error {
	stats, err := api.deps.AdminSvc.Stats()
	if err != nil {
		return errors.Wrap(err, "aggregating stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

type (
	AdminLoginRequest struct {
		Password string `json:"password" validate:"required"`
	}

	ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required"`
	}
)
