package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/iiskills/shiksha/core/course"
)

type courseApi struct {
	deps *ServerDeps
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *ServerDeps) {
	api := courseApi{deps: deps}

	mg := g.Group("/modules")
	mg.GET("", api.list)
	mg.GET("/:id", api.retrieve)
	mg.POST("/:id/complete", api.complete, jwt)
}

// Handlers

func (api *courseApi) list(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.deps.CourseCatalog.List())
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	id, err := moduleID(ctx)
	if err != nil {
		return err
	}
	mod, err := api.deps.CourseCatalog.Get(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mod)
}

func (api *courseApi) complete(ctx echo.Context) error {
	id, err := moduleID(ctx)
	if err != nil {
		return err
	}
	if _, err = api.deps.CourseCatalog.Get(id); err != nil {
		return err
	}

	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	usr, err = api.deps.UserSvc.CompleteModule(usr.PhoneNumber, id)
	if err != nil {
		return errors.Wrap(err, "completing module")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func moduleID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, course.ErrNotFound
	}
	return id, nil
}
