package echoapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/iiskills/shiksha/core"
	"github.com/iiskills/shiksha/core/user"
)

type authApi struct {
	deps *ServerDeps
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *ServerDeps) {
	api := authApi{deps: deps}

	ag := g.Group("/auth")

	// un-authed endpoints
	// TODO: rate limit `/send-otp`
	ag.POST("/send-otp", api.sendOTP)
	ag.POST("/verify-otp", api.verifyOTP)

	// authed endpoints
	tg := ag.Group("", jwt)
	tg.POST("/token-refresh", api.refreshToken)
	tg.GET("/me", api.me)
	tg.POST("/payment", api.payment)
}

// Handlers

func (api *authApi) sendOTP(ctx echo.Context) error {
	var data SendOTPRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SendOTPRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	code, err := api.deps.OTPSvc.Issue(data.PhoneNumber)
	if err != nil {
		return errors.Wrap(err, "issuing code")
	}

	api.deps.SMSSvc.SendMessages(&core.SMSMessage{
		To: data.PhoneNumber,
		Body: fmt.Sprintf("Your %s verification code is %s. It expires in %d minutes.",
			api.deps.Conf.AppName, code, int(api.deps.Conf.OTP.Expiry.Minutes())),
	})

	resp := SendOTPResponse{Success: "OTP sent"}
	if api.deps.Conf.Debug {
		// convenience for local development; never set outside Debug
		resp.DevOTP = code
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *authApi) verifyOTP(ctx echo.Context) error {
	var data VerifyOTPRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to VerifyOTPRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	if err := api.deps.OTPSvc.Verify(data.PhoneNumber, data.OTP); err != nil {
		return err
	}

	usr, err := api.deps.UserSvc.GetOrCreate(data.PhoneNumber)
	if err != nil {
		return errors.Wrap(err, "getting or creating user")
	}

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, AuthResponse{Token: token, User: usr})
}

func (api *authApi) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, usr)
}

// payment records a completed payment for the authenticated user. The
// reference id is generated here; there is no gateway behind it yet.
func (api *authApi) payment(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	usr, err = api.deps.UserSvc.RecordPayment(usr.PhoneNumber)
	if err != nil {
		return errors.Wrap(err, "recording payment")
	}
	return ctx.JSON(http.StatusOK, PaymentResponse{
		PaymentReference: uuid.New().String(),
		User:             usr,
	})
}

func (api *authApi) refreshToken(ctx echo.Context) error {
	token, err := refreshToken(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

type (
	SendOTPRequest struct {
		PhoneNumber string `json:"phone_number" validate:"required,phonenumber"`
	}

	SendOTPResponse struct {
		Success string `json:"success"`
		DevOTP  string `json:"dev_otp,omitempty"`
	}

	VerifyOTPRequest struct {
		PhoneNumber string `json:"phone_number" validate:"required,phonenumber"`
		OTP         string `json:"otp" validate:"required,otpcode"`
	}

	AuthResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}

	PaymentResponse struct {
		PaymentReference string    `json:"payment_reference"`
		User             user.User `json:"user"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

func (r *SendOTPRequest) Validate(validate *validator.Validate) error {
	r.PhoneNumber = core.CleanString(r.PhoneNumber)
	return validate.Struct(r)
}

func (r *VerifyOTPRequest) Validate(validate *validator.Validate) error {
	r.PhoneNumber = core.CleanString(r.PhoneNumber)
	r.OTP = core.CleanString(r.OTP)
	return validate.Struct(r)
}
