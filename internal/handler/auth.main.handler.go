package handler

import (
	"gadgetmart-auth/internal/service/captcha"
	"gadgetmart-auth/internal/usecase"
)

type AuthHandler struct {
	uc      *usecase.UserUsecase
	captcha captcha.Verifier
}

func NewAuthHandler(uc *usecase.UserUsecase, captcha captcha.Verifier) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		captcha: captcha,
	}
}
