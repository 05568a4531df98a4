package controllers

import (
	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/pkg/resp"
	"github.com/eddietapia/reservations/services"
	"github.com/eddietapia/reservations/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type eaterResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	eater, err := ctl.Service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, mapEater(eater))
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, eater, err := ctl.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "eater": mapEater(eater)})
}

func (ctl *AuthController) Me(c *gin.Context) {
	eater, err := ctl.Service.GetProfile(utils.CurrentEaterID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, mapEater(eater))
}

func mapEater(e *entity.Eater) eaterResponse {
	return eaterResponse{ID: e.ID, Name: e.Name, Email: e.Email, Role: e.Role}
}
