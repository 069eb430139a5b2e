package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/abdrasaq14/payever-test/internal/application"
	"github.com/abdrasaq14/payever-test/pkg/apperrors"
	"github.com/abdrasaq14/payever-test/pkg/response"
	"github.com/abdrasaq14/payever-test/pkg/validation"
)

type UserHandler struct {
	Svc     *userapp.Service
	Avatars *userapp.AvatarStore
	Logger  *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, avatars *userapp.AvatarStore, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Avatars: avatars, Logger: logger}
}

type createUserRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Avatar    *string `json:"avatar"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "Error creating user", apperrors.New(apperrors.Validation, validation.Message(err)))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), userapp.CreateUserInput{
		FirstName: req.FirstName,
		Email:     req.Email,
		Avatar:    req.Avatar,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("email", req.Email).Warn("create user failed")
		}
		response.Error(c, "Error creating user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    u,
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, "Error fetching user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User fetched successfully",
		"user":    u,
	})
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Message(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, "Error uploading avatar", apperrors.Wrap(apperrors.IO, "failed to open uploaded file", err))
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, "Error uploading avatar", apperrors.Wrap(apperrors.IO, "failed to read uploaded file", err))
		return
	}

	img, err := h.Avatars.SaveAvatar(c.Request.Context(), c.Param("userId"), data)
	if err != nil {
		response.Error(c, "Error uploading avatar", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar uploaded and saved successfully",
		"image":   img,
	})
}

func (h *UserHandler) GetAvatar(c *gin.Context) {
	img, err := h.Avatars.GetAvatar(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if apperrors.KindOf(err) == apperrors.NotFound {
			response.Error(c, "Avatar not found", err)
			return
		}
		response.Error(c, "Error fetching avatar", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": img})
}

func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	if err := h.Avatars.DeleteAvatar(c.Request.Context(), c.Param("userId")); err != nil {
		response.Error(c, "Error deleting user avatar", err)
		return
	}
	response.Message(c, http.StatusOK, "User avatar deleted successfully")
}
