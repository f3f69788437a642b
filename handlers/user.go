package handlers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/aykutolcay94-gif/buildestate/config"
	"github.com/aykutolcay94-gif/buildestate/email"
	"github.com/aykutolcay94-gif/buildestate/models"
	"github.com/aykutolcay94-gif/buildestate/utils"
)

type UserController struct {
	users  *mongo.Collection
	mailer email.Mailer
}

func NewUserController(users *mongo.Collection, mailer email.Mailer) *UserController {
	return &UserController{users: users, mailer: mailer}
}

// ready reports whether the user collection is available. Auth has no demo
// fallback; without a database these endpoints fail as server errors.
func (uc *UserController) ready() bool {
	return uc.users != nil
}

func (uc *UserController) Login(c echo.Context) error {
	if !uc.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}

	var user models.User
	err := uc.users.FindOne(c.Request().Context(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fail(c, http.StatusOK, "E-posta bulunamadı")
		}
		config.Log.Error("kullanıcı sorgusu başarısız", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return fail(c, http.StatusOK, "Geçersiz şifre")
	}

	token, err := utils.GenerateUserJWT(user.ID, user.Email)
	if err != nil {
		config.Log.Error("token üretilemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	return ok(c, http.StatusOK, echo.Map{
		"token": token,
		"user":  models.UserInfo{Name: user.Name, Email: user.Email},
	})
}

func (uc *UserController) Register(c echo.Context) error {
	if !uc.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if !utils.IsValidEmail(req.Email) {
		return fail(c, http.StatusOK, "Geçersiz e-posta")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz girdi verisi")
	}

	count, err := uc.users.CountDocuments(c.Request().Context(), bson.M{"email": req.Email})
	if err != nil {
		config.Log.Error("kullanıcı sorgusu başarısız", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if count > 0 {
		return fail(c, http.StatusOK, "Bu e-posta adresi zaten kayıtlı")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		config.Log.Error("şifre hashlenemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := uc.users.InsertOne(c.Request().Context(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fail(c, http.StatusOK, "Bu e-posta adresi zaten kayıtlı")
		}
		config.Log.Error("kullanıcı oluşturulamadı", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	token, err := utils.GenerateUserJWT(user.ID, user.Email)
	if err != nil {
		config.Log.Error("token üretilemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	// Registration succeeds whether or not the welcome mail goes out.
	if err := uc.mailer.SendWelcome(user.Email, user.Name); err != nil {
		config.Log.Warn("hoş geldin e-postası gönderilemedi", zap.String("email", user.Email), zap.Error(err))
	}

	return ok(c, http.StatusOK, echo.Map{
		"token": token,
		"user":  models.UserInfo{Name: user.Name, Email: user.Email},
	})
}

func (uc *UserController) AdminLogin(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}

	if req.Email != os.Getenv("ADMIN_EMAIL") || req.Password != os.Getenv("ADMIN_PASSWORD") ||
		req.Email == "" {
		return fail(c, http.StatusBadRequest, "Geçersiz kimlik bilgileri")
	}

	token, err := utils.GenerateAdminJWT(req.Email)
	if err != nil {
		config.Log.Error("token üretilemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	return ok(c, http.StatusOK, echo.Map{"token": token})
}

func (uc *UserController) ForgotPassword(c echo.Context) error {
	if !uc.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}

	var user models.User
	err := uc.users.FindOne(c.Request().Context(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fail(c, http.StatusNotFound, "E-posta bulunamadı")
		}
		config.Log.Error("kullanıcı sorgusu başarısız", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	resetToken, err := utils.GenerateResetToken()
	if err != nil {
		config.Log.Error("sıfırlama tokenı üretilemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	update := bson.M{"$set": bson.M{
		"resetToken":       resetToken,
		"resetTokenExpire": time.Now().Add(10 * time.Minute),
	}}
	if _, err := uc.users.UpdateOne(c.Request().Context(), bson.M{"_id": user.ID}, update); err != nil {
		config.Log.Error("sıfırlama tokenı kaydedilemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	websiteURL := os.Getenv("WEBSITE_URL")
	if websiteURL == "" {
		websiteURL = "http://localhost:5173"
	}
	resetURL := websiteURL + "/reset/" + resetToken
	if err := uc.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		config.Log.Error("sıfırlama e-postası gönderilemedi", zap.String("email", user.Email), zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	return ok(c, http.StatusOK, echo.Map{"message": "E-posta gönderildi"})
}

func (uc *UserController) ResetPassword(c echo.Context) error {
	if !uc.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	token := c.Param("token")
	var req struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil || req.Password == "" {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}

	var user models.User
	filter := bson.M{
		"resetToken":       token,
		"resetTokenExpire": bson.M{"$gt": time.Now()},
	}
	err := uc.users.FindOne(c.Request().Context(), filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fail(c, http.StatusBadRequest, "Geçersiz veya süresi dolmuş token")
		}
		config.Log.Error("kullanıcı sorgusu başarısız", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		config.Log.Error("şifre hashlenemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	update := bson.M{
		"$set":   bson.M{"password": hashedPassword, "updatedAt": time.Now()},
		"$unset": bson.M{"resetToken": "", "resetTokenExpire": ""},
	}
	if _, err := uc.users.UpdateOne(c.Request().Context(), bson.M{"_id": user.ID}, update); err != nil {
		config.Log.Error("şifre güncellenemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	return ok(c, http.StatusOK, echo.Map{"message": "Şifre başarıyla sıfırlandı"})
}

func (uc *UserController) Logout(c echo.Context) error {
	return ok(c, http.StatusOK, echo.Map{"message": "Çıkış yapıldı"})
}

// Me returns the caller's name and email for the profile header.
func (uc *UserController) Me(c echo.Context) error {
	if !uc.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	userID, _ := c.Get("user_id").(string)
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "Geçersiz token")
	}

	var user models.User
	err = uc.users.FindOne(c.Request().Context(), bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fail(c, http.StatusNotFound, "Kullanıcı bulunamadı")
		}
		config.Log.Error("kullanıcı sorgusu başarısız", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	return ok(c, http.StatusOK, echo.Map{
		"user": models.UserInfo{Name: user.Name, Email: user.Email},
	})
}
