// описание хэндлеров аутентификации
package handlers

import (
	"log"
	"net/http"
	"strings"
	"vet_service/internal/cookie"
	"vet_service/internal/middleware"
	"vet_service/internal/vet_server/dto"
	"vet_service/internal/vet_server/service"

	"github.com/gin-gonic/gin"
)

// описание интерфейса слоя хэндлеров аутентификации
type AuthHandlerInterface interface {
	RegisterHandler(c *gin.Context)
	LoginHandler(c *gin.Context)
	LogoutHandler(c *gin.Context)
	CheckHandler(c *gin.Context)
}

// структура хэндлера аутентификации
type AuthHandler struct {
	service  service.AuthServiceInterface
	cookies  cookie.CookieManagerInterface
	tokenTTL int // max-age куки в секундах, совпадает со временем жизни токена
}

// конструктор для слоя хэндлеров
func NewAuthHandler(service service.AuthServiceInterface, cookies cookie.CookieManagerInterface, tokenTTL int) *AuthHandler {
	return &AuthHandler{
		service:  service,
		cookies:  cookies,
		tokenTTL: tokenTTL,
	}
}

// метод слоя Handlers для регистрации нового пользователя:
// 409 при дубликате, 422 без пароля, при успехе - кука сессии и безопасная
// полезная нагрузка (без хэша пароля и флага администратора)
func (a *AuthHandler) RegisterHandler(c *gin.Context) {
	validatedData, exists := c.Get("validatedData")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "success": false})
		return
	}

	req, ok := validatedData.(*dto.RegisterRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error", "success": false})
		return
	}

	// вызываем метод сервиса для регистрации нового пользователя
	payload, token, err := a.service.Register(c.Request.Context(), req.Email, req.Password, req.Phone, req.Address)
	if err != nil {
		code, apiErr := ToAPIError(err)
		if code == http.StatusInternalServerError {
			// детали внутренних ошибок остаются в логе сервера
			log.Printf("register failed: %v", err)
		}
		c.JSON(code, gin.H{"success": false, "error": apiErr})
		return
	}

	// кука сессии ставится тем же набором атрибутов, которым будет удаляться
	if err := a.cookies.SetCookie(c, cookie.CookieOptions{
		Name:   cookie.AuthCookieName,
		Value:  token,
		MaxAge: a.tokenTTL,
	}); err != nil {
		log.Printf("failed to set session cookie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error, the user could not be created", "success": false})
		return
	}

	// в ответе пользователю отдаём только безопасное подмножество полей
	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "User created successfully!",
		Data:    payload,
	})
}

// метод слоя Handlers для логина: 404 если пользователя нет, 422 без пароля,
// 401 при неверном пароле. В теле ответа - то же безопасное подмножество,
// что и в токене (хэш пароля и флаг администратора наружу не уходят).
func (a *AuthHandler) LoginHandler(c *gin.Context) {
	// проверяем, есть ли в контексте валидированные данные
	validatedData, exists := c.Get("validatedData")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "success": false})
		return
	}

	// Приведение типа с проверкой
	req, ok := validatedData.(*dto.LoginRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error", "success": false})
		return
	}

	// пробуем залогинить пользователя
	payload, token, err := a.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		code, apiErr := ToAPIError(err)
		if code == http.StatusInternalServerError {
			log.Printf("login failed: %v", err)
		}
		c.JSON(code, gin.H{"success": false, "error": apiErr})
		return
	}

	// Устанавливаем куку "authorization" с только что подписанным токеном
	if err := a.cookies.SetCookie(c, cookie.CookieOptions{
		Name:   cookie.AuthCookieName,
		Value:  token,
		MaxAge: a.tokenTTL,
	}); err != nil {
		log.Printf("failed to set session cookie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error, the user could not be logged in", "success": false})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "The user has been logged in successfully",
		Data:    payload,
	})
}

// метод слоя Handlers для логаута: всегда чистим куку тем же набором атрибутов,
// которым она ставилась, и по возможности отзываем токен через черный список
func (a *AuthHandler) LogoutHandler(c *gin.Context) {
	// если при запросе пришёл валидный токен, отзываем его (best-effort)
	tokenString, err := a.cookies.GetCookie(c, cookie.AuthCookieName)
	if err != nil || tokenString == "" {
		tokenString = strings.TrimSpace(c.GetHeader("Authorization"))
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	}
	if tokenString != "" {
		if err := a.service.RevokeToken(c.Request.Context(), tokenString); err != nil {
			// неудачный отзыв не мешает выходу: кука всё равно будет удалена
			log.Printf("failed to revoke token on logout: %v", err)
		}
	}

	// Удаляем куку аутентификации, что закрывает сессию пользователя
	a.cookies.DeleteCookie(c, cookie.AuthCookieName, "")

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "The user has been logged out successfully",
		Success: true,
	})
}

// метод слоя Handlers для проверки сессии: сюда пускает только охранник,
// поэтому остаётся просто вернуть полезную нагрузку токена
func (a *AuthHandler) CheckHandler(c *gin.Context) {
	claims, ok := middleware.IdentityFromContext(c)
	if !ok {
		// до этой ветки запрос может дойти только мимо охранника
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized, credentials not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, dto.CheckResponse{
		Message:  "The user is logged in correctly",
		Success:  true,
		UserData: claims,
	})
}
