package middleware

import (
	"log"
	"net/http"
	"strings"
	authinterfaces "vet_service/internal/auth_interfaces"
	"vet_service/internal/cookie"
	"vet_service/internal/jwt_service"

	"github.com/gin-gonic/gin"
)

// ключ контекста gin, под которым лежит полезная нагрузка проверенного токена
const UserDataKey = "userData"

// AuthMiddleware - охранник защищённых маршрутов. Достаёт токен сессии
// (сначала из куки authorization, затем из заголовка Authorization),
// верифицирует его и кладёт полезную нагрузку в контекст запроса.
// Все три исхода неудачной верификации (порча, чужая подпись, просрочка)
// наружу выглядят одинаково: общий 401 без деталей.
func AuthMiddleware(tokens jwt_service.JWTManager, cookies cookie.CookieManagerInterface, blackList authinterfaces.BlackListRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Сначала пробуем получить токен из куки
		tokenString, err := cookies.GetCookie(c, cookie.AuthCookieName)
		if err != nil || tokenString == "" {
			// Куки нет - падаем назад на заголовок Authorization (сырой токен)
			tokenString = strings.TrimSpace(c.GetHeader("Authorization"))
		}

		// если токена нет нигде, считаем пользователя не аутентифицированным
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized, credentials not found",
				"success": false,
			})
			return
		}

		// Верифицируем токен
		claims, err := tokens.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized, the given credential is invalid",
				"success": false,
			})
			return
		}

		// Проверяем черный список отозванных токенов (если он сконфигурирован).
		// Ошибку хранилища трактуем как невалидный токен: закрываемся, а не открываемся.
		if blackList != nil {
			revoked, err := blackList.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				log.Printf("blacklist lookup failed: %v", err)
			}
			if err != nil || revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": "Unauthorized, the given credential is invalid",
					"success": false,
				})
				return
			}
		}

		// Переписываем заголовок в форму Bearer для нижестоящих обработчиков
		c.Request.Header.Set("Authorization", "Bearer "+tokenString)

		// Добавляем данные пользователя в контекст
		c.Set(UserDataKey, claims)
		c.Next()
	}
}

// IdentityFromContext достаёт полезную нагрузку токена, положенную охранником
func IdentityFromContext(c *gin.Context) (*jwt_service.CustomClaims, bool) {
	value, exists := c.Get(UserDataKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*jwt_service.CustomClaims)
	return claims, ok
}
