package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator"
)

// создаём экзмепляр валидатора (чтобы он создавался в памяти только при загрузке модуля)
var validate = validator.New()

// ValidateAuthMiddleware создает middleware для валидации тела запроса.
// Нечитаемый JSON - это 400, а не прошедшие проверку поля - 422.
func ValidateAuthMiddleware(model interface{}) gin.HandlerFunc {

	return func(c *gin.Context) {
		// Создаем новый экземпляр структуры для валидации
		request := reflect.New(reflect.TypeOf(model).Elem()).Interface()

		// Парсим БЕЗ встроенной валидации Gin
		// Используем ShouldBindBodyWith с binding.JSON
		if err := c.ShouldBindBodyWith(request, binding.JSON); err != nil {
			// Только ошибки парсинга JSON (не валидации!)
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid JSON format",
				"success": false,
			})
			c.Abort()
			return
		}

		// Валидируем структуру
		if err := validate.Struct(request); err != nil {
			details := make(map[string]string)
			for _, err := range err.(validator.ValidationErrors) {
				details[err.Field()] = err.Tag()
			}

			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "A valid email must be provided",
				"success": false,
				"details": details,
			})

			c.Abort()
			return
		}

		// Сохраняем валидированные данные в контекст для использования в обработчике
		c.Set("validatedData", request)
		c.Next()
	}
}
