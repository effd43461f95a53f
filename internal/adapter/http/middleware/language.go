package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/translator"
)

// LanguageMiddleware resolves the request locale from the Accept-Language
// header. Anything that does not start with "en" is Portuguese.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguagePt
		}
		c.Set("lang", string(domain.ParseLocale(lang)))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguagePt
}

// GetLocale returns the request locale as the closed domain enum.
func GetLocale(c *gin.Context) domain.Locale {
	return domain.ParseLocale(GetLang(c))
}
