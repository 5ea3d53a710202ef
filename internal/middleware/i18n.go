// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// I18nMiddleware stores the preferred supported language under "lang".
// Unknown languages fall back to defaultLang.
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = "en"
	}

	return func(c *gin.Context) {
		lang := defaultLang

		// Handle cases like "tr-TR,tr;q=0.9,en;q=0.8"
		if header := c.GetHeader("Accept-Language"); header != "" {
			langs := strings.Split(header, ",")
			firstLang := strings.TrimSpace(strings.Split(langs[0], ";")[0])
			switch strings.ToLower(strings.ReplaceAll(firstLang, "_", "-")) {
			case "tr", "tr-tr":
				lang = "tr"
			case "en", "en-us", "en-gb":
				lang = "en"
			}
		}

		c.Set("lang", lang)
		c.Next()
	}
}
