package utils

import (
	"github.com/gin-gonic/gin"
)

// SetAuthCookies mirrors the issued tokens into HTTP-only cookies for
// browser clients.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	writeCookie(c, "accessToken", accessToken, int(AccessTokenExpiry.Seconds()))
	writeCookie(c, "refreshToken", refreshToken, int(RefreshTokenExpiry.Seconds()))
}

// ClearAuthCookies expires both auth cookies on logoff.
func ClearAuthCookies(c *gin.Context) {
	writeCookie(c, "accessToken", "", -1)
	writeCookie(c, "refreshToken", "", -1)
}

func writeCookie(c *gin.Context, name, value string, maxAge int) {
	// Plain HTTP is only acceptable for local development
	secure := gin.Mode() != gin.DebugMode
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}
