package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/LiteBots/VelorieMarket/internal/http/handlers"
	"github.com/LiteBots/VelorieMarket/internal/http/middleware"
)

func BuildRouter(
	ah *handlers.AuthHandlers,
	lh *handlers.ListingHandlers,
	uh *handlers.UserHandlers,
	ih *handlers.InfoBarHandlers,
	aah *handlers.AdminAuthHandlers,
	adh *handlers.AdminHandlers,
	userMW gin.HandlerFunc,
	adminMW gin.HandlerFunc,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	api.POST("/register", ah.Register)
	api.POST("/login", ah.Login)
	api.GET("/listings", lh.List)
	api.GET("/infobar", ih.Get)

	authed := api.Group("/").Use(userMW)
	authed.POST("/logout", ah.Logout)
	authed.GET("/me", uh.Me)
	authed.POST("/listings", lh.Create)
	authed.POST("/shop/buy-verification", uh.BuyVerification)

	// The 2FA endpoints themselves are unauthenticated: they ARE the login.
	admin := api.Group("/admin")
	admin.POST("/login", aah.Login)
	admin.POST("/verify", aah.Verify)
	admin.POST("/logout", aah.Logout)

	panel := admin.Group("/").Use(adminMW, cb.Enforce())
	panel.GET("/stats", adh.Stats)
	panel.GET("/users", adh.Users)
	panel.DELETE("/users/:id", adh.DeleteUser)
	panel.POST("/users/:id/balance", adh.AdjustBalance)
	panel.GET("/transactions", adh.Transactions)
	panel.GET("/verifications", adh.Verifications)
	panel.POST("/verifications/approve/:id", adh.ApproveVerification)
	panel.POST("/verifications/revoke/:id", adh.RevokeVerification)
	panel.POST("/verifications/manual", adh.ManualVerification)
	panel.POST("/infobar", ih.Update)

	return r
}
