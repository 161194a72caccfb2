package web

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminCookie = "admin_token"

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// adminAuth redirects to the login page unless the admin cookie matches
// the token generated at start-up.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) clientHash(c *gin.Context) string {
	if s.tracker == nil {
		return ""
	}
	return s.tracker.HashIP(c.ClientIP())
}

func (s *Server) adminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{"title": "Privacy Policy"})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		user := c.PostForm("username")
		pass := c.PostForm("password")
		creds := s.cfg.Admin

		if equal(user, creds.Username) && equal(pass, creds.Password) {
			c.SetSameSite(http.SameSiteStrictMode)
			c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
			s.log.Info("admin login successful", zap.String("client", s.clientHash(c)))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		s.log.Warn("failed admin login attempt", zap.String("client", s.clientHash(c)))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"title": "Admin Login", "error": "Invalid credentials"})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.stats.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("error loading admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats, "sessions": s.sessions.Len()})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.stats.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.stats.Visitors(c.Request.Context(), 200)
		if err != nil {
			s.log.Error("error loading visitors", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load visitors"})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"visitors": visitors})
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.stats.Cleanup(c.Request.Context(), s.cfg.App.VisitorRetention)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup done", "removed": n})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.stats.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", zap.String("client", s.clientHash(c)))
		c.JSON(http.StatusOK, stats)
	})
}
