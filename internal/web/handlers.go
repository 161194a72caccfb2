package web

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/davidfer1112/portfolio/internal/contact"
	"github.com/davidfer1112/portfolio/internal/locale"
	"github.com/davidfer1112/portfolio/internal/nav"
	"github.com/davidfer1112/portfolio/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// SessionCookie carries the page session id. It has no Max-Age, so it
	// ends with the browser session.
	SessionCookie = "portfolio_session"

	// ScrollEvent is the client event fired by HX-Trigger to scroll.
	ScrollEvent = "portfolio:scroll"

	langKey = "lang"
)

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func (s *Server) setSessionCookie(c *gin.Context, sess *view.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
}

// session returns the caller's page session, starting one in the default
// language when the cookie is missing or the session expired.
func (s *Server) session(c *gin.Context) *view.Session {
	if id, err := c.Cookie(SessionCookie); err == nil {
		if sess, ok := s.sessions.Get(id); ok {
			c.Set(langKey, sess.Store.Get().String())
			return sess
		}
	}
	sess := s.sessions.Start(s.cfg.App.Language())
	s.setSessionCookie(c, sess)
	c.Set(langKey, sess.Store.Get().String())
	return sess
}

// handleIndex renders the whole page. Every full load starts a fresh
// session so a reload resets language and selection.
func (s *Server) handleIndex(c *gin.Context) {
	if id, err := c.Cookie(SessionCookie); err == nil {
		s.sessions.End(id)
	}

	lang := s.cfg.App.Language()
	if q := c.Query("lang"); q != "" {
		if l, err := locale.Parse(q); err == nil {
			lang = l
		}
	}

	sess := s.sessions.Start(lang)
	s.setSessionCookie(c, sess)
	c.Set(langKey, lang.String())
	c.HTML(http.StatusOK, "index.html", s.composer.Page(sess))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
}

// handleLanguage switches the session language and re-renders every
// section. The experience selection is kept in both the HTMX and the
// plain form flow.
func (s *Server) handleLanguage(c *gin.Context) {
	lang, err := locale.Parse(c.PostForm("lang"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	sess := s.session(c)
	sess.SetLanguage(lang)
	c.Set(langKey, lang.String())

	tmpl := "page"
	if !isHTMX(c) {
		tmpl = "index.html"
	}
	c.HTML(http.StatusOK, tmpl, s.composer.Page(sess))
}

// handleSelectExperience changes the experience detail panel. Indexes out
// of range leave the selection as it was.
func (s *Server) handleSelectExperience(c *gin.Context) {
	i, err := strconv.Atoi(c.PostForm("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "index must be an integer")
		return
	}

	sess := s.session(c)
	if !sess.Select(i) {
		s.log.Debug("experience index out of range", zap.Int("index", i))
	}

	tmpl := "experience"
	if !isHTMX(c) {
		tmpl = "index.html"
	}
	c.HTML(http.StatusOK, tmpl, s.composer.Page(sess))
}

// handleNavigate scrolls to a section. Unknown anchors answer 204 with no
// scroll.
func (s *Server) handleNavigate(c *gin.Context) {
	sess := s.session(c)
	scroller := nav.ScrollerFunc(func(id string) {
		if isHTMX(c) {
			trigger, _ := json.Marshal(map[string]any{ScrollEvent: map[string]string{"id": id}})
			c.Header("HX-Trigger", string(trigger))
			c.Status(http.StatusOK)
			return
		}
		c.Redirect(http.StatusSeeOther, "/#"+id)
	})

	if !sess.Navigator.NavigateTo(c.Param("anchor"), scroller) {
		c.Status(http.StatusNoContent)
	}
}

// handleCV streams the CV as a download.
func (s *Server) handleCV(c *gin.Context) {
	name := path.Join("docs", s.cfg.Assets.CVFile)
	f, err := s.assets.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Error("open cv", zap.Error(err))
		}
		c.Status(http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.log.Error("stat cv", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.DataFromReader(http.StatusOK, info.Size(), "application/pdf", f, map[string]string{
		"Content-Disposition": `attachment; filename="` + s.cfg.Assets.CVDownload + `"`,
	})
}

// handleLink opens one of the fixed outbound links and counts the click.
func (s *Server) handleLink(c *gin.Context) {
	name := c.Param("name")
	target, ok := s.links[name]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	if s.stats != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.stats.RecordClick(ctx, name, target); err != nil {
			s.log.Warn("record link click", zap.String("link", name), zap.Error(err))
		}
	}
	c.Redirect(http.StatusFound, target)
}

type contactView struct {
	view.Page
	Form    contact.Form
	Message string
	OK      bool
}

func (s *Server) handleContactForm(c *gin.Context) {
	sess := s.session(c)
	c.HTML(http.StatusOK, "contact-form", contactView{Page: s.composer.Page(sess)})
}

// handleContact validates and sends the contact form. Like the rest of the
// HTMX surface it answers 200 with a result fragment, so htmx swaps it.
func (s *Server) handleContact(c *gin.Context) {
	sess := s.session(c)
	v := contactView{Page: s.composer.Page(sess)}
	text := v.Text.Contact.Form

	if err := c.ShouldBind(&v.Form); err != nil {
		v.Message = text.Invalid
		c.HTML(http.StatusOK, "contact-result", v)
		return
	}

	if err := s.mailer.Send(v.Form); err != nil {
		s.log.Error("error sending contact email", zap.Error(err))
		v.Message = text.Failed
		c.HTML(http.StatusOK, "contact-result", v)
		return
	}

	s.log.Info("contact email sent", zap.String("from", v.Form.Email))
	v.Message = text.Sent
	v.OK = true
	c.HTML(http.StatusOK, "contact-result", v)
}
