package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/app/repository"
	"github.com/harsoyo/notaris-web/internal/pkg/constants"
	"github.com/harsoyo/notaris-web/internal/pkg/flash"
	"github.com/harsoyo/notaris-web/internal/pkg/hcaptcha"
	"github.com/harsoyo/notaris-web/internal/pkg/seo"
	"github.com/harsoyo/notaris-web/internal/pkg/session"
	"github.com/harsoyo/notaris-web/internal/pkg/usercontext"
)

const msgLoginFailed = "Email atau kata sandi salah"

// AuthController handles the staff login session
type AuthController struct {
	users   repository.UserRepository
	captcha *hcaptcha.Verifier
}

// NewAuthController builds the controller. A nil or unconfigured captcha
// leaves the login form unprotected.
func NewAuthController(users repository.UserRepository, captcha *hcaptcha.Verifier) *AuthController {
	return &AuthController{users: users, captcha: captcha}
}

func (ac *AuthController) HandleLoginForm(c *fiber.Ctx) error {
	data := fiber.Map{"Email": ""}
	if ac.captcha.Enabled() {
		data["CaptchaSiteKey"] = ac.captcha.SiteKey
	}
	return renderPage(c, "auth/login", newLayout(c, "login", seo.LoginPage()), data)
}

func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	password := c.FormValue("password")

	if ok, err := ac.captcha.Verify(c.UserContext(), c.FormValue("h-captcha-response"), c.IP()); !ok {
		fiberlog.Infof("[Auth] Captcha rejected for %q: %v", email, err)
		return flash.RedirectWithError(c, constants.LoginRoute, "Verifikasi captcha gagal, silakan coba lagi")
	}

	// notice: the user is never told whether the email or the password was wrong
	user, err := ac.users.GetByEmail(c.UserContext(), email)
	if err != nil || user == nil || !user.IsActive() || !models.CheckPasswordHash(password, user.Password) {
		fiberlog.Infof("[Auth] Failed login for %q", email)
		return flash.RedirectWithError(c, constants.LoginRoute, msgLoginFailed)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fiberlog.Errorf("[Auth] Failed to load session: %v", err)
		return flash.RedirectWithError(c, constants.LoginRoute, "Terjadi kesalahan, silakan coba lagi")
	}

	// fresh session id on privilege change
	if err := sess.Regenerate(); err != nil {
		fiberlog.Errorf("[Auth] Failed to regenerate session: %v", err)
	}
	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.Role == models.ROLE_ADMIN)

	if err := sess.Save(); err != nil {
		fiberlog.Errorf("[Auth] Failed to save session: %v", err)
		return flash.RedirectWithError(c, constants.LoginRoute, "Terjadi kesalahan, silakan coba lagi")
	}

	if err := ac.users.TouchLastLogin(c.UserContext(), user.ID, time.Now()); err != nil {
		fiberlog.Warnf("[Auth] Failed to update last login for user %d: %v", user.ID, err)
	}

	return flash.RedirectWithSuccess(c, constants.ArticlesRoute, "Selamat datang, "+user.Name)
}

func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return flash.RedirectWithError(c, constants.LoginRoute, "Sesi tidak ditemukan")
	}

	if err := sess.Destroy(); err != nil {
		fiberlog.Errorf("[Auth] Failed to destroy session: %v", err)
		return flash.RedirectWithError(c, constants.PublicRoute, "Gagal keluar, silakan coba lagi")
	}

	usercontext.Set(c, usercontext.Anonymous())
	return flash.RedirectWithSuccess(c, constants.PublicRoute, "Anda telah keluar")
}
