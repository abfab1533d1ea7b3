package candidateauth

import (
	"github.com/Abraxas-365/headhunter/pkg/errx"
	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/pkg/kernel"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

const (
	basicRealm       = "Login required!"
	localsEmail      = "login_email"
	localsPassphrase = "login_passphrase"
)

type Handlers struct {
	authService *CandidateAuthService
}

func NewHandlers(authService *CandidateAuthService) *Handlers {
	return &Handlers{
		authService: authService,
	}
}

// BasicAuth decodes the Authorization header and stores the credentials in
// Locals. The credentials themselves are checked by Login.
func BasicAuth() fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: basicRealm,
		Authorizer: func(user, _ string) bool {
			return user != ""
		},
		Unauthorized:    unauthorized,
		ContextUsername: localsEmail,
		ContextPassword: localsPassphrase,
	})
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="`+basicRealm+`"`)
	return auth.ErrUnauthorized()
}

// Login exchanges HTTP Basic credentials for a token
// POST /api/auth
func (h *Handlers) Login(c *fiber.Ctx) error {
	email, _ := c.Locals(localsEmail).(string)
	password, _ := c.Locals(localsPassphrase).(string)

	session, err := h.authService.Login(c.UserContext(), kernel.Email(email), password)
	if err != nil {
		if errx.IsCode(err, auth.CodeUnauthorized) {
			return unauthorized(c)
		}
		return err
	}

	return c.JSON(session)
}

// RegisterRoutes registers candidate auth routes
func RegisterRoutes(
	app *fiber.App,
	handlers *Handlers,
	rateLimit fiber.Handler,
) {
	api := app.Group("/api")

	api.Post("/auth", rateLimit, BasicAuth(), handlers.Login)
}
