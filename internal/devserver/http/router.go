package http

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init -g router.go -d ./ -o ../../../api/devserver --outputTypes go --packageName devserver --parseDependency --parseInternal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/metrics"
	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/internal/devserver/store"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/httpx"
	"github.com/fractalglobal/fgc/pkg/jwtx"
	"github.com/fractalglobal/fgc/pkg/slogx"

	_ "github.com/fractalglobal/fgc/api/devserver" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	// routes lists every documented pattern in registration order.
	routes []string

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metrics.Metrics

	// appLimit is shared by every authenticated route so an application's
	// hourly allowance spans the whole API.
	appLimit httpx.Middleware

	store              store.Store
	TokenService       *service.TokenService
	ClientService      *service.ClientService
	AccountService     *service.AccountService
	FriendService      *service.FriendService
	TransactionService *service.TransactionService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      m,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		httpx.Recover(),
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.appLimit = httpx.RateLimitByApp(r.ClientService.RequestLimit)

	r.registerAuth()
	r.registerAccounts()
	r.registerUsers()
	r.registerFriends()
	r.registerTransactions()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// Routes returns the "METHOD /path" patterns registered by ApplyRoutes that
// are described in the API docs.
func (r *Router) Routes() []string {
	return append([]string(nil), r.routes...)
}

func (r *Router) handle(pattern string, h http.Handler) {
	r.routes = append(r.routes, pattern)
	r.Mux.Handle(pattern, h)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Fractal Global Credits API
//	@version		0.1.0
//	@description	Development server for the Fractal Global Credits API.
//	@description
//	@description				Applications obtain a token with the client_credentials grant and act on behalf of users by logging them in. Rejected requests that were well formed answer 202 with a message.
//
//	@contact.name				Fractal Global
//	@contact.url				https://github.com/fractalglobal/fgc
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h for an authenticated route: metrics, token verification,
// the route policy, then the calling application's request limit.
func (r *Router) secured(pattern string, h http.Handler, p httpx.Policy) {
	r.handle(pattern, httpx.Chain(h,
		r.metrics.Instrument(pattern),
		httpx.AuthnMiddleware(r.verifier),
		httpx.Require(p),
		r.appLimit,
	))
}

var (
	adminPolicy  = httpx.HasScope(fractalsdk.AdminScope.String())
	publicPolicy = httpx.HasScope(fractalsdk.PublicScope.String())
	userPolicy   = httpx.AnyUser()
	selfPolicy   = httpx.PathUser("id")
)

func (r *Router) registerAuth() {
	// POST /token - strict limit by IP and app id (credential guessing)
	const tokenPattern = "POST /v1/token"
	r.handle(tokenPattern,
		httpx.Chain(&TokenHandler{TokenService: r.TokenService},
			r.metrics.Instrument(tokenPattern),
			httpx.RateLimitMiddleware(httpx.StrictLimit,
				httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.BasicAuthKeyExtractor)),
		),
	)

	r.secured("POST /v1/login", &LoginHandler{TokenService: r.TokenService}, publicPolicy)
	r.secured("POST /v1/create_client", &ClientsHandler{ClientService: r.ClientService}, adminPolicy)
}

func (r *Router) registerAccounts() {
	h := &AccountHandler{AccountService: r.AccountService}

	r.secured("POST /v1/register", http.HandlerFunc(h.Register), publicPolicy)
	r.secured("GET /v1/resend_email_confirmation", http.HandlerFunc(h.ResendConfirmation), userPolicy)
	r.secured("POST /v1/confirm_email/{key}", http.HandlerFunc(h.ConfirmEmail), publicPolicy)
	r.secured("POST /v1/start_reset_password", http.HandlerFunc(h.StartResetPassword), publicPolicy)
	r.secured("POST /v1/reset_password/{key}", http.HandlerFunc(h.ResetPassword), publicPolicy)
	r.secured("POST /v1/subscribe", http.HandlerFunc(h.Subscribe), publicPolicy)
}

func (r *Router) registerUsers() {
	h := &UserHandler{AccountService: r.AccountService}
	adminOrSelf := httpx.AnyOf(adminPolicy, selfPolicy)

	r.secured("GET /v1/user/{id}", http.HandlerFunc(h.GetUser), adminOrSelf)
	r.secured("DELETE /v1/user/{id}", http.HandlerFunc(h.DeleteUser), adminPolicy)
	r.secured("GET /v1/all_users", http.HandlerFunc(h.AllUsers), adminPolicy)
	r.secured("GET /v1/search_user/random/{count}", http.HandlerFunc(h.RandomSearch),
		httpx.AnyOf(adminPolicy, userPolicy))
	r.secured("GET /v1/authenticator/{id}", http.HandlerFunc(h.Authenticator), selfPolicy)
	r.secured("POST /v1/authenticate/{id}", http.HandlerFunc(h.Authenticate), selfPolicy)
	r.secured("POST /v1/update_user/{id}", http.HandlerFunc(h.UpdateUser), adminOrSelf)
	r.secured("POST /v1/confirm_user_email/{id}", h.SetEmailConfirmed(true), adminPolicy)
	r.secured("POST /v1/unconfirm_user_email/{id}", h.SetEmailConfirmed(false), adminPolicy)
}

func (r *Router) registerFriends() {
	h := &FriendHandler{FriendService: r.FriendService}
	adminOrSelf := httpx.AnyOf(adminPolicy, selfPolicy)

	r.secured("POST /v1/create_friend_request", http.HandlerFunc(h.Create), userPolicy)
	r.secured("POST /v1/confirm_friend_request", h.Answer(true), userPolicy)
	r.secured("POST /v1/reject_friend_request", h.Answer(false), userPolicy)
	r.secured("DELETE /v1/friend/{id}", http.HandlerFunc(h.Unfriend), userPolicy)
	r.secured("GET /v1/friend_requests/{id}", http.HandlerFunc(h.Pending), adminOrSelf)
	r.secured("GET /v1/friends/{id}", http.HandlerFunc(h.Friends), adminOrSelf)
}

func (r *Router) registerTransactions() {
	h := &TransactionHandler{TransactionService: r.TransactionService}

	r.secured("GET /v1/transaction/{id}", http.HandlerFunc(h.Get), httpx.AnyOf(adminPolicy, userPolicy))
	r.secured("POST /v1/new_transaction", http.HandlerFunc(h.Create), userPolicy)
	r.secured("GET /v1/all_transactions/{since}", http.HandlerFunc(h.ListSince), adminPolicy)
}

func (r *Router) registerSystem() {
	// Health checks - lenient limits (monitoring systems may poll frequently)
	r.handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
