package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/middleware"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Executados na ordem da lista, antes do handler
	// LongRunning exclui a rota do aviso de requisição lenta (lote de auditorias e cron)
	LongRunning bool
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// New cria o roteador. Rotas e métodos desconhecidos respondem no formato de erro da API.
func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", map[string]any{
			"path": r.URL.Path,
		})
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido para esta rota", map[string]any{
			"method": r.Method,
			"allow":  w.Header().Get("Allow"),
		})
	})
	// OPTIONS é respondido pelo middleware de CORS
	rt.HandleOPTIONS = false

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas aplicando os middlewares específicos de cada uma
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		if route.LongRunning {
			handler = middleware.LongRunning()(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
