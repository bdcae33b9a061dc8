// Package api exposes a Factory over HTTP with gin.
package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"okinoko_treasury/contract"
	"okinoko_treasury/sdk"
	"okinoko_treasury/store"
)

// CallerHeader carries the authenticated caller identity. Authentication itself happens in
// front of this service.
const CallerHeader = "X-Caller"

// Server serializes every request against one factory, orgs are single writer.
type Server struct {
	mu      sync.Mutex
	factory *contract.Factory
	state   store.State
	router  *gin.Engine
}

// NewServer wires the routes. st may be nil, in which case nothing is persisted.
func NewServer(f *contract.Factory, st store.State) *Server {
	s := &Server{factory: f, state: st, router: gin.New()}
	s.router.Use(gin.Recovery())
	s.routes()
	return s
}

// Handler returns the http.Handler to mount.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := s.router.Group("/api/v1")
	v1.GET("/instances", s.listInstances)
	v1.POST("/instances", s.createInstance)

	org := v1.Group("/instances/:id")
	org.GET("", s.getInstance)
	org.GET("/balances/:holder", s.getBalance)
	org.POST("/purchase", s.purchase)
	org.POST("/redeem", s.redeem)
	org.POST("/transfer", s.transfer)
	org.POST("/deposit", s.deposit)

	org.GET("/proposals", s.listProposals)
	org.POST("/proposals", s.createProposal)
	org.GET("/proposals/:pid", s.getProposal)
	org.POST("/proposals/:pid/sign", s.signProposal)
	org.POST("/proposals/:pid/activate", s.activateProposal)

	org.GET("/whitelist", s.listWhitelistProposals)
	org.POST("/whitelist", s.createWhitelistProposal)
	org.POST("/whitelist/:pid/sign", s.signWhitelistProposal)
	org.POST("/whitelist/:pid/activate", s.activateWhitelistProposal)
}

// saveInstance writes a freshly created org and the instance list that names it.
func (s *Server) saveInstance(ctx context.Context, id sdk.Address) error {
	o, err := s.factory.Instance(id)
	if err != nil {
		return err
	}
	if err := o.Save(ctx, s.state); err != nil {
		return err
	}
	return s.factory.SaveRegistry(ctx, s.state)
}
