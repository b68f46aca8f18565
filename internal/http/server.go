package http

import (
	"github.com/gin-gonic/gin"
)

// Server owns the wired gin engine and is what the app actually runs.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run blocks serving HTTP on the given address (":8080" style).
func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}
