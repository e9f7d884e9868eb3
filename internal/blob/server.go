package blob

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/icon"
	"github.com/craftstat/craftstat/internal/logger"
)

// Server serves cached icons over http. Retrieval is by exact store key
// and the content type falls out of the key's trailing extension.
type Server struct {
	engine *gin.Engine
	icons  icon.Repo
	listen string
	log    logger.Logger
}

// NewServer returns a Server reading icons from repo
func NewServer(listen string, icons icon.Repo) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine: gin.New(),
		icons:  icons,
		listen: listen,
		log:    logger.New(),
	}

	s.engine.GET("/:key", s.serveIcon)

	return s
}

// Run blocks serving icon requests
func (s *Server) Run() error {
	s.log.Info().Str("listen", s.listen).Msg("starting icon server")

	return s.engine.Run(s.listen)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) serveIcon(c *gin.Context) {
	key := c.Param("key")

	cached, err := s.icons.Find(key)

	if errors.Is(err, exception.ErrRecordNotFound) {
		c.Status(http.StatusNotFound)
		return
	}

	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("icon lookup failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "image/"+cached.Ext, cached.Data)
}
