package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ja7ad/kinema/pkg/drive"
	"github.com/ja7ad/kinema/pkg/form"
	"github.com/ja7ad/kinema/pkg/report"
)

// Version is reported by GET /version. It is set by the CLI.
var Version = "dev"

// CalculateRequest mirrors the calculator form: raw text fields plus an
// optional drive type.
type CalculateRequest struct {
	Power string `json:"power"`
	Speed string `json:"speed"`
	Ratio string `json:"ratio"`
	Drive string `json:"drive,omitempty"`
}

// ErrorResponse is the body of every 4xx answer.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// Server serves the calculator over HTTP.
type Server struct {
	defaultDrive drive.Type
	log          logrus.FieldLogger
	router       *gin.Engine
}

// New builds the router. defaultDrive is applied when a request has no drive.
func New(defaultDrive drive.Type, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{defaultDrive: defaultDrive, log: log}
	s.router = s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(s.log))
	router.GET("/drives", getDrives)
	router.GET("/formulas", getFormulas)
	router.GET("/notation", getNotation)
	router.POST("/calculate", s.calculate)
	router.GET("/version", getVersion)

	return router
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	return <-errc
}

func getDrives(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, drive.DriveTypes())
}

func getFormulas(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, drive.Formulas())
}

func getNotation(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"steps":    drive.UsageSteps(),
		"notation": drive.Notation(),
	})
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, Version)
}

func (s *Server) calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	ctl := form.New(s.defaultDrive)
	ctl.SetPower(req.Power)
	ctl.SetSpeed(req.Speed)
	ctl.SetRatio(req.Ratio)
	if req.Drive != "" {
		ctl.SetDrive(req.Drive)
	}

	out, err := ctl.Submit()
	if err != nil {
		if errors.Is(err, form.ErrNotReady) {
			// surface which fields are absent
			_, err = drive.ParseInput(req.Power, req.Speed, req.Ratio)
		}
		abort(c, http.StatusBadRequest, err)
		return
	}

	c.IndentedJSON(http.StatusOK, report.NewRow(time.Now().UTC(), out))
}

func abort(c *gin.Context, code int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	var ie *drive.InputError
	if errors.As(err, &ie) {
		resp.Fields = ie.Fields
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, resp)
}
