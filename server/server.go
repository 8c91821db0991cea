package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ritrovo/ritrovo/server/checkin"
	"github.com/ritrovo/ritrovo/server/database"
	"github.com/ritrovo/ritrovo/server/notify"
)

func New(cfg Config) (*Server, error) {
	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	return &Server{
		Cfg:        cfg,
		DB:         db,
		CheckIn:    checkin.New(cfg.Attendance, db, db, db),
		Notify:     notify.New(cfg.Notifications, httpClient),
		HTTPClient: httpClient,
	}, nil
}

type Server struct {
	Cfg        Config
	DB         *database.Database
	CheckIn    *checkin.Service
	Notify     *notify.Client
	HTTPClient *http.Client

	server *http.Server
}

func (s *Server) Start(handler http.Handler) {
	s.server = &http.Server{
		Addr:    s.Cfg.Server.Addr,
		Handler: handler,
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.Any("error", err))
		}
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", slog.Any("error", err))
	}

	if err := s.DB.Close(); err != nil {
		slog.Error("failed to close database", slog.Any("error", err))
	}
}
