package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/client/broadcast"
	"github.com/s21platform/stream-service/internal/client/calendar"
	"github.com/s21platform/stream-service/internal/client/member"
	"github.com/s21platform/stream-service/internal/client/token"
	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/databus/notification"
	api "github.com/s21platform/stream-service/internal/generated"
	"github.com/s21platform/stream-service/internal/infra"
	"github.com/s21platform/stream-service/internal/pkg/tx"
	"github.com/s21platform/stream-service/internal/pkg/validator"
	db "github.com/s21platform/stream-service/internal/repository/postgres"
	"github.com/s21platform/stream-service/internal/rest"
	"github.com/s21platform/stream-service/internal/service/admission"
	"github.com/s21platform/stream-service/internal/service/roster"
	streamsync "github.com/s21platform/stream-service/internal/service/sync"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	memberClient := member.New(cfg)
	defer memberClient.Close()

	calendarTokens := token.New(cfg.Calendar.TokenURL, cfg.Calendar.ClientID, cfg.Calendar.JWTSecret, cfg.Calendar.Timeout)
	broadcastTokens := token.New(cfg.Broadcast.TokenURL, cfg.Broadcast.ClientID, cfg.Broadcast.JWTSecret, cfg.Broadcast.Timeout)

	calendarClient := calendar.New(cfg, calendarTokens)
	defer calendarClient.Close()

	broadcastClient := broadcast.New(cfg, broadcastTokens)
	defer broadcastClient.Close()

	dispatcher := streamsync.New(dbRepo, calendarClient, broadcastClient, logger, cfg.Sync.QueueSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Run(ctx)

	producer := kafkalib.NewProducer(kafkalib.DefaultProducerConfig(cfg.Kafka.Host, cfg.Kafka.Port, cfg.Kafka.NotificationTopic))
	notifications := notification.New(producer)

	admissionService := admission.New(dbRepo, memberClient, notifications, dispatcher)
	rosterService := roster.New(dbRepo, memberClient, notifications, dispatcher)
	vldtr := validator.New()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.AuthInterceptorGRPC,
			infra.LoggerGRPC(logger),
			tx.TxMiddlewareGRPC(dbRepo),
		),
	)
	healthpb.RegisterHealthServer(grpcServer, health.NewServer())

	handler := rest.New(dbRepo, admissionService, rosterService, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
