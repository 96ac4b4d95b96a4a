package httpserver

import (
	"context"

	"polaris-api/config"
	alertHTTP "polaris-api/internal/alert/delivery/http"
	alertRealtime "polaris-api/internal/alert/delivery/realtime"
	alertRepo "polaris-api/internal/alert/repository/postgre"
	alertUC "polaris-api/internal/alert/usecase"
	dashboardHTTP "polaris-api/internal/dashboard/delivery/http"
	dashboardUC "polaris-api/internal/dashboard/usecase"
	feedbackHTTP "polaris-api/internal/feedback/delivery/http"
	feedbackRepo "polaris-api/internal/feedback/repository/postgre"
	feedbackUC "polaris-api/internal/feedback/usecase"
	kpiHTTP "polaris-api/internal/kpi/delivery/http"
	kpiRepo "polaris-api/internal/kpi/repository/postgre"
	kpiUC "polaris-api/internal/kpi/usecase"
	"polaris-api/internal/live"
	liveHTTP "polaris-api/internal/live/delivery/http"
	"polaris-api/internal/middleware"
	"polaris-api/internal/realtime"
	realtimePostgre "polaris-api/internal/realtime/delivery/postgre"
	realtimeRedis "polaris-api/internal/realtime/delivery/redis"
	reportHTTP "polaris-api/internal/report/delivery/http"
	reportRepo "polaris-api/internal/report/repository/postgre"
	reportUC "polaris-api/internal/report/usecase"
	surveyHTTP "polaris-api/internal/survey/delivery/http"
	surveyRepo "polaris-api/internal/survey/repository/postgre"
	surveyUC "polaris-api/internal/survey/usecase"
	userHTTP "polaris-api/internal/user/delivery/http"
	userRepo "polaris-api/internal/user/repository/postgre"
	userUC "polaris-api/internal/user/usecase"
	pkgMinio "polaris-api/pkg/minio"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Api = "/api/v1"
)

// services are the background workers Run starts and stops.
type services struct {
	broker   realtime.Broker
	bridge   realtimePostgre.Bridge
	notifier alertRealtime.Notifier
	hub      *live.Hub
}

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	mw := middleware.New(srv.logger, srv.jwtMgr, srv.metrics)
	srv.gin.Use(mw.Metrics())

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Realtime bus
	broker := realtime.New(srv.logger, realtimeRedis.New(ctx, srv.logger, srv.redis), realtime.Options{
		ChannelPrefix: srv.realtimeCfg.ChannelPrefix,
		Metrics:       srv.metrics,
	})
	var (
		pub    realtime.Publisher = broker
		bridge realtimePostgre.Bridge
	)
	if srv.realtimeCfg.Source == config.RealtimeSourceDatabase {
		dsn, err := srv.postgresCfg.DSN()
		if err != nil {
			return err
		}
		pub = realtime.NopPublisher{}
		bridge = realtimePostgre.New(srv.logger, dsn, srv.postgresCfg.ListenChannel, broker)
	}

	// Repositories
	kpiRepository := kpiRepo.New(srv.logger, srv.postgresDB)
	alertRepository := alertRepo.New(srv.logger, srv.postgresDB)
	feedbackRepository := feedbackRepo.New(srv.logger, srv.postgresDB)
	surveyRepository := surveyRepo.New(srv.logger, srv.postgresDB)
	reportRepository := reportRepo.New(srv.logger, srv.postgresDB)
	userRepository := userRepo.New(srv.logger, srv.postgresDB)

	// Usecases
	var storage pkgMinio.Uploader
	if srv.minio != nil {
		storage = srv.minio
	}
	kpiUsecase := kpiUC.New(srv.logger, kpiRepository, pub)
	alertUsecase := alertUC.New(srv.logger, alertRepository, pub, srv.discord)
	feedbackUsecase := feedbackUC.New(srv.logger, feedbackRepository, pub)
	surveyUsecase := surveyUC.New(srv.logger, surveyRepository)
	reportUsecase := reportUC.New(srv.logger, reportRepository, storage, reportUC.ExportConfig{
		Bucket: srv.minioCfg.Bucket,
		Expiry: srv.minioCfg.PresignExpiry,
	})
	userUsecase := userUC.New(srv.logger, userRepository)
	dashboardUsecase := dashboardUC.New(srv.logger, kpiUsecase, alertUsecase, feedbackUsecase)

	// Live sessions
	hub := live.NewHub(srv.logger, srv.wsConfig.MaxConnections, srv.metrics)
	liveHandler := liveHTTP.New(srv.logger, hub, live.Services{
		Dashboard: dashboardUsecase,
		KPI:       kpiUsecase,
		Alert:     alertUsecase,
		Feedback:  feedbackUsecase,
		Survey:    surveyUsecase,
		Report:    reportUsecase,
		Metrics:   srv.metrics,
	}, broker, srv.jwtMgr, srv.discord, liveHTTP.Config{
		Conn: live.ConnConfig{
			PongWait:       srv.wsConfig.PongWait,
			PingPeriod:     srv.wsConfig.PingInterval,
			WriteWait:      srv.wsConfig.WriteWait,
			MaxMessageSize: srv.wsConfig.MaxMessageSize,
		},
		ReadBufferSize:  srv.wsConfig.ReadBufferSize,
		WriteBufferSize: srv.wsConfig.WriteBufferSize,
	})

	// API routes
	api := srv.gin.Group(Api)
	kpiHTTP.New(srv.logger, kpiUsecase, srv.discord).RegisterRoutes(api, mw)
	alertHTTP.New(srv.logger, alertUsecase, srv.discord).RegisterRoutes(api, mw)
	feedbackHTTP.New(srv.logger, feedbackUsecase, srv.discord).RegisterRoutes(api, mw)
	surveyHTTP.New(srv.logger, surveyUsecase, srv.discord).RegisterRoutes(api, mw)
	reportHTTP.New(srv.logger, reportUsecase, srv.discord).RegisterRoutes(api, mw)
	userHTTP.New(srv.logger, userUsecase, srv.discord).RegisterRoutes(api, mw)
	dashboardHTTP.New(srv.logger, dashboardUsecase, srv.discord).RegisterRoutes(api, mw)
	liveHandler.RegisterRoutes(api, mw)

	srv.services = &services{
		broker:   broker,
		bridge:   bridge,
		notifier: alertRealtime.New(alertUsecase, broker, srv.logger),
		hub:      hub,
	}

	return nil
}
