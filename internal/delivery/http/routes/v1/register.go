package v1

import (
	"log"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, responses *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	engine := scoring.NewEngine(scoring.DefaultWeights(), nil)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	matchingUC := usecase.NewMatchingUsecase(candidateRepo, jobRepo, matchRepo, engine, responses, logger, cfg.Matching.Workers)
	rankingUC := usecase.NewRankingUsecase(jobRepo, candidateRepo, matchingUC, logger, cfg.Matching.Workers)

	authHandler := handler.NewAuthHandler(authUC)
	matchHandler := handler.NewMatchHandler(matchingUC)
	rankingHandler := handler.NewRankingHandler(rankingUC)

	authHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	matchHandler.RegisterRoutes(protected)
	rankingHandler.RegisterRoutes(protected)
}
