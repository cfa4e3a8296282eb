package server

import (
	"context"

	"ecotrack/internal/config"
	"ecotrack/internal/handler"
	"ecotrack/internal/repository"
	"ecotrack/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles every persistence interface.
type Repositories struct {
	Users         repository.IUserRepository
	Carbon        repository.ICarbonRepository
	Challenges    repository.IChallengeRepository
	Posts         repository.IPostRepository
	Comments      repository.ICommentRepository
	Blog          repository.IBlogRepository
	QuizQuestions repository.IQuizQuestionRepository
	QuizAttempts  repository.IQuizAttemptRepository
	Badges        repository.IBadgeRepository
	UserBadges    repository.IUserBadgeRepository
	EcoLocations  repository.IEcoLocationRepository
	EcoEvents     repository.IEcoEventRepository
	PlantingAreas repository.IPlantingAreaRepository
	PlantedTrees  repository.IPlantedTreeRepository
}

// Services bundles the business layer.
type Services struct {
	User        *service.UserService
	Carbon      *service.CarbonService
	Challenge   *service.ChallengeService
	Community   *service.CommunityService
	Blog        *service.BlogService
	Quiz        *service.QuizService
	Badge       *service.BadgeService
	Leaderboard *service.LeaderboardService
	EcoLocation *service.EcoLocationService
	EcoEvent    *service.EcoEventService
	Planting    *service.PlantingService
	Admin       *service.AdminService
}

// Handlers bundles the HTTP layer.
type Handlers struct {
	Auth        *handler.AuthHandler
	Profile     *handler.ProfileHandler
	Carbon      *handler.CarbonHandler
	Challenge   *handler.ChallengeHandler
	Community   *handler.CommunityHandler
	Blog        *handler.BlogHandler
	Quiz        *handler.QuizHandler
	Badge       *handler.BadgeHandler
	Leaderboard *handler.LeaderboardHandler
	EcoLocation *handler.EcoLocationHandler
	EcoEvent    *handler.EcoEventHandler
	Planting    *handler.PlantingHandler
	Admin       *handler.AdminHandler
}

// InitRepositories wires every repository to its collection.
func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:         repository.NewUserRepository(db),
		Carbon:        repository.NewCarbonRepository(db),
		Challenges:    repository.NewChallengeRepository(db),
		Posts:         repository.NewPostRepository(db),
		Comments:      repository.NewCommentRepository(db),
		Blog:          repository.NewBlogRepository(db),
		QuizQuestions: repository.NewQuizQuestionRepository(db),
		QuizAttempts:  repository.NewQuizAttemptRepository(db),
		Badges:        repository.NewBadgeRepository(db),
		UserBadges:    repository.NewUserBadgeRepository(db),
		EcoLocations:  repository.NewEcoLocationRepository(db),
		EcoEvents:     repository.NewEcoEventRepository(db),
		PlantingAreas: repository.NewPlantingAreaRepository(db),
		PlantedTrees:  repository.NewPlantedTreeRepository(db),
	}
}

// InitServices wires the business layer over the repositories.
func InitServices(cfg *config.Config, repos *Repositories) *Services {
	return &Services{
		User:      service.NewUserService(cfg, repos.Users),
		Carbon:    service.NewCarbonService(repos.Carbon),
		Challenge: service.NewChallengeService(repos.Challenges),
		Community: service.NewCommunityService(repos.Posts, repos.Comments, repos.Users),
		Blog:      service.NewBlogService(repos.Blog),
		Quiz:      service.NewQuizService(repos.QuizQuestions, repos.QuizAttempts),
		Badge: service.NewBadgeService(
			repos.Badges, repos.UserBadges, repos.QuizAttempts,
			repos.Carbon, repos.Challenges, repos.Posts),
		Leaderboard: service.NewLeaderboardService(
			repos.Users, repos.QuizAttempts, repos.Challenges, repos.UserBadges),
		EcoLocation: service.NewEcoLocationService(repos.EcoLocations),
		EcoEvent:    service.NewEcoEventService(repos.EcoEvents),
		Planting:    service.NewPlantingService(repos.PlantingAreas, repos.PlantedTrees, repos.Users),
		Admin: service.NewAdminService(
			repos.Users, repos.QuizAttempts, repos.Blog,
			repos.EcoLocations, repos.Challenges, repos.Posts),
	}
}

// InitHandlers wires the HTTP layer over the services.
func InitHandlers(services *Services) *Handlers {
	return &Handlers{
		Auth:        handler.NewAuthHandler(services.User),
		Profile:     handler.NewProfileHandler(services.User),
		Carbon:      handler.NewCarbonHandler(services.Carbon),
		Challenge:   handler.NewChallengeHandler(services.Challenge),
		Community:   handler.NewCommunityHandler(services.Community),
		Blog:        handler.NewBlogHandler(services.Blog),
		Quiz:        handler.NewQuizHandler(services.Quiz),
		Badge:       handler.NewBadgeHandler(services.Badge),
		Leaderboard: handler.NewLeaderboardHandler(services.Leaderboard),
		EcoLocation: handler.NewEcoLocationHandler(services.EcoLocation),
		EcoEvent:    handler.NewEcoEventHandler(services.EcoEvent),
		Planting:    handler.NewPlantingHandler(services.Planting),
		Admin:       handler.NewAdminHandler(services.Admin),
	}
}

// ensureIndexes creates every collection index up front so unique
// constraints hold from the first write.
func ensureIndexes(ctx context.Context, repos *Repositories) error {
	for _, indexed := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		repos.Users,
		repos.Carbon,
		repos.Challenges,
		repos.Comments,
		repos.QuizQuestions,
		repos.QuizAttempts,
		repos.UserBadges,
		repos.EcoEvents,
		repos.PlantedTrees,
	} {
		if err := indexed.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
