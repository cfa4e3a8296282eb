package service

import (
	"context"

	"ecotrack/internal/repository"

	"golang.org/x/sync/errgroup"
)

// AdminStats are the platform-wide totals shown on the admin dashboard.
type AdminStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalQuizAttempts int64 `json:"totalQuizAttempts"`
	TotalBlogPosts    int64 `json:"totalBlogPosts"`
	TotalEcoLocations int64 `json:"totalEcoLocations"`
	TotalChallenges   int64 `json:"totalChallenges"`
	TotalPosts        int64 `json:"totalPosts"`
}

// AdminService aggregates platform statistics.
type AdminService struct {
	users     repository.IUserRepository
	attempts  repository.IQuizAttemptRepository
	blogPosts repository.IBlogRepository
	locations repository.IEcoLocationRepository
	challenge repository.IChallengeRepository
	posts     repository.IPostRepository
}

func NewAdminService(
	users repository.IUserRepository,
	attempts repository.IQuizAttemptRepository,
	blogPosts repository.IBlogRepository,
	locations repository.IEcoLocationRepository,
	challenge repository.IChallengeRepository,
	posts repository.IPostRepository,
) *AdminService {
	return &AdminService{
		users:     users,
		attempts:  attempts,
		blogPosts: blogPosts,
		locations: locations,
		challenge: challenge,
		posts:     posts,
	}
}

// Stats issues the six collection counts concurrently.
func (s *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	var stats AdminStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalQuizAttempts, err = s.attempts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalBlogPosts, err = s.blogPosts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalEcoLocations, err = s.locations.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalChallenges, err = s.challenge.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalPosts, err = s.posts.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
