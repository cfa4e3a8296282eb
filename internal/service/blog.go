package service

import (
	"context"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultBlogAuthor = "Eco Track Team"

// BlogService handles blog content.
type BlogService struct {
	posts repository.IBlogRepository
}

func NewBlogService(posts repository.IBlogRepository) *BlogService {
	return &BlogService{posts: posts}
}

func (s *BlogService) List(ctx context.Context) ([]*model.BlogPost, error) {
	return s.posts.FindAllSorted(ctx)
}

func (s *BlogService) Get(ctx context.Context, id primitive.ObjectID) (*model.BlogPost, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, req *model.CreateBlogPostRequest) (*model.BlogPost, error) {
	now := time.Now()
	author := req.Author
	if author == "" {
		author = defaultBlogAuthor
	}
	post := &model.BlogPost{
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Author:      author,
		PublishedAt: now,
		CreatedAt:   now,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateBlogPostRequest) (*model.BlogPost, error) {
	set := bson.M{}
	if req.Title != "" {
		set["title"] = req.Title
	}
	if req.Content != "" {
		set["content"] = req.Content
	}
	if req.ImageURL != "" {
		set["imageUrl"] = req.ImageURL
	}
	if req.Author != "" {
		set["author"] = req.Author
	}
	return s.posts.UpdateByID(ctx, id, bson.M{"$set": set})
}

func (s *BlogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.posts.DeleteByID(ctx, id)
}
