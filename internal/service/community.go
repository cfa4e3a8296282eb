package service

import (
	"context"
	"fmt"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommunityService handles posts and their comments.
type CommunityService struct {
	posts    repository.IPostRepository
	comments repository.ICommentRepository
	users    repository.IUserRepository
}

func NewCommunityService(posts repository.IPostRepository, comments repository.ICommentRepository, users repository.IUserRepository) *CommunityService {
	return &CommunityService{posts: posts, comments: comments, users: users}
}

func (s *CommunityService) ListPosts(ctx context.Context) ([]model.PostResponse, error) {
	posts, err := s.posts.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(posts))
	for i, p := range posts {
		ids[i] = p.UserID
	}
	authors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %w", err)
	}
	responses := make([]model.PostResponse, len(posts))
	for i, p := range posts {
		responses[i] = p.ToResponse(authorRef(authors[p.UserID]))
	}
	return responses, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, user *model.User, req *model.CreatePostRequest) (*model.PostResponse, error) {
	post := &model.CommunityPost{
		UserID:    user.ID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	resp := post.ToResponse(authorRef(user))
	return &resp, nil
}

// LikePost increments the like counter. Any authenticated user may like
// any post, repeatedly.
func (s *CommunityService) LikePost(ctx context.Context, id primitive.ObjectID) (*model.PostResponse, error) {
	post, err := s.posts.IncrementLikes(ctx, id)
	if err != nil {
		return nil, err
	}
	authors, err := s.users.FindByIDs(ctx, []primitive.ObjectID{post.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}
	resp := post.ToResponse(authorRef(authors[post.UserID]))
	return &resp, nil
}

// DeletePost removes the caller's own post, then its comments. The two
// steps are sequential and not atomic; a failure between them can leave
// orphaned comments.
func (s *CommunityService) DeletePost(ctx context.Context, id, userID primitive.ObjectID) error {
	if _, err := s.posts.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.posts.DeleteByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.comments.DeleteByPost(ctx, id); err != nil {
		return fmt.Errorf("post deleted but comment cleanup failed: %w", err)
	}
	return nil
}

func (s *CommunityService) ListComments(ctx context.Context, postID primitive.ObjectID) ([]model.CommentResponse, error) {
	comments, err := s.comments.FindByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(comments))
	for i, c := range comments {
		ids[i] = c.UserID
	}
	authors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %w", err)
	}
	responses := make([]model.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = c.ToResponse(authorRef(authors[c.UserID]))
	}
	return responses, nil
}

// AddComment verifies the post still exists before inserting.
func (s *CommunityService) AddComment(ctx context.Context, postID primitive.ObjectID, user *model.User, req *model.CreateCommentRequest) (*model.CommentResponse, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	comment := &model.PostComment{
		PostID:    postID,
		UserID:    user.ID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	resp := comment.ToResponse(authorRef(user))
	return &resp, nil
}

func authorRef(u *model.User) model.AuthorRef {
	if u == nil {
		return model.AuthorRef{FullName: "Anonymous"}
	}
	return model.AuthorRef{FullName: u.FullName, Email: u.Email}
}
