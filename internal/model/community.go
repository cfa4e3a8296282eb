package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommunityPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Content   string             `bson:"content" json:"content"`
	Likes     int                `bson:"likes" json:"likes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (p *CommunityPost) GetID() primitive.ObjectID   { return p.ID }
func (p *CommunityPost) SetID(id primitive.ObjectID) { p.ID = id }

// PostResponse is a post with its author resolved.
type PostResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	Profiles  AuthorRef `json:"profiles"`
}

func (p *CommunityPost) ToResponse(author AuthorRef) PostResponse {
	return PostResponse{
		ID:        p.ID.Hex(),
		Content:   p.Content,
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
		UserID:    p.UserID.Hex(),
		Profiles:  author,
	}
}

type PostComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (c *PostComment) GetID() primitive.ObjectID   { return c.ID }
func (c *PostComment) SetID(id primitive.ObjectID) { c.ID = id }

type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Profiles  AuthorRef `json:"profiles"`
}

func (c *PostComment) ToResponse(author AuthorRef) CommentResponse {
	return CommentResponse{
		ID:        c.ID.Hex(),
		PostID:    c.PostID.Hex(),
		UserID:    c.UserID.Hex(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Profiles:  author,
	}
}

type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
